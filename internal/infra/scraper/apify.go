// Package scraper runs Google Maps review scraping jobs on Apify.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm/config"
	"crm/internal/domain/service"

	"github.com/pkg/errors"
)

// Apify run statuses. Anything other than the first two is terminal.
const (
	runStatusReady     = "READY"
	runStatusRunning   = "RUNNING"
	runStatusSucceeded = "SUCCEEDED"

	maxErrorBody = 1 << 10
)

// apifyClient implements service.ReviewScraper against the Apify REST API.
type apifyClient struct {
	baseURL      string
	token        string
	actorID      string
	pollInterval time.Duration
	timeout      time.Duration
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewApifyClient builds the scraper from config. A missing token leaves it unconfigured.
func NewApifyClient(cfg *config.Config, logger *slog.Logger) service.ReviewScraper {
	sc := cfg.Scraper

	return &apifyClient{
		baseURL:      strings.TrimRight(sc.BaseURL, "/"),
		token:        sc.Token,
		actorID:      sc.ActorID,
		pollInterval: sc.PollInterval,
		timeout:      sc.Timeout,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		logger:       logger,
	}
}

type runInput struct {
	StartURLs  []startURL `json:"startUrls"`
	MaxReviews int        `json:"maxReviews"`
	Language   string     `json:"language"`
}

type startURL struct {
	URL string `json:"url"`
}

type runEnvelope struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

type datasetItem struct {
	AuthorName string   `json:"authorName"`
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	Stars      *float64 `json:"stars"`
	Text       string   `json:"text"`
	PublishAt  string   `json:"publishAt"`
}

// Configured reports whether an API token is set.
func (c *apifyClient) Configured() bool {
	return c.token != ""
}

// Scrape starts an actor run, waits for it to finish and returns the dataset items.
func (c *apifyClient) Scrape(ctx context.Context, mapsURL string, maxReviews int) ([]service.ScrapedReview, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	run, err := c.startRun(ctx, mapsURL, maxReviews)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Apify run started",
		slog.String("run_id", run.Data.ID),
		slog.String("actor_id", c.actorID),
	)

	run, err = c.waitForRun(ctx, run)
	if err != nil {
		return nil, err
	}
	if run.Data.DefaultDatasetID == "" {
		return nil, errors.New("apify run returned no dataset")
	}

	return c.fetchItems(ctx, run.Data.DefaultDatasetID)
}

func (c *apifyClient) startRun(ctx context.Context, mapsURL string, maxReviews int) (*runEnvelope, error) {
	body, err := json.Marshal(runInput{
		StartURLs:  []startURL{{URL: mapsURL}},
		MaxReviews: maxReviews,
		Language:   "en",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var run runEnvelope
	endpoint := c.baseURL + "/v2/acts/" + url.PathEscape(c.actorID) + "/runs"
	if err := c.do(ctx, http.MethodPost, endpoint, body, &run); err != nil {
		return nil, errors.Wrap(err, "start apify run")
	}

	return &run, nil
}

func (c *apifyClient) waitForRun(ctx context.Context, run *runEnvelope) (*runEnvelope, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	endpoint := c.baseURL + "/v2/actor-runs/" + url.PathEscape(run.Data.ID)
	for run.Data.Status == runStatusReady || run.Data.Status == runStatusRunning {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "wait for apify run")
		case <-ticker.C:
		}

		var next runEnvelope
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &next); err != nil {
			return nil, errors.Wrap(err, "poll apify run")
		}
		run = &next
	}

	if run.Data.Status != runStatusSucceeded {
		return nil, errors.Errorf("apify run %s finished with status %s", run.Data.ID, run.Data.Status)
	}

	return run, nil
}

func (c *apifyClient) fetchItems(ctx context.Context, datasetID string) ([]service.ScrapedReview, error) {
	var items []datasetItem
	endpoint := c.baseURL + "/v2/datasets/" + url.PathEscape(datasetID) + "/items?format=json&clean=true"
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, errors.Wrap(err, "fetch apify dataset")
	}

	reviews := make([]service.ScrapedReview, 0, len(items))
	for _, item := range items {
		review := service.ScrapedReview{
			AuthorName: item.AuthorName,
			Name:       item.Name,
			Username:   item.Username,
			Text:       item.Text,
			PublishAt:  item.PublishAt,
		}
		if item.Stars != nil {
			review.Stars = *item.Stars
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (c *apifyClient) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("apify returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return errors.WithStack(json.NewDecoder(resp.Body).Decode(out))
}
