package scraper

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"crm/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, token string) *apifyClient {
	cfg := &config.Config{Scraper: &config.ScraperConfig{
		BaseURL:      baseURL + "/",
		Token:        token,
		ActorID:      "compass~google-maps-reviews-scraper",
		PollInterval: time.Millisecond,
		Timeout:      5 * time.Second,
	}}

	return NewApifyClient(cfg, slog.Default()).(*apifyClient)
}

func TestApifyClient_Configured(t *testing.T) {
	assert.False(t, newTestClient("http://apify", "").Configured())
	assert.True(t, newTestClient("http://apify", "token").Configured())
}

func TestApifyClient_Scrape(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/acts/compass~google-maps-reviews-scraper/runs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var input runInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "https://maps.google.com/?cid=1", input.StartURLs[0].URL)
		assert.Equal(t, 20, input.MaxReviews)
		assert.Equal(t, "en", input.Language)

		_, _ = w.Write([]byte(`{"data":{"id":"run-1","status":"READY"}}`))
	})
	mux.HandleFunc("GET /v2/actor-runs/run-1", func(w http.ResponseWriter, _ *http.Request) {
		if polls.Add(1) < 2 {
			_, _ = w.Write([]byte(`{"data":{"id":"run-1","status":"RUNNING"}}`))

			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":"run-1","status":"SUCCEEDED","defaultDatasetId":"ds-1"}}`))
	})
	mux.HandleFunc("GET /v2/datasets/ds-1/items", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"authorName":"Alice","stars":5,"text":"Great","publishAt":"2024-01-02"},
			{"name":"Bob","stars":3.0,"text":"Okay"},
			{"text":"no stars"}
		]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	reviews, err := newTestClient(server.URL, "token").Scrape(context.Background(), "https://maps.google.com/?cid=1", 20)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, "Alice", reviews[0].AuthorName)
	assert.Equal(t, float64(5), reviews[0].Stars)
	assert.Equal(t, "2024-01-02", reviews[0].PublishAt)
	assert.Equal(t, "Bob", reviews[1].Name)
	assert.Zero(t, reviews[2].Stars)
	assert.EqualValues(t, 2, polls.Load())
}

func TestApifyClient_RunFailed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/acts/compass~google-maps-reviews-scraper/runs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"run-2","status":"RUNNING"}}`))
	})
	mux.HandleFunc("GET /v2/actor-runs/run-2", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"run-2","status":"FAILED"}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestClient(server.URL, "token").Scrape(context.Background(), "https://maps.google.com/?cid=1", 10)
	assert.ErrorContains(t, err, "FAILED")
}

func TestApifyClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"token-not-valid"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "bad").Scrape(context.Background(), "https://maps.google.com/?cid=1", 10)
	assert.ErrorContains(t, err, "status 401")
}

func TestApifyClient_Timeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/acts/compass~google-maps-reviews-scraper/runs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"run-3","status":"RUNNING"}}`))
	})
	mux.HandleFunc("GET /v2/actor-runs/run-3", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"run-3","status":"RUNNING"}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL, "token")
	client.timeout = 50 * time.Millisecond

	_, err := client.Scrape(context.Background(), "https://maps.google.com/?cid=1", 10)
	assert.Error(t, err)
}
