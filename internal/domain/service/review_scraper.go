package service

import "context"

// ScrapedReview is a review as returned by the scraping provider, before mapping.
type ScrapedReview struct {
	AuthorName string
	Name       string
	Username   string
	Stars      float64
	Text       string
	PublishAt  string
}

// ReviewScraper fetches reviews for a Google Maps listing from an external provider.
type ReviewScraper interface {
	// Configured reports whether the provider credentials are present.
	Configured() bool

	// Scrape runs a provider job for url and blocks until its results are available.
	Scrape(ctx context.Context, url string, maxReviews int) ([]ScrapedReview, error)
}
