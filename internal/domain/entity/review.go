package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Review is a single customer review scraped from a Google Maps listing.
type Review struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owner of the listing the review was scraped for.
	Author      string
	Rating      int // 1..5 stars.
	Text        string
	PublishedAt *time.Time // Nil when the provider date could not be parsed.
	SourceURL   string
	CreatedAt   time.Time
}

// ReviewStats summarizes a user's stored reviews.
type ReviewStats struct {
	Total         int64
	AverageRating float64
	// ByRating counts reviews per star rating, keyed 1..5.
	ByRating map[int]int64
}

// NewReviewStats builds stats from per-rating counts; ratings outside 1..5 are ignored.
func NewReviewStats(countsByRating map[int]int64) *ReviewStats {
	stats := &ReviewStats{ByRating: make(map[int]int64, 5)}

	var sum int64
	for rating := 1; rating <= 5; rating++ {
		n := countsByRating[rating]
		stats.ByRating[rating] = n
		stats.Total += n
		sum += int64(rating) * n
	}
	if stats.Total > 0 {
		stats.AverageRating = math.Round(float64(sum)/float64(stats.Total)*100) / 100
	}

	return stats
}
