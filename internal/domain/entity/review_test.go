package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReviewStats(t *testing.T) {
	tests := []struct {
		name        string
		counts      map[int]int64
		wantTotal   int64
		wantAverage float64
	}{
		{name: "no reviews", counts: nil, wantTotal: 0, wantAverage: 0},
		{name: "rounds to two places", counts: map[int]int64{4: 2, 5: 1}, wantTotal: 3, wantAverage: 4.33},
		{name: "ignores out of range", counts: map[int]int64{0: 7, 3: 1, 6: 2}, wantTotal: 1, wantAverage: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewReviewStats(tt.counts)

			assert.Equal(t, tt.wantTotal, stats.Total)
			assert.InDelta(t, tt.wantAverage, stats.AverageRating, 0.001)
			assert.Len(t, stats.ByRating, 5)
		})
	}
}
