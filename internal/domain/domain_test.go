package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Offset(t *testing.T) {
	tests := []struct {
		params PaginationParams
		want   int
	}{
		{PaginationParams{Page: 0, PageSize: 10}, 0},
		{PaginationParams{Page: 3, PageSize: 10}, 30},
		{PaginationParams{Page: -1, PageSize: 10}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.params.Offset())
	}
}

func TestNewEventSummary(t *testing.T) {
	date := time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)
	e := NewEvent("Go Meetup", "desc", "https://example.com", date, false)
	e.ID = "evt-1"
	e.ImgURL = "https://cdn.example.com/a.png"

	t.Run("with address", func(t *testing.T) {
		s := NewEventSummary(e, NewAddress(e.ID, "Recife", "PE"))
		assert.Equal(t, EventSummary{
			ID:          "evt-1",
			Title:       "Go Meetup",
			Description: "desc",
			Date:        date,
			City:        "Recife",
			UF:          "PE",
			EventURL:    "https://example.com",
			ImgURL:      "https://cdn.example.com/a.png",
		}, s)
	})

	t.Run("without address", func(t *testing.T) {
		s := NewEventSummary(e, nil)
		assert.Empty(t, s.City)
		assert.Empty(t, s.UF)
		assert.Equal(t, "Go Meetup", s.Title)
	})
}

func TestCoupon_ActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCoupon("evt-1", "GO10", decimal.NewFromInt(10), now)

	assert.True(t, c.ActiveAt(now.Add(-time.Second)))
	assert.False(t, c.ActiveAt(now))
	assert.False(t, c.ActiveAt(now.Add(time.Second)))
}
