package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInternshipPosting_IsAcceptingApplications(t *testing.T) {
	deadline := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	open := InternshipPosting{Status: PostingActive, AvailableSeats: 3, LastDateToApply: deadline}

	tests := []struct {
		name    string
		posting InternshipPosting
		now     time.Time
		want    bool
	}{
		{"before deadline", open, deadline.AddDate(0, 0, -3), true},
		{"on deadline day", open, deadline.Add(20 * time.Hour), true},
		{"after deadline", open, deadline.AddDate(0, 0, 1), false},
		{"no seats", InternshipPosting{Status: PostingActive, AvailableSeats: 0, LastDateToApply: deadline}, deadline.AddDate(0, 0, -1), false},
		{"closed", InternshipPosting{Status: PostingClosed, AvailableSeats: 3, LastDateToApply: deadline}, deadline.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.posting.IsAcceptingApplications(tt.now))
		})
	}
}
