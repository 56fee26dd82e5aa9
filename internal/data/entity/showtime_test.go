package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShowtimeOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	// existing showtime 10:00-12:00
	showtime := &Showtime{StartTime: at(0), EndTime: at(2)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", at(0), at(2), true},
		{"starts inside", at(1), at(3), true},
		{"ends inside", at(-1), at(1), true},
		{"fully contains", at(-1), at(3), true},
		{"fully contained", at(0).Add(30 * time.Minute), at(1), true},
		{"back-to-back after", at(2), at(4), false},
		{"back-to-back before", at(-2), at(0), false},
		{"disjoint after", at(3), at(5), false},
		{"disjoint before", at(-4), at(-2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, showtime.Overlaps(tt.start, tt.end))
		})
	}
}
