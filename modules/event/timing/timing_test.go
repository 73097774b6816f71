package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestComputeTimingCountdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  Timing
	}{
		{
			name:  "two days out",
			start: now.Add(48 * time.Hour),
			end:   ptr(now.Add(72 * time.Hour)),
			want:  Timing{Days: 2},
		},
		{
			name:  "mixed units",
			start: now.Add(26*time.Hour + 30*time.Minute + 45*time.Second),
			want:  Timing{Days: 1, Hours: 2, Minutes: 30, Seconds: 45},
		},
		{
			name:  "floors sub-second remainder",
			start: now.Add(90*time.Second + 500*time.Millisecond),
			want:  Timing{Minutes: 1, Seconds: 30},
		},
		{
			name:  "one second left",
			start: now.Add(time.Second),
			want:  Timing{Seconds: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTiming(tt.start, tt.end, now))
		})
	}
}

func TestComputeTimingExpiry(t *testing.T) {
	start := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	// Strictly non-expired for every now < end.
	for _, now := range []time.Time{
		start.Add(-48 * time.Hour),
		start, // started but not ended
		end.Add(-time.Second),
	} {
		got := ComputeTiming(start, &end, now)
		assert.False(t, got.Expired, "now=%s", now)
	}

	// Expired with zeroed fields for every now >= end.
	for _, now := range []time.Time{end, end.Add(time.Second), end.Add(365 * 24 * time.Hour)} {
		got := ComputeTiming(start, &end, now)
		assert.Equal(t, Timing{Expired: true}, got, "now=%s", now)
	}
}

func TestComputeTimingNoEndDateUsesStart(t *testing.T) {
	start := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	assert.False(t, ComputeTiming(start, nil, start.Add(-time.Second)).Expired)
	assert.Equal(t, Timing{Expired: true}, ComputeTiming(start, nil, start))
	assert.Equal(t, Timing{Expired: true}, ComputeTiming(start, nil, start.Add(time.Hour)))
}

func TestComputeTimingStartedButNotEndedCountsZero(t *testing.T) {
	start := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	// Between start and end the countdown has drained but the event is live.
	got := ComputeTiming(start, &end, start.Add(time.Hour))
	assert.Equal(t, Timing{}, got)
}

func TestComputeTimingDeterministic(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	now := start.Add(-37 * time.Hour)

	first := ComputeTiming(start, &end, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeTiming(start, &end, now))
	}
}
