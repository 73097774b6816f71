// Package timing derives countdown and expiry state from event timestamps.
// It holds no state: everything is recomputed from (event times, now) so two
// reads a second apart always show consistently draining time.
package timing

import "time"

// Timing is the live countdown to an event's start plus its expiry state.
type Timing struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// ComputeTiming returns the time remaining until start, decomposed into
// whole days/hours/minutes/seconds (floored at each unit), and whether the
// event window has passed. Expiry is measured against end when present,
// otherwise against start. Once expired all countdown fields are zero.
func ComputeTiming(start time.Time, end *time.Time, now time.Time) Timing {
	deadline := start
	if end != nil {
		deadline = *end
	}

	if !now.Before(deadline) {
		return Timing{Expired: true}
	}

	remaining := start.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	total := int(remaining / time.Second)
	return Timing{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}
