package domain

import "time"

// RefreshStats holds statistics about one scheduler tick.
type RefreshStats struct {
	Refreshed int
	Failed    int
	Articles  int
	Duration  time.Duration
}
