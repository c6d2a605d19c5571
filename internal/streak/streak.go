// Package streak derives streak values from a habit's completion dates.
package streak

import (
	"time"

	"github.com/brk3/momentum/internal/calendar"
)

// Current counts the run of consecutive completed days ending today, or ending
// yesterday when today is not done yet. A streak only breaks once a whole day
// has been skipped.
func Current(done calendar.DateSet, today time.Time) int {
	if done.Len() == 0 {
		return 0
	}
	today = calendar.Day(today)

	anchor := today
	if !done.HasDay(anchor) {
		anchor = calendar.AddDays(today, -1)
		if !done.HasDay(anchor) {
			return 0
		}
	}

	n := 0
	for d := anchor; done.HasDay(d); d = calendar.AddDays(d, -1) {
		n++
	}
	return n
}

// Longest ratchets the stored maximum. It deliberately does not rescan the
// history for older runs: the stored value only grows when a freshly computed
// current streak exceeds it.
func Longest(previous, current int) int {
	return max(previous, current)
}

// AtRisk reports whether the streak is alive only through the grace day and
// lapses at the end of today.
func AtRisk(done calendar.DateSet, today time.Time) bool {
	return !done.HasDay(today) && done.HasDay(calendar.AddDays(today, -1))
}
