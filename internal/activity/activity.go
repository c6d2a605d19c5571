// Package activity aggregates completions across habits into per-day
// intensities for the heatmap and trend views.
package activity

import (
	"math"
	"time"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/pkg/habit"
)

const DefaultTrendDays = 14

// Aggregate produces one Day per calendar day in [start, end]. Completions
// outside the range are ignored and the input sets are only read.
func Aggregate(habits map[string]calendar.DateSet, start, end time.Time) []habit.Day {
	days := calendar.Days(start, end)
	out := make([]habit.Day, 0, len(days))
	for _, d := range days {
		date := calendar.FormatISO(d)
		done := completedOn(habits, date)
		in := ratio(done, len(habits))
		out = append(out, habit.Day{
			Date:      date,
			Completed: done,
			Total:     len(habits),
			Intensity: in,
			Level:     Classify(in),
		})
	}
	return out
}

// Intensity is the fraction of habits completed on day; zero when there are no
// habits.
func Intensity(habits map[string]calendar.DateSet, day time.Time) float64 {
	return ratio(completedOn(habits, calendar.FormatISO(day)), len(habits))
}

func Trend(habits map[string]calendar.DateSet, today time.Time, n int) []habit.TrendPoint {
	start, end := TrailingRange(today, n)
	days := Aggregate(habits, start, end)
	out := make([]habit.TrendPoint, len(days))
	for i, d := range days {
		out[i] = habit.TrendPoint{
			Date:       d.Date,
			Completed:  d.Completed,
			Percentage: int(math.Round(d.Intensity * 100)),
		}
	}
	return out
}

// YearRange is the heatmap window for year.
func YearRange(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// TrailingRange is the n-day window ending at today. n below 1 falls back to
// DefaultTrendDays.
func TrailingRange(today time.Time, n int) (time.Time, time.Time) {
	if n < 1 {
		n = DefaultTrendDays
	}
	end := calendar.Day(today)
	return calendar.AddDays(end, -(n - 1)), end
}

func completedOn(habits map[string]calendar.DateSet, date string) int {
	n := 0
	for _, done := range habits {
		if done.Has(date) {
			n++
		}
	}
	return n
}

func ratio(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}
