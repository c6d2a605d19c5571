// Package stats computes the per-habit summary and the dashboard overview
// from habits whose streak fields are already up to date.
package stats

import (
	"math"
	"time"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/streak"
	"github.com/brk3/momentum/pkg/habit"
)

func Summary(h habit.Habit, done calendar.DateSet, today time.Time) habit.HabitSummary {
	sum := habit.HabitSummary{
		Name:          h.Name,
		CurrentStreak: h.Streak,
		LongestStreak: h.LongestStreak,
		TotalDaysDone: done.Len(),
		AtRisk:        streak.AtRisk(done, today),
	}
	if stage, ok := streak.StageFor(h.Streak); ok {
		sum.Stage = &stage
	}

	days := done.Sorted()
	if len(days) == 0 {
		return sum
	}
	sum.FirstLogged = days[0]
	sum.LastCompleted = days[len(days)-1]

	thisMonth := calendar.FormatISO(today)[:7]
	perMonth := make(map[string]int)
	for _, d := range days {
		perMonth[d[:7]]++
	}
	for month, n := range perMonth {
		sum.BestMonth = max(sum.BestMonth, n)
		if month == thisMonth {
			sum.ThisMonth = n
		}
	}
	return sum
}

// Overview aggregates today's progress across habits. Streak figures are the
// best values over all habits.
func Overview(habits []habit.Habit, today time.Time) habit.Overview {
	date := calendar.FormatISO(today)
	ov := habit.Overview{
		Date:        date,
		TotalHabits: len(habits),
	}
	for _, h := range habits {
		for _, d := range h.CompletedDates {
			if d == date {
				ov.CompletedToday++
				break
			}
		}
		ov.CurrentStreak = max(ov.CurrentStreak, h.Streak)
		ov.LongestStreak = max(ov.LongestStreak, h.LongestStreak)
	}
	if ov.TotalHabits > 0 {
		ov.TodayPercentage = int(math.Round(float64(ov.CompletedToday) / float64(ov.TotalHabits) * 100))
		ov.AllCompletedToday = ov.CompletedToday == ov.TotalHabits
	}
	return ov
}
