package tracker

import (
	"context"
	"fmt"

	"github.com/brk3/momentum/internal/activity"
	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/stats"
	"github.com/brk3/momentum/pkg/habit"
)

const (
	maxActivityDays = 366
	maxTrendDays    = 90
)

func (s *Service) completions(ctx context.Context) (map[string]calendar.DateSet, error) {
	all, err := s.store.AllCompletedDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	out := make(map[string]calendar.DateSet, len(all))
	for id, dates := range all {
		done, err := calendar.NewDateSet(dates...)
		if err != nil {
			return nil, fmt.Errorf("habit %s: stored completions: %w", id, err)
		}
		out[id] = done
	}
	return out, nil
}

// Activity aggregates completions for every day in [start, end].
func (s *Service) Activity(ctx context.Context, start, end string) ([]habit.Day, error) {
	from, err := calendar.ParseISO(start)
	if err != nil {
		return nil, err
	}
	to, err := calendar.ParseISO(end)
	if err != nil {
		return nil, err
	}
	if calendar.IsBefore(to, from) {
		return nil, invalid("range", "end %s is before start %s", end, start)
	}
	if n := calendar.DaysBetween(from, to) + 1; n > maxActivityDays {
		return nil, invalid("range", "%d days exceeds the limit of %d", n, maxActivityDays)
	}

	habits, err := s.completions(ctx)
	if err != nil {
		return nil, err
	}
	return activity.Aggregate(habits, from, to), nil
}

func (s *Service) Heatmap(ctx context.Context, year int) (habit.Heatmap, error) {
	if year < 1 || year > 9999 {
		return habit.Heatmap{}, invalid("year", "%d out of range", year)
	}
	habits, err := s.completions(ctx)
	if err != nil {
		return habit.Heatmap{}, err
	}
	start, end := activity.YearRange(year)
	return habit.Heatmap{Year: year, Days: activity.Aggregate(habits, start, end)}, nil
}

// Trend reports the completion percentage for the trailing days ending today.
// Zero selects the default window.
func (s *Service) Trend(ctx context.Context, days int) ([]habit.TrendPoint, error) {
	if days == 0 {
		days = activity.DefaultTrendDays
	}
	if days < 1 || days > maxTrendDays {
		return nil, invalid("days", "must be 1-%d", maxTrendDays)
	}
	habits, err := s.completions(ctx)
	if err != nil {
		return nil, err
	}
	return activity.Trend(habits, s.clock.Today(), days), nil
}

func (s *Service) Summary(ctx context.Context, habitID string) (habit.HabitSummary, error) {
	h, err := s.GetHabit(ctx, habitID)
	if err != nil {
		return habit.HabitSummary{}, err
	}
	done, err := calendar.NewDateSet(h.CompletedDates...)
	if err != nil {
		return habit.HabitSummary{}, err
	}
	return stats.Summary(h, done, s.clock.Today()), nil
}

func (s *Service) Overview(ctx context.Context) (habit.Overview, error) {
	habits, err := s.ListHabits(ctx)
	if err != nil {
		return habit.Overview{}, err
	}
	return stats.Overview(habits, s.clock.Today()), nil
}

// AtRisk lists habits done yesterday but not yet today.
func (s *Service) AtRisk(ctx context.Context) ([]habit.HabitSummary, error) {
	habits, err := s.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	var out []habit.HabitSummary
	for _, h := range habits {
		done, err := calendar.NewDateSet(h.CompletedDates...)
		if err != nil {
			return nil, err
		}
		if sum := stats.Summary(h, done, today); sum.AtRisk {
			out = append(out, sum)
		}
	}
	return out, nil
}
