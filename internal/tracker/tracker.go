// Package tracker applies habit operations against a Store. It owns the toggle
// sequence: flip the date, recompute both streak fields, persist all three in
// one storage transaction.
package tracker

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/logger"
	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/internal/streak"
	"github.com/brk3/momentum/pkg/habit"
	"github.com/google/uuid"
)

const maxNameLength = 100

type Service struct {
	store storage.Store
	clock calendar.Clock
	now   func() time.Time
	newID func() string
}

func New(store storage.Store, clock calendar.Clock) *Service {
	return &Service{
		store: store,
		clock: clock,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) Today() time.Time {
	return s.clock.Today()
}

func notFound(id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &UnknownHabitError{ID: id}
	}
	return err
}

func (s *Service) CreateHabit(ctx context.Context, name, category, color string) (habit.Habit, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return habit.Habit{}, invalid("name", "must be 1-%d characters", maxNameLength)
	}
	cat, err := habit.ParseCategory(category)
	if err != nil {
		return habit.Habit{}, invalid("category", "%v", err)
	}

	h := habit.Habit{
		ID:             s.newID(),
		Name:           name,
		Category:       cat,
		Color:          strings.TrimSpace(color),
		CompletedDates: []string{},
		CreatedAt:      s.now().UTC().Truncate(time.Second),
	}
	if err := s.store.CreateHabit(ctx, h); err != nil {
		return habit.Habit{}, fmt.Errorf("create habit: %w", err)
	}
	logger.Debug("Created habit", "habit_id", h.ID, "category", h.Category)
	return h, nil
}

func (s *Service) DeleteHabit(ctx context.Context, id string) error {
	if err := s.store.DeleteHabit(ctx, id); err != nil {
		return notFound(id, err)
	}
	return nil
}

func (s *Service) GetHabit(ctx context.Context, id string) (habit.Habit, error) {
	h, err := s.store.GetHabit(ctx, id)
	if err != nil {
		return habit.Habit{}, notFound(id, err)
	}
	return s.live(h, s.clock.Today())
}

// ListHabits returns every habit in creation order.
func (s *Service) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	list, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	out := make([]habit.Habit, 0, len(list))
	for _, stored := range list {
		h, err := s.live(stored, today)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	slices.SortFunc(out, func(a, b habit.Habit) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// live reports the stored habit as of today. The persisted streak is only
// rewritten on toggle, so a read recomputes the current run and never shows a
// longest value below it.
func (s *Service) live(h habit.Habit, today time.Time) (habit.Habit, error) {
	done, err := calendar.NewDateSet(h.CompletedDates...)
	if err != nil {
		return habit.Habit{}, fmt.Errorf("habit %s: stored completions: %w", h.ID, err)
	}
	h.CompletedDates = done.Sorted()
	h.Streak = streak.Current(done, today)
	h.LongestStreak = streak.Longest(h.LongestStreak, h.Streak)
	return h, nil
}

// Toggle flips the completion of date for a habit and recomputes its streaks
// against today. The date set and both streak values are written in one
// storage transaction; on error nothing is changed.
func (s *Service) Toggle(ctx context.Context, habitID, date string) (habit.ToggleResult, error) {
	if _, err := calendar.ParseISO(date); err != nil {
		return habit.ToggleResult{}, err
	}
	today := s.clock.Today()

	var res habit.ToggleResult
	err := s.store.UpdateHabit(ctx, habitID, func(h *habit.Habit) error {
		done, err := calendar.NewDateSet(h.CompletedDates...)
		if err != nil {
			return fmt.Errorf("habit %s: stored completions: %w", habitID, err)
		}
		completed := done.Toggle(date)
		current := streak.Current(done, today)
		longest := streak.Longest(h.LongestStreak, current)

		h.CompletedDates = done.Sorted()
		h.Streak = current
		h.LongestStreak = longest

		res = habit.ToggleResult{
			HabitID:       habitID,
			Date:          date,
			Completed:     completed,
			Streak:        current,
			LongestStreak: longest,
		}
		return nil
	})
	if err != nil {
		return habit.ToggleResult{}, notFound(habitID, err)
	}
	logger.Debug("Toggled completion", "habit_id", habitID, "date", date,
		"completed", res.Completed, "streak", res.Streak, "longest_streak", res.LongestStreak)
	return res, nil
}
