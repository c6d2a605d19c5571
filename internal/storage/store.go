package storage

import (
	"context"
	"errors"

	"github.com/brk3/momentum/pkg/habit"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence collaborator. UpdateHabit must run fn and write its
// result as one atomic unit: no reader may observe the date set without the
// streak fields computed from it.
type Store interface {
	CreateHabit(ctx context.Context, h habit.Habit) error
	GetHabit(ctx context.Context, id string) (habit.Habit, error)
	ListHabits(ctx context.Context) ([]habit.Habit, error)
	DeleteHabit(ctx context.Context, id string) error

	CompletedDates(ctx context.Context, id string) ([]string, error)
	Streaks(ctx context.Context, id string) (current, longest int, err error)
	UpdateHabit(ctx context.Context, id string, fn func(h *habit.Habit) error) error
	AllCompletedDates(ctx context.Context) (map[string][]string, error)

	ListMotivations(ctx context.Context) ([]habit.Motivation, error)
	AddMotivation(ctx context.Context, m habit.Motivation) error

	GetReflection(ctx context.Context, year, month int) (habit.Reflection, error)
	SaveReflection(ctx context.Context, r habit.Reflection) error

	Close() error
}
