package nudge

import (
	"context"

	"github.com/brk3/momentum/pkg/habit"
)

type Querier interface {
	ListHabits(ctx context.Context) ([]habit.Habit, error)
	GetHabitSummary(ctx context.Context, id string) (*habit.HabitSummary, error)
}

type Notifier interface {
	SendNudge(ctx context.Context, habits []string, hoursTillExpiry int) error
}
