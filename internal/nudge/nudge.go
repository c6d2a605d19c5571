// Package nudge reminds the user about streaks that end tonight: habits done
// yesterday but not yet today.
package nudge

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/brk3/momentum/internal/logger"
)

func HabitsExpiring(ctx context.Context, q Querier) ([]string, error) {
	habits, err := q.ListHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	var out []string
	for _, h := range habits {
		sum, err := q.GetHabitSummary(ctx, h.ID)
		if err != nil {
			return nil, fmt.Errorf("summary %s: %w", h.ID, err)
		}
		if sum.AtRisk {
			out = append(out, h.Name)
		}
	}
	return out, nil
}

// HoursUntilMidnight rounds up, so a streak with 30 minutes left reports 1.
func HoursUntilMidnight(now time.Time) int {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(midnight.Sub(now).Hours()))
}

// Nudge sends one notification listing every expiring streak. It reports
// whether anything was sent.
func Nudge(ctx context.Context, q Querier, n Notifier, now time.Time) (bool, error) {
	expiring, err := HabitsExpiring(ctx, q)
	if err != nil {
		return false, err
	}
	if len(expiring) == 0 {
		logger.Info("No streaks expiring")
		return false, nil
	}
	hours := HoursUntilMidnight(now)
	if err := n.SendNudge(ctx, expiring, hours); err != nil {
		return false, fmt.Errorf("send nudge: %w", err)
	}
	logger.Info("Sent nudge", "habits", expiring, "hours_till_expiry", hours)
	return true, nil
}
