package activity

import "github.com/brk3/momentum/pkg/habit"

// Classify bins an intensity in [0, 1]; each band includes its upper bound.
func Classify(intensity float64) habit.Level {
	switch {
	case intensity <= 0:
		return habit.LevelNone
	case intensity <= 0.25:
		return habit.LevelLow
	case intensity <= 0.5:
		return habit.LevelMedium
	case intensity <= 0.75:
		return habit.LevelHigh
	default:
		return habit.LevelFull
	}
}
