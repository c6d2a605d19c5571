package streak

import "github.com/brk3/momentum/pkg/habit"

var journey = []habit.Stage{
	{Title: "Start", Days: 1},
	{Title: "Building", Days: 7},
	{Title: "Consistent", Days: 30},
	{Title: "Mastery", Days: 100},
	{Title: "Lifestyle", Days: 365},
}

func Stages(current int) []habit.Stage {
	out := make([]habit.Stage, len(journey))
	for i, s := range journey {
		s.Unlocked = current >= s.Days
		out[i] = s
	}
	return out
}

// StageFor returns the highest stage reached by a streak of length current.
func StageFor(current int) (habit.Stage, bool) {
	var best habit.Stage
	found := false
	for _, s := range Stages(current) {
		if s.Unlocked {
			best, found = s, true
		}
	}
	return best, found
}
