package stats

import (
	"testing"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/pkg/habit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	today := calendar.MustParseISO("2024-03-10")
	done, err := calendar.NewDateSet(
		"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-20",
		"2024-02-01",
		"2024-03-08", "2024-03-09",
	)
	require.NoError(t, err)

	h := habit.Habit{Name: "guitar", Streak: 2, LongestStreak: 3}
	sum := Summary(h, done, today)

	assert.Equal(t, "guitar", sum.Name)
	assert.Equal(t, 2, sum.CurrentStreak)
	assert.Equal(t, 3, sum.LongestStreak)
	assert.Equal(t, "2024-01-02", sum.FirstLogged)
	assert.Equal(t, "2024-03-09", sum.LastCompleted)
	assert.Equal(t, 7, sum.TotalDaysDone)
	assert.Equal(t, 4, sum.BestMonth)
	assert.Equal(t, 2, sum.ThisMonth)
	assert.True(t, sum.AtRisk)
	require.NotNil(t, sum.Stage)
	assert.Equal(t, "Start", sum.Stage.Title)
}

func TestSummary_NoCompletions(t *testing.T) {
	sum := Summary(habit.Habit{Name: "new"}, calendar.DateSet{}, calendar.MustParseISO("2024-03-10"))
	assert.Zero(t, sum.TotalDaysDone)
	assert.Empty(t, sum.FirstLogged)
	assert.Nil(t, sum.Stage)
	assert.False(t, sum.AtRisk)
}

func TestOverview(t *testing.T) {
	today := calendar.MustParseISO("2024-02-01")
	habits := []habit.Habit{
		{ID: "a", Streak: 4, LongestStreak: 9, CompletedDates: []string{"2024-01-31", "2024-02-01"}},
		{ID: "b", Streak: 6, LongestStreak: 6, CompletedDates: []string{"2024-01-31"}},
		{ID: "c", CompletedDates: []string{}},
	}

	ov := Overview(habits, today)
	assert.Equal(t, "2024-02-01", ov.Date)
	assert.Equal(t, 1, ov.CompletedToday)
	assert.Equal(t, 3, ov.TotalHabits)
	assert.Equal(t, 33, ov.TodayPercentage)
	assert.False(t, ov.AllCompletedToday)
	assert.Equal(t, 6, ov.CurrentStreak)
	assert.Equal(t, 9, ov.LongestStreak)
}

func TestOverview_Empty(t *testing.T) {
	ov := Overview(nil, calendar.MustParseISO("2024-02-01"))
	assert.Zero(t, ov.TodayPercentage)
	assert.False(t, ov.AllCompletedToday)
}

func TestOverview_AllDone(t *testing.T) {
	ov := Overview([]habit.Habit{{CompletedDates: []string{"2024-02-01"}}}, calendar.MustParseISO("2024-02-01"))
	assert.Equal(t, 100, ov.TodayPercentage)
	assert.True(t, ov.AllCompletedToday)
}
