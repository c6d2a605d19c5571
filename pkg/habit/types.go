package habit

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryHealth      Category = "health"
	CategoryStudy       Category = "study"
	CategoryMindfulness Category = "mindfulness"
	CategoryCreative    Category = "creative"
	CategoryOther       Category = "other"
)

var categories = []Category{CategoryHealth, CategoryStudy, CategoryMindfulness, CategoryCreative, CategoryOther}

// ParseCategory maps an input value onto the closed category set. An empty
// value means CategoryOther.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       Category  `json:"category"`
	Color          string    `json:"color,omitempty"`
	Streak         int       `json:"streak"`
	LongestStreak  int       `json:"longest_streak"`
	CompletedDates []string  `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

type ToggleResult struct {
	HabitID       string `json:"habit_id"`
	Date          string `json:"date"`
	Completed     bool   `json:"completed"`
	Streak        int    `json:"streak"`
	LongestStreak int    `json:"longest_streak"`
}

type HabitSummary struct {
	Name          string `json:"name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	FirstLogged   string `json:"first_logged,omitempty"`
	LastCompleted string `json:"last_completed,omitempty"`
	TotalDaysDone int    `json:"total_days_done"`
	BestMonth     int    `json:"best_month"`
	ThisMonth     int    `json:"this_month"`
	AtRisk        bool   `json:"at_risk"`
	Stage         *Stage `json:"stage,omitempty"`
}

type Overview struct {
	Date              string `json:"date"`
	CompletedToday    int    `json:"completed_today"`
	TotalHabits       int    `json:"total_habits"`
	TodayPercentage   int    `json:"today_percentage"`
	AllCompletedToday bool   `json:"all_completed_today"`
	CurrentStreak     int    `json:"current_streak"`
	LongestStreak     int    `json:"longest_streak"`
}

type Heatmap struct {
	Year int   `json:"year"`
	Days []Day `json:"days"`
}

type MotivationType string

const (
	MotivationQuote  MotivationType = "quote"
	MotivationReason MotivationType = "reason"
)

func ParseMotivationType(s string) (MotivationType, error) {
	switch MotivationType(s) {
	case "":
		return MotivationQuote, nil
	case MotivationQuote, MotivationReason:
		return MotivationType(s), nil
	}
	return "", fmt.Errorf("unknown motivation type %q", s)
}

type Motivation struct {
	ID     string         `json:"id"`
	Text   string         `json:"text"`
	Author string         `json:"author,omitempty"`
	Type   MotivationType `json:"type"`
}

type Reflection struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
