package server

import (
	"github.com/brk3/momentum/pkg/habit"
)

type HabitListResponse struct {
	Habits []habit.Habit `json:"habits"`
}

type CreateHabitRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

type ToggleRequest struct {
	Date string `json:"date"`
}

type HabitSummaryResponse struct {
	HabitID      string             `json:"habit_id"`
	HabitSummary habit.HabitSummary `json:"habit_summary"`
}

type ActivityResponse struct {
	Start string      `json:"start"`
	End   string      `json:"end"`
	Days  []habit.Day `json:"days"`
}

type TrendResponse struct {
	Days   int                `json:"days"`
	Points []habit.TrendPoint `json:"points"`
}

type MotivationListResponse struct {
	Motivations []habit.Motivation `json:"motivations"`
}

type AddMotivationRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Type   string `json:"type"`
}

type SeedResponse struct {
	Added int `json:"added"`
}

type ReflectionRequest struct {
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
