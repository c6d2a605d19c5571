package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brk3/momentum/internal/logger"
	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/pkg/habit"
)

var ErrNoMotivations = errors.New("no motivations saved")

var defaultMotivations = []habit.Motivation{
	{Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Aristotle", Type: habit.MotivationQuote},
	{Text: "You will never change your life until you change something you do daily.", Author: "Mike Murdock", Type: habit.MotivationQuote},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson", Type: habit.MotivationQuote},
	{Text: "Small daily improvements are the key to staggering long-term results.", Type: habit.MotivationQuote},
	{Text: "I want to build a disciplined life.", Type: habit.MotivationReason},
}

func (s *Service) Motivations(ctx context.Context) ([]habit.Motivation, error) {
	return s.store.ListMotivations(ctx)
}

func (s *Service) AddMotivation(ctx context.Context, text, author, kind string) (habit.Motivation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return habit.Motivation{}, invalid("text", "must not be empty")
	}
	t, err := habit.ParseMotivationType(kind)
	if err != nil {
		return habit.Motivation{}, invalid("type", "%v", err)
	}
	m := habit.Motivation{
		ID:     s.newID(),
		Text:   text,
		Author: strings.TrimSpace(author),
		Type:   t,
	}
	if err := s.store.AddMotivation(ctx, m); err != nil {
		return habit.Motivation{}, fmt.Errorf("add motivation: %w", err)
	}
	return m, nil
}

// SeedMotivations stores the built-in set when none exist yet and returns how
// many were added.
func (s *Service) SeedMotivations(ctx context.Context) (int, error) {
	existing, err := s.store.ListMotivations(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, m := range defaultMotivations {
		m.ID = s.newID()
		if err := s.store.AddMotivation(ctx, m); err != nil {
			return 0, fmt.Errorf("seed motivations: %w", err)
		}
	}
	logger.Info("Seeded motivations", "count", len(defaultMotivations))
	return len(defaultMotivations), nil
}

// DailyMotivation picks one motivation per calendar day, stable for the whole
// day and rotating through the list in insertion order.
func (s *Service) DailyMotivation(ctx context.Context) (habit.Motivation, error) {
	ms, err := s.store.ListMotivations(ctx)
	if err != nil {
		return habit.Motivation{}, err
	}
	if len(ms) == 0 {
		return habit.Motivation{}, ErrNoMotivations
	}
	ordinal := s.clock.Today().Unix() / int64(24*time.Hour/time.Second)
	idx := ordinal % int64(len(ms))
	if idx < 0 {
		idx += int64(len(ms))
	}
	return ms[idx], nil
}

func checkMonth(year, month int) error {
	if year < 1 || year > 9999 {
		return invalid("year", "%d out of range", year)
	}
	if month < 1 || month > 12 {
		return invalid("month", "%d out of range", month)
	}
	return nil
}

// Reflection returns the note for a month. A month with no note yields an
// empty reflection rather than an error.
func (s *Service) Reflection(ctx context.Context, year, month int) (habit.Reflection, error) {
	if err := checkMonth(year, month); err != nil {
		return habit.Reflection{}, err
	}
	r, err := s.store.GetReflection(ctx, year, month)
	if errors.Is(err, storage.ErrNotFound) {
		return habit.Reflection{Year: year, Month: month}, nil
	}
	return r, err
}

func (s *Service) SaveReflection(ctx context.Context, year, month int, content string) (habit.Reflection, error) {
	if err := checkMonth(year, month); err != nil {
		return habit.Reflection{}, err
	}
	if strings.TrimSpace(content) == "" {
		return habit.Reflection{}, invalid("content", "must not be empty")
	}
	r := habit.Reflection{
		Year:      year,
		Month:     month,
		Content:   content,
		UpdatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.store.SaveReflection(ctx, r); err != nil {
		return habit.Reflection{}, fmt.Errorf("save reflection: %w", err)
	}
	return r, nil
}
