// Package memory is an in-process Store. Data is lost on exit.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/pkg/habit"
)

type Store struct {
	mu          sync.RWMutex
	habits      map[string]habit.Habit
	motivations []habit.Motivation
	reflections map[string]habit.Reflection
}

func New() *Store {
	return &Store{
		habits:      map[string]habit.Habit{},
		reflections: map[string]habit.Reflection{},
	}
}

func clone(h habit.Habit) habit.Habit {
	h.CompletedDates = slices.Clone(h.CompletedDates)
	return h
}

func reflectionKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (m *Store) CreateHabit(ctx context.Context, h habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.habits[h.ID]; ok {
		return fmt.Errorf("habit %s already exists", h.ID)
	}
	m.habits[h.ID] = clone(h)
	return nil
}

func (m *Store) GetHabit(ctx context.Context, id string) (habit.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.habits[id]
	if !ok {
		return habit.Habit{}, storage.ErrNotFound
	}
	return clone(h), nil
}

func (m *Store) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]habit.Habit, 0, len(m.habits))
	for _, h := range m.habits {
		out = append(out, clone(h))
	}
	return out, nil
}

func (m *Store) DeleteHabit(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.habits[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.habits, id)
	return nil
}

func (m *Store) CompletedDates(ctx context.Context, id string) ([]string, error) {
	h, err := m.GetHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	return h.CompletedDates, nil
}

func (m *Store) Streaks(ctx context.Context, id string) (int, int, error) {
	h, err := m.GetHabit(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	return h.Streak, h.LongestStreak, nil
}

func (m *Store) UpdateHabit(ctx context.Context, id string, fn func(h *habit.Habit) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.habits[id]
	if !ok {
		return storage.ErrNotFound
	}
	h = clone(h)
	if err := fn(&h); err != nil {
		return err
	}
	h.ID = id
	m.habits[id] = h
	return nil
}

func (m *Store) AllCompletedDates(ctx context.Context) (map[string][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]string, len(m.habits))
	for id, h := range m.habits {
		out[id] = slices.Clone(h.CompletedDates)
	}
	return out, nil
}

func (m *Store) ListMotivations(ctx context.Context) ([]habit.Motivation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.motivations), nil
}

func (m *Store) AddMotivation(ctx context.Context, mot habit.Motivation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.motivations = append(m.motivations, mot)
	return nil
}

func (m *Store) GetReflection(ctx context.Context, year, month int) (habit.Reflection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reflections[reflectionKey(year, month)]
	if !ok {
		return habit.Reflection{}, storage.ErrNotFound
	}
	return r, nil
}

func (m *Store) SaveReflection(ctx context.Context, r habit.Reflection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reflections[reflectionKey(r.Year, r.Month)] = r
	return nil
}

func (m *Store) Close() error {
	return nil
}

var _ storage.Store = (*Store)(nil)
