package nudge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brk3/momentum/pkg/habit"
)

func newMockClient() *mockClient {
	return &mockClient{
		habits: []habit.Habit{{ID: "g1", Name: "guitar"}, {ID: "c1", Name: "coding"}},
		summary: map[string]*habit.HabitSummary{
			"g1": {Name: "guitar", CurrentStreak: 3, AtRisk: true},
			"c1": {Name: "coding", CurrentStreak: 5},
		},
	}
}

func TestHabitsExpiring(t *testing.T) {
	got, err := HabitsExpiring(context.Background(), newMockClient())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "guitar" {
		t.Fatalf("got %v, want [guitar]", got)
	}
}

func TestHabitsExpiring_Error(t *testing.T) {
	f := newMockClient()
	f.err = errors.New("connection refused")
	if _, err := HabitsExpiring(context.Background(), f); err == nil {
		t.Fatal("expected error")
	}
}

func TestNudge(t *testing.T) {
	now := time.Date(2024, 1, 10, 21, 30, 0, 0, time.UTC)
	n := &mockNotifier{}
	sent, err := Nudge(context.Background(), newMockClient(), n, now)
	if err != nil {
		t.Fatal(err)
	}
	if !sent || !n.called {
		t.Fatal("expected notifier to be called")
	}
	if n.hours != 3 {
		t.Fatalf("hours=%d want 3", n.hours)
	}
}

func TestNudge_NothingExpiring(t *testing.T) {
	f := newMockClient()
	f.summary["g1"].AtRisk = false
	n := &mockNotifier{}
	sent, err := Nudge(context.Background(), f, n, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if sent || n.called {
		t.Fatal("notifier should not be called")
	}
}

func TestNudge_NotifierError(t *testing.T) {
	n := &mockNotifier{err: errors.New("rate limited")}
	if _, err := Nudge(context.Background(), newMockClient(), n, time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
