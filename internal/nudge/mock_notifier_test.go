package nudge

import "context"

type mockNotifier struct {
	called bool
	habits []string
	hours  int
	err    error
}

func (m *mockNotifier) SendNudge(ctx context.Context, habits []string, hoursTillExpiry int) error {
	m.called = true
	m.habits = habits
	m.hours = hoursTillExpiry
	return m.err
}
