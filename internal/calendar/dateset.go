package calendar

import (
	"maps"
	"slices"
	"time"
)

// DateSet is a set of ISO calendar dates. The zero value is not usable; build
// one with NewDateSet.
type DateSet map[string]struct{}

// NewDateSet validates and collects dates. Duplicates collapse.
func NewDateSet(dates ...string) (DateSet, error) {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		if _, err := ParseISO(d); err != nil {
			return nil, err
		}
		s[d] = struct{}{}
	}
	return s, nil
}

func (s DateSet) Has(date string) bool {
	_, ok := s[date]
	return ok
}

func (s DateSet) HasDay(t time.Time) bool {
	return s.Has(FormatISO(t))
}

func (s DateSet) Add(date string) {
	s[date] = struct{}{}
}

func (s DateSet) Remove(date string) {
	delete(s, date)
}

// Toggle flips membership of date and reports whether it is now present.
func (s DateSet) Toggle(date string) bool {
	if s.Has(date) {
		delete(s, date)
		return false
	}
	s[date] = struct{}{}
	return true
}

func (s DateSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order. ISO dates sort
// chronologically as plain strings.
func (s DateSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s DateSet) Clone() DateSet {
	return maps.Clone(s)
}
