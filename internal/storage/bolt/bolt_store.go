package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/pkg/habit"
	"go.etcd.io/bbolt"
)

const (
	habitsBucket      = "habits"
	completionsBucket = "completions"
	motivationsBucket = "motivations"
	reflectionsBucket = "reflections"
)

var present = []byte{1}

type Store struct {
	db *bbolt.DB
}

// habitRecord is the stored form of a habit. Completed dates live in a nested
// bucket under completions/<habit id>, keyed by ISO date, so a cursor walks
// them in chronological order.
type habitRecord struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      habit.Category `json:"category"`
	Color         string         `json:"color,omitempty"`
	Streak        int            `json:"streak"`
	LongestStreak int            `json:"longest_streak"`
	CreatedAt     int64          `json:"created_at"`
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{habitsBucket, completionsBucket, motivationsBucket, reflectionsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func toRecord(h habit.Habit) habitRecord {
	return habitRecord{
		ID:            h.ID,
		Name:          h.Name,
		Category:      h.Category,
		Color:         h.Color,
		Streak:        h.Streak,
		LongestStreak: h.LongestStreak,
		CreatedAt:     h.CreatedAt.Unix(),
	}
}

func readHabit(tx *bbolt.Tx, id string) (habit.Habit, error) {
	v := tx.Bucket([]byte(habitsBucket)).Get([]byte(id))
	if v == nil {
		return habit.Habit{}, storage.ErrNotFound
	}
	var rec habitRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		return habit.Habit{}, fmt.Errorf("decode habit %s: %w", id, err)
	}
	return habit.Habit{
		ID:             rec.ID,
		Name:           rec.Name,
		Category:       rec.Category,
		Color:          rec.Color,
		Streak:         rec.Streak,
		LongestStreak:  rec.LongestStreak,
		CompletedDates: readDates(tx, id),
		CreatedAt:      unixTime(rec.CreatedAt),
	}, nil
}

func readDates(tx *bbolt.Tx, id string) []string {
	out := []string{}
	b := tx.Bucket([]byte(completionsBucket)).Bucket([]byte(id))
	if b == nil {
		return out
	}
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		out = append(out, string(k))
	}
	return out
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func writeHabit(tx *bbolt.Tx, h habit.Habit) error {
	val, err := json.Marshal(toRecord(h))
	if err != nil {
		return err
	}
	if err := tx.Bucket([]byte(habitsBucket)).Put([]byte(h.ID), val); err != nil {
		return err
	}

	dates, err := tx.Bucket([]byte(completionsBucket)).CreateBucketIfNotExists([]byte(h.ID))
	if err != nil {
		return err
	}
	want := make(map[string]struct{}, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		want[d] = struct{}{}
	}

	var stale [][]byte
	c := dates.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		if _, ok := want[string(k)]; ok {
			delete(want, string(k))
			continue
		}
		stale = append(stale, append([]byte(nil), k...))
	}
	for _, k := range stale {
		if err := dates.Delete(k); err != nil {
			return err
		}
	}
	for d := range want {
		if err := dates.Put([]byte(d), present); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateHabit(ctx context.Context, h habit.Habit) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(habitsBucket)).Get([]byte(h.ID)) != nil {
			return fmt.Errorf("habit %s already exists", h.ID)
		}
		return writeHabit(tx, h)
	})
}

func (s *Store) GetHabit(ctx context.Context, id string) (habit.Habit, error) {
	var out habit.Habit
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		out, err = readHabit(tx, id)
		return err
	})
	return out, err
}

func (s *Store) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	var out []habit.Habit
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(habitsBucket)).ForEach(func(k, _ []byte) error {
			h, err := readHabit(tx, string(k))
			if err != nil {
				return err
			}
			out = append(out, h)
			return nil
		})
	})
	return out, err
}

func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		habits := tx.Bucket([]byte(habitsBucket))
		if habits.Get([]byte(id)) == nil {
			return storage.ErrNotFound
		}
		if err := habits.Delete([]byte(id)); err != nil {
			return err
		}
		completions := tx.Bucket([]byte(completionsBucket))
		if completions.Bucket([]byte(id)) == nil {
			return nil
		}
		return completions.DeleteBucket([]byte(id))
	})
}

func (s *Store) CompletedDates(ctx context.Context, id string) ([]string, error) {
	h, err := s.GetHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	return h.CompletedDates, nil
}

func (s *Store) Streaks(ctx context.Context, id string) (int, int, error) {
	h, err := s.GetHabit(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	return h.Streak, h.LongestStreak, nil
}

// UpdateHabit runs fn inside a single read-write transaction. bbolt allows one
// writer at a time, so concurrent updates of the same habit serialise.
func (s *Store) UpdateHabit(ctx context.Context, id string, fn func(h *habit.Habit) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		h, err := readHabit(tx, id)
		if err != nil {
			return err
		}
		if err := fn(&h); err != nil {
			return err
		}
		h.ID = id
		return writeHabit(tx, h)
	})
}

func (s *Store) AllCompletedDates(ctx context.Context) (map[string][]string, error) {
	out := map[string][]string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(habitsBucket)).ForEach(func(k, _ []byte) error {
			out[string(k)] = readDates(tx, string(k))
			return nil
		})
	})
	return out, err
}

func (s *Store) ListMotivations(ctx context.Context) ([]habit.Motivation, error) {
	out := []habit.Motivation{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(motivationsBucket)).ForEach(func(_, v []byte) error {
			var m habit.Motivation
			if err := json.Unmarshal(v, &m); err != nil {
				return err
			}
			out = append(out, m)
			return nil
		})
	})
	return out, err
}

// AddMotivation keys entries by bucket sequence so they list in insertion
// order.
func (s *Store) AddMotivation(ctx context.Context, m habit.Motivation) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(motivationsBucket))
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		val, err := json.Marshal(m)
		if err != nil {
			return err
		}
		return bucket.Put(binary.BigEndian.AppendUint64(nil, seq), val)
	})
}

func reflectionKey(year, month int) []byte {
	return fmt.Appendf(nil, "%04d-%02d", year, month)
}

func (s *Store) GetReflection(ctx context.Context, year, month int) (habit.Reflection, error) {
	var out habit.Reflection
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(reflectionsBucket)).Get(reflectionKey(year, month))
		if v == nil {
			return storage.ErrNotFound
		}
		return json.Unmarshal(v, &out)
	})
	return out, err
}

func (s *Store) SaveReflection(ctx context.Context, r habit.Reflection) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		val, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(reflectionsBucket)).Put(reflectionKey(r.Year, r.Month), val)
	})
}

var _ storage.Store = (*Store)(nil)
