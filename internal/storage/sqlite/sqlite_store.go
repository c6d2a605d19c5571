package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/pkg/habit"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'other',
	color TEXT,
	streak INTEGER NOT NULL DEFAULT 0,
	longest_streak INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_completions (
	habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	completed_date TEXT NOT NULL,
	PRIMARY KEY (habit_id, completed_date)
);

CREATE TABLE IF NOT EXISTS motivations (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	text TEXT NOT NULL,
	author TEXT,
	type TEXT NOT NULL DEFAULT 'quote'
);

CREATE TABLE IF NOT EXISTS reflections (
	year INTEGER NOT NULL,
	month INTEGER NOT NULL,
	content TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (year, month)
);`

type Store struct {
	db *sql.DB
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: SQLite has a single writer anyway, and it keeps the
	// foreign_keys pragma on every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func readHabit(ctx context.Context, q querier, id string) (habit.Habit, error) {
	var h habit.Habit
	var color sql.NullString
	var createdAt string
	err := q.QueryRowContext(ctx, `
		SELECT id, name, category, color, streak, longest_streak, created_at
		FROM habits WHERE id = ?`, id).
		Scan(&h.ID, &h.Name, &h.Category, &color, &h.Streak, &h.LongestStreak, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return habit.Habit{}, storage.ErrNotFound
	}
	if err != nil {
		return habit.Habit{}, err
	}
	h.Color = color.String
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return habit.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", id, err)
	}
	h.CompletedDates, err = readDates(ctx, q, id)
	if err != nil {
		return habit.Habit{}, err
	}
	return h, nil
}

func readDates(ctx context.Context, q querier, id string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT completed_date FROM habit_completions
		WHERE habit_id = ? ORDER BY completed_date`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func writeDates(ctx context.Context, tx *sql.Tx, id string, dates []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM habit_completions WHERE habit_id = ?`, id); err != nil {
		return err
	}
	for _, d := range dates {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO habit_completions (habit_id, completed_date) VALUES (?, ?)
			ON CONFLICT DO NOTHING`, id, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateHabit(ctx context.Context, h habit.Habit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO habits (id, name, category, color, streak, longest_streak, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Category, nullString(h.Color), h.Streak, h.LongestStreak,
		h.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert habit %s: %w", h.ID, err)
	}
	if err := writeDates(ctx, tx, h.ID, h.CompletedDates); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) GetHabit(ctx context.Context, id string) (habit.Habit, error) {
	return readHabit(ctx, s.db, id)
}

func (s *Store) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]habit.Habit, 0, len(ids))
	for _, id := range ids {
		h, err := readHabit(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) CompletedDates(ctx context.Context, id string) ([]string, error) {
	h, err := readHabit(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return h.CompletedDates, nil
}

func (s *Store) Streaks(ctx context.Context, id string) (int, int, error) {
	var current, longest int
	err := s.db.QueryRowContext(ctx,
		`SELECT streak, longest_streak FROM habits WHERE id = ?`, id).Scan(&current, &longest)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, storage.ErrNotFound
	}
	return current, longest, err
}

// UpdateHabit loads, mutates and writes the habit inside one transaction.
func (s *Store) UpdateHabit(ctx context.Context, id string, fn func(h *habit.Habit) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	h, err := readHabit(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := fn(&h); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE habits SET name = ?, category = ?, color = ?, streak = ?, longest_streak = ?
		WHERE id = ?`,
		h.Name, h.Category, nullString(h.Color), h.Streak, h.LongestStreak, id)
	if err != nil {
		return err
	}
	if err := writeDates(ctx, tx, id, h.CompletedDates); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) AllCompletedDates(ctx context.Context) (map[string][]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out := map[string][]string{}
	rows, err := tx.QueryContext(ctx, `SELECT id FROM habits`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		out[id] = []string{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.QueryContext(ctx,
		`SELECT habit_id, completed_date FROM habit_completions ORDER BY habit_id, completed_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, d string
		if err := rows.Scan(&id, &d); err != nil {
			return nil, err
		}
		out[id] = append(out[id], d)
	}
	return out, rows.Err()
}

func (s *Store) ListMotivations(ctx context.Context) ([]habit.Motivation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, author, type FROM motivations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []habit.Motivation{}
	for rows.Next() {
		var m habit.Motivation
		var author sql.NullString
		if err := rows.Scan(&m.ID, &m.Text, &author, &m.Type); err != nil {
			return nil, err
		}
		m.Author = author.String
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) AddMotivation(ctx context.Context, m habit.Motivation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO motivations (id, text, author, type) VALUES (?, ?, ?, ?)`,
		m.ID, m.Text, nullString(m.Author), m.Type)
	return err
}

func (s *Store) GetReflection(ctx context.Context, year, month int) (habit.Reflection, error) {
	r := habit.Reflection{Year: year, Month: month}
	var updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT content, updated_at FROM reflections WHERE year = ? AND month = ?`, year, month).
		Scan(&r.Content, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return habit.Reflection{}, storage.ErrNotFound
	}
	if err != nil {
		return habit.Reflection{}, err
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return habit.Reflection{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return r, nil
}

func (s *Store) SaveReflection(ctx context.Context, r habit.Reflection) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reflections (year, month, content, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(year, month) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at`,
		r.Year, r.Month, r.Content, r.UpdatedAt.UTC().Format(time.RFC3339))
	return err
}

var _ storage.Store = (*Store)(nil)
