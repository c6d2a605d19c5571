package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/brk3/momentum/internal/server"
	"github.com/brk3/momentum/pkg/habit"
	"github.com/brk3/momentum/pkg/versioninfo"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

// APIError is a non-2xx response. Message carries the server's error text
// when the body had one.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Op: op, StatusCode: res.StatusCode}
		var e server.ErrorResponse
		if json.NewDecoder(res.Body).Decode(&e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	var response server.HabitListResponse
	if err := c.do(ctx, "list habits", http.MethodGet, "/habits", nil, &response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) CreateHabit(ctx context.Context, name, category, color string) (*habit.Habit, error) {
	var out habit.Habit
	req := server.CreateHabitRequest{Name: name, Category: category, Color: color}
	if err := c.do(ctx, "create habit", http.MethodPost, "/habits", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	return c.do(ctx, "delete "+id, http.MethodDelete, "/habits/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Toggle(ctx context.Context, id, date string) (*habit.ToggleResult, error) {
	var out habit.ToggleResult
	path := "/habits/" + url.PathEscape(id) + "/toggle"
	if err := c.do(ctx, "toggle "+id, http.MethodPost, path, server.ToggleRequest{Date: date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetHabitSummary(ctx context.Context, id string) (*habit.HabitSummary, error) {
	var out server.HabitSummaryResponse
	path := "/habits/" + url.PathEscape(id) + "/summary"
	if err := c.do(ctx, "summary "+id, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.HabitSummary, nil
}

func (c *Client) Activity(ctx context.Context, start, end string) ([]habit.Day, error) {
	q := url.Values{"start": {start}, "end": {end}}
	var out server.ActivityResponse
	if err := c.do(ctx, "activity", http.MethodGet, "/activity?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Days, nil
}

func (c *Client) Heatmap(ctx context.Context, year int) (*habit.Heatmap, error) {
	path := "/activity/heatmap"
	if year != 0 {
		path += "?year=" + strconv.Itoa(year)
	}
	var out habit.Heatmap
	if err := c.do(ctx, "heatmap", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Trend(ctx context.Context, days int) ([]habit.TrendPoint, error) {
	path := "/activity/trend"
	if days != 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var out server.TrendResponse
	if err := c.do(ctx, "trend", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Points, nil
}

func (c *Client) Overview(ctx context.Context) (*habit.Overview, error) {
	var out habit.Overview
	if err := c.do(ctx, "overview", http.MethodGet, "/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SeedMotivations(ctx context.Context) (int, error) {
	var out server.SeedResponse
	if err := c.do(ctx, "seed motivations", http.MethodPost, "/motivations/seed", nil, &out); err != nil {
		return 0, err
	}
	return out.Added, nil
}

func (c *Client) DailyMotivation(ctx context.Context) (*habit.Motivation, error) {
	var out habit.Motivation
	if err := c.do(ctx, "daily motivation", http.MethodGet, "/motivations/daily", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Reflection(ctx context.Context, year, month int) (*habit.Reflection, error) {
	var out habit.Reflection
	path := fmt.Sprintf("/reflections/%d/%d", year, month)
	if err := c.do(ctx, "reflection", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveReflection(ctx context.Context, year, month int, content string) (*habit.Reflection, error) {
	var out habit.Reflection
	path := fmt.Sprintf("/reflections/%d/%d", year, month)
	if err := c.do(ctx, "save reflection", http.MethodPut, path, server.ReflectionRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Version(ctx context.Context) (*versioninfo.VersionInfo, error) {
	var out versioninfo.VersionInfo
	if err := c.do(ctx, "version", http.MethodGet, "/version", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
