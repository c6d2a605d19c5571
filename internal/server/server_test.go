package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/brk3/momentum/internal/activity"
	"github.com/brk3/momentum/pkg/habit"
	"github.com/brk3/momentum/pkg/versioninfo"
)

func createTestHabit(t *testing.T, h http.Handler, name string) habit.Habit {
	t.Helper()
	rr := mockRequest(h, http.MethodPost, "/habits/", CreateHabitRequest{Name: name, Category: "health"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got %d want 201 (%s)", rr.Code, rr.Body.String())
	}
	var out habit.Habit
	decodeBody(t, rr, &out)
	return out
}

func TestVersion(t *testing.T) {
	rr := mockRequest(newTestServer(t), http.MethodGet, "/version", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var info versioninfo.VersionInfo
	decodeBody(t, rr, &info)
	if info.Version != versioninfo.Version {
		t.Fatalf("got %q want %q", info.Version, versioninfo.Version)
	}
}

func TestListHabits_Empty(t *testing.T) {
	rr := mockRequest(newTestServer(t), http.MethodGet, "/habits/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var resp HabitListResponse
	decodeBody(t, rr, &resp)
	if len(resp.Habits) != 0 {
		t.Fatalf("len=%d want 0", len(resp.Habits))
	}
}

func TestCreateHabit_Invalid(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name string
		body any
	}{
		{"empty name", CreateHabitRequest{Name: ""}},
		{"long name", CreateHabitRequest{Name: strings.Repeat("x", 101)}},
		{"unknown category", CreateHabitRequest{Name: "run", Category: "chores"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := mockRequest(h, http.MethodPost, "/habits/", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("got %d want 400", rr.Code)
			}
		})
	}
}

func TestToggleFlow(t *testing.T) {
	h := newTestServer(t)
	created := createTestHabit(t, h, "guitar")
	path := "/habits/" + created.ID

	for _, d := range []string{"2024-01-31", "2024-02-01"} {
		rr := mockRequest(h, http.MethodPost, path+"/toggle", ToggleRequest{Date: d})
		if rr.Code != http.StatusOK {
			t.Fatalf("toggle %s: got %d want 200", d, rr.Code)
		}
	}

	rr := mockRequest(h, http.MethodGet, path, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var got habit.Habit
	decodeBody(t, rr, &got)
	if got.Streak != 2 || got.LongestStreak != 2 {
		t.Fatalf("streak=%d longest=%d, want 2 and 2", got.Streak, got.LongestStreak)
	}

	rr = mockRequest(h, http.MethodPost, path+"/toggle", ToggleRequest{Date: "2024-02-01"})
	var res habit.ToggleResult
	decodeBody(t, rr, &res)
	if res.Completed || res.Streak != 0 || res.LongestStreak != 2 {
		t.Fatalf("unexpected toggle result %+v", res)
	}

	rr = mockRequest(h, http.MethodGet, path+"/summary", nil)
	var sum HabitSummaryResponse
	decodeBody(t, rr, &sum)
	if sum.HabitSummary.TotalDaysDone != 1 || sum.HabitSummary.Name != "guitar" {
		t.Fatalf("unexpected summary %+v", sum.HabitSummary)
	}
}

func TestToggle_Errors(t *testing.T) {
	h := newTestServer(t)
	created := createTestHabit(t, h, "guitar")

	rr := mockRequest(h, http.MethodPost, "/habits/"+created.ID+"/toggle", ToggleRequest{Date: "02/01/2024"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad date: got %d want 400", rr.Code)
	}
	rr = mockRequest(h, http.MethodPost, "/habits/missing/toggle", ToggleRequest{Date: "2024-02-01"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown habit: got %d want 404", rr.Code)
	}
	var resp ErrorResponse
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp.Error, "missing") {
		t.Fatalf("error %q should name the habit", resp.Error)
	}
}

func TestDeleteHabit(t *testing.T) {
	h := newTestServer(t)
	created := createTestHabit(t, h, "guitar")

	rr := mockRequest(h, http.MethodDelete, "/habits/"+created.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got %d want 204", rr.Code)
	}
	rr = mockRequest(h, http.MethodDelete, "/habits/"+created.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d want 404", rr.Code)
	}
}

func TestActivityEndpoints(t *testing.T) {
	h := newTestServer(t)
	one := createTestHabit(t, h, "one")
	createTestHabit(t, h, "two")
	mockRequest(h, http.MethodPost, "/habits/"+one.ID+"/toggle", ToggleRequest{Date: "2024-02-01"})

	rr := mockRequest(h, http.MethodGet, "/activity/?start=2024-02-01&end=2024-02-01", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200 (%s)", rr.Code, rr.Body.String())
	}
	var act ActivityResponse
	decodeBody(t, rr, &act)
	if len(act.Days) != 1 || act.Days[0].Intensity != 0.5 || act.Days[0].Level != habit.LevelMedium {
		t.Fatalf("unexpected activity %+v", act.Days)
	}

	rr = mockRequest(h, http.MethodGet, "/activity/?start=2024-02-02&end=2024-02-01", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("reversed range: got %d want 400", rr.Code)
	}

	rr = mockRequest(h, http.MethodGet, "/activity/heatmap?year=2024", nil)
	var hm habit.Heatmap
	decodeBody(t, rr, &hm)
	if len(hm.Days) != 366 {
		t.Fatalf("heatmap days=%d want 366", len(hm.Days))
	}

	rr = mockRequest(h, http.MethodGet, "/activity/trend", nil)
	var trend TrendResponse
	decodeBody(t, rr, &trend)
	if trend.Days != activity.DefaultTrendDays || trend.Points[12].Percentage != 50 {
		t.Fatalf("unexpected trend %+v", trend)
	}

	for _, q := range []string{"days=0", "days=91", "days=abc"} {
		rr = mockRequest(h, http.MethodGet, "/activity/trend?"+q, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: got %d want 400", q, rr.Code)
		}
	}
}

func TestOverview(t *testing.T) {
	h := newTestServer(t)
	created := createTestHabit(t, h, "one")
	createTestHabit(t, h, "two")
	mockRequest(h, http.MethodPost, "/habits/"+created.ID+"/toggle", ToggleRequest{Date: testToday})

	rr := mockRequest(h, http.MethodGet, "/overview", nil)
	var ov habit.Overview
	decodeBody(t, rr, &ov)
	if ov.CompletedToday != 1 || ov.TotalHabits != 2 || ov.TodayPercentage != 50 || ov.AllCompletedToday {
		t.Fatalf("unexpected overview %+v", ov)
	}
}

func TestMotivationEndpoints(t *testing.T) {
	h := newTestServer(t)

	rr := mockRequest(h, http.MethodGet, "/motivations/daily", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("empty daily: got %d want 404", rr.Code)
	}

	rr = mockRequest(h, http.MethodPost, "/motivations/seed", nil)
	var seeded SeedResponse
	decodeBody(t, rr, &seeded)
	if seeded.Added != 5 {
		t.Fatalf("seeded %d want 5", seeded.Added)
	}

	rr = mockRequest(h, http.MethodPost, "/motivations/", AddMotivationRequest{Text: "Do the work.", Type: "reason"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add: got %d want 201", rr.Code)
	}

	rr = mockRequest(h, http.MethodGet, "/motivations/", nil)
	var list MotivationListResponse
	decodeBody(t, rr, &list)
	if len(list.Motivations) != 6 {
		t.Fatalf("got %d motivations want 6", len(list.Motivations))
	}

	rr = mockRequest(h, http.MethodGet, "/motivations/daily", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("daily: got %d want 200", rr.Code)
	}
}

func TestReflectionEndpoints(t *testing.T) {
	h := newTestServer(t)

	rr := mockRequest(h, http.MethodPut, "/reflections/2024/2", ReflectionRequest{Content: "Steady month."})
	if rr.Code != http.StatusOK {
		t.Fatalf("put: got %d want 200", rr.Code)
	}
	rr = mockRequest(h, http.MethodGet, "/reflections/2024/2", nil)
	var ref habit.Reflection
	decodeBody(t, rr, &ref)
	if ref.Content != "Steady month." {
		t.Fatalf("got %q", ref.Content)
	}

	for _, path := range []string{"/reflections/2024/13", "/reflections/2024/feb"} {
		rr = mockRequest(h, http.MethodGet, path, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: got %d want 400", path, rr.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t)
	created := createTestHabit(t, h, "one")
	mockRequest(h, http.MethodPost, "/habits/"+created.ID+"/toggle", ToggleRequest{Date: testToday})

	rr := mockRequest(h, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"momentum_toggles_total", "momentum_habits_total", "momentum_http_requests_total"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
