package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/logger"
	"github.com/brk3/momentum/internal/storage"
	"github.com/brk3/momentum/internal/tracker"
	"github.com/brk3/momentum/pkg/versioninfo"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func respond(w http.ResponseWriter, code int, v any) {
	if err := writeJSON(w, code, v); err != nil {
		logger.Error("Failed to serialize response", "error", err)
	}
}

// writeError maps service errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		dateErr    *calendar.InvalidDateError
		invalidErr *tracker.ValidationError
		code       int
		msg        = err.Error()
	)
	switch {
	case errors.As(err, &dateErr), errors.As(err, &invalidErr):
		code = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, tracker.ErrNoMotivations):
		code = http.StatusNotFound
	default:
		code = http.StatusInternalServerError
		msg = "internal error"
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	respond(w, code, ErrorResponse{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warn("Invalid JSON in request", "path", r.URL.Path, "error", err)
		respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return false
	}
	return true
}

func (s *Server) refreshHabitGauge(r *http.Request) {
	habits, err := s.svc.ListHabits(r.Context())
	if err != nil {
		logger.Warn("Failed to update active habits metric", "error", err)
		return
	}
	activeHabits.Set(float64(len(habits)))
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	respond(w, http.StatusOK, info)
}

func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := s.svc.ListHabits(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.Debug("Listed habits", "count", len(habits))
	respond(w, http.StatusOK, HabitListResponse{Habits: habits})
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var req CreateHabitRequest
	if !decode(w, r, &req) {
		return
	}
	h, err := s.svc.CreateHabit(r.Context(), req.Name, req.Category, req.Color)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.Info("Habit created", "habit_id", h.ID, "name", h.Name)
	s.refreshHabitGauge(r)
	respond(w, http.StatusCreated, h)
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	h, err := s.svc.GetHabit(r.Context(), chi.URLParam(r, "habit_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, h)
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	if err := s.svc.DeleteHabit(r.Context(), habitID); err != nil {
		writeError(w, r, err)
		return
	}
	logger.Info("Habit deleted", "habit_id", habitID)
	s.refreshHabitGauge(r)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleHabit(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.svc.Toggle(r.Context(), chi.URLParam(r, "habit_id"), req.Date)
	recordToggle(res.Completed, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (s *Server) getHabitSummary(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	sum, err := s.svc.Summary(r.Context(), habitID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, HabitSummaryResponse{HabitID: habitID, HabitSummary: sum})
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	start, end := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	days, err := s.svc.Activity(r.Context(), start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, ActivityResponse{Start: start, End: end, Days: days})
}

func (s *Server) getHeatmap(w http.ResponseWriter, r *http.Request) {
	year := s.svc.Today().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respond(w, http.StatusBadRequest, ErrorResponse{Error: "year must be a number"})
			return
		}
		year = n
	}
	hm, err := s.svc.Heatmap(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, hm)
}

func (s *Server) getTrend(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respond(w, http.StatusBadRequest, ErrorResponse{Error: "days must be a number"})
			return
		}
		days = n
		if days == 0 {
			respond(w, http.StatusBadRequest, ErrorResponse{Error: "days must be at least 1"})
			return
		}
	}
	points, err := s.svc.Trend(r.Context(), days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, TrendResponse{Days: len(points), Points: points})
}

func (s *Server) getOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.svc.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, ov)
}

func (s *Server) listMotivations(w http.ResponseWriter, r *http.Request) {
	ms, err := s.svc.Motivations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, MotivationListResponse{Motivations: ms})
}

func (s *Server) addMotivation(w http.ResponseWriter, r *http.Request) {
	var req AddMotivationRequest
	if !decode(w, r, &req) {
		return
	}
	m, err := s.svc.AddMotivation(r.Context(), req.Text, req.Author, req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, m)
}

func (s *Server) seedMotivations(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.SeedMotivations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, SeedResponse{Added: n})
}

func (s *Server) dailyMotivation(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.DailyMotivation(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, m)
}

func yearMonth(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

func (s *Server) getReflection(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(r)
	if !ok {
		respond(w, http.StatusBadRequest, ErrorResponse{Error: "year and month must be numbers"})
		return
	}
	ref, err := s.svc.Reflection(r.Context(), year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, ref)
}

func (s *Server) putReflection(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(r)
	if !ok {
		respond(w, http.StatusBadRequest, ErrorResponse{Error: "year and month must be numbers"})
		return
	}
	var req ReflectionRequest
	if !decode(w, r, &req) {
		return
	}
	ref, err := s.svc.SaveReflection(r.Context(), year, month, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, ref)
}
