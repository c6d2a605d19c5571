package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brk3/momentum/internal/config"
	"github.com/brk3/momentum/internal/logger"
	"github.com/brk3/momentum/internal/tracker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	cfg *config.Config
	svc *tracker.Service
}

func New(cfg *config.Config, svc *tracker.Service) *Server {
	return &Server{cfg: cfg, svc: svc}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(metricsMiddleware)
	r.Use(limitBody)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.createHabit)
		r.Get("/{habit_id}", s.getHabit)
		r.Delete("/{habit_id}", s.deleteHabit)
		r.Post("/{habit_id}/toggle", s.toggleHabit)
		r.Get("/{habit_id}/summary", s.getHabitSummary)
	})
	r.Route("/activity", func(r chi.Router) {
		r.Get("/", s.getActivity)
		r.Get("/heatmap", s.getHeatmap)
		r.Get("/trend", s.getTrend)
	})
	r.Get("/overview", s.getOverview)
	r.Route("/motivations", func(r chi.Router) {
		r.Get("/", s.listMotivations)
		r.Post("/", s.addMotivation)
		r.Post("/seed", s.seedMotivations)
		r.Get("/daily", s.dailyMotivation)
	})
	r.Get("/reflections/{year}/{month}", s.getReflection)
	r.Put("/reflections/{year}/{month}", s.putReflection)

	return r
}

// ListenAndServe serves the API until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if habits, err := s.svc.ListHabits(ctx); err == nil {
		activeHabits.Set(float64(len(habits)))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
