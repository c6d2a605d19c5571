package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/logger"
	"github.com/brk3/momentum/internal/server"
	"github.com/brk3/momentum/internal/storage/backend"
	"github.com/brk3/momentum/internal/tracker"
	"github.com/spf13/cobra"
)

var serverToday string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return startServer(ctx)
	},
}

func startServer(ctx context.Context) error {
	store, err := backend.Open(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()

	c := clock()
	if serverToday != "" {
		t, err := calendar.ParseISO(serverToday)
		if err != nil {
			return err
		}
		c = calendar.FixedClock(t)
		logger.Warn("Serving with a fixed date", "today", serverToday)
	}

	svc := tracker.New(store, c)
	return server.New(&cfg, svc).ListenAndServe(ctx)
}

func init() {
	serverCmd.Flags().StringVar(&serverToday, "today", "", "pin today to a YYYY-MM-DD date")
	rootCmd.AddCommand(serverCmd)
}
