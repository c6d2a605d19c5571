package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/brk3/momentum/internal/apiclient"
	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/config"
	"github.com/brk3/momentum/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfg        config.Config
	configFile string
	apiBaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Track daily habits and keep your streaks alive",
	Long: `
	Momentum tracks daily habits: toggle completions, watch streaks grow, and
	review yearly heatmaps and trends. Run "momentum server" to host the API;
	the other commands talk to it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			if err := os.Setenv("MOMENTUM_CONFIG", configFile); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if apiBaseURL != "" {
			cfg.APIBaseURL = apiBaseURL
		}
		return logger.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(cfg.APIBaseURL)
}

func clock() calendar.Clock {
	loc, err := cfg.Location()
	if err != nil {
		loc = time.UTC
	}
	return calendar.SystemClock{Location: loc}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $MOMENTUM_CONFIG or config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "API base URL, overrides api_base_url")
}
