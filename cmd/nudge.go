package cmd

import (
	"fmt"
	"time"

	"github.com/brk3/momentum/internal/nudge"
	"github.com/brk3/momentum/internal/nudge/resend"

	"github.com/spf13/cobra"
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Email a reminder for streaks that end tonight",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Nudge.ResendAPIKey == "" {
			return fmt.Errorf("nudge.resend_api_key (or RESEND_API_KEY) is not set")
		}
		if cfg.Nudge.Email == "" {
			return fmt.Errorf("nudge.email (or MOMENTUM_NUDGE_EMAIL) is not set")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := resend.ResendNotifier{
			ApiKey: cfg.Nudge.ResendAPIKey,
			Email:  cfg.Nudge.Email,
			From:   cfg.Nudge.From,
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		sent, err := nudge.Nudge(cmd.Context(), newClient(), &n, time.Now().In(loc))
		if err != nil {
			return err
		}
		if !sent {
			fmt.Fprintln(out(cmd), "No streaks at risk")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
