package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show today's progress across all habits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ov, err := newClient().Overview(cmd.Context())
		if err != nil {
			return err
		}
		w := out(cmd)
		fmt.Fprintf(w, "%s: %d/%d done (%d%%)\n", ov.Date, ov.CompletedToday, ov.TotalHabits, ov.TodayPercentage)
		fmt.Fprintf(w, "best current streak %d, longest %d\n", ov.CurrentStreak, ov.LongestStreak)
		if ov.AllCompletedToday {
			fmt.Fprintln(w, "Everything done for today.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
