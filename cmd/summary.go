package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <habit-id>",
	Short: "Show streaks and totals for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := newClient().GetHabitSummary(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		w := out(cmd)
		fmt.Fprintf(w, "%s\n", sum.Name)
		fmt.Fprintf(w, "  current streak: %d\n", sum.CurrentStreak)
		fmt.Fprintf(w, "  longest streak: %d\n", sum.LongestStreak)
		fmt.Fprintf(w, "  total days:     %d\n", sum.TotalDaysDone)
		fmt.Fprintf(w, "  this month:     %d (best %d)\n", sum.ThisMonth, sum.BestMonth)
		if sum.FirstLogged != "" {
			fmt.Fprintf(w, "  logged:         %s to %s\n", sum.FirstLogged, sum.LastCompleted)
		}
		if sum.Stage != nil {
			fmt.Fprintf(w, "  stage:          %s\n", sum.Stage.Title)
		}
		if sum.AtRisk {
			fmt.Fprintln(w, "  streak ends tonight unless done today")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
