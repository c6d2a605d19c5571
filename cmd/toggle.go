package cmd

import (
	"fmt"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <habit-id> [date]",
	Short: "Mark or unmark a habit as done (default today)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := calendar.FormatISO(clock().Today())
		if len(args) == 2 {
			if _, err := calendar.ParseISO(args[1]); err != nil {
				return err
			}
			date = args[1]
		}
		res, err := newClient().Toggle(cmd.Context(), args[0], date)
		if err != nil {
			return err
		}
		state := "not done"
		if res.Completed {
			state = "done"
		}
		fmt.Fprintf(out(cmd), "%s marked %s on %s. Streak %d, longest %d\n",
			res.HabitID, state, res.Date, res.Streak, res.LongestStreak)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
