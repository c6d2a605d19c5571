package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	habitCategory string
	habitColor    string
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Manage habits",
}

var habitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with their streaks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := newClient().ListHabits(cmd.Context())
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			fmt.Fprintln(out(cmd), "No habits yet. Add one with: momentum habits add <name>")
			return nil
		}
		tw := tabwriter.NewWriter(out(cmd), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTREAK\tLONGEST")
		for _, h := range habits {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", h.ID, h.Name, h.Category, h.Streak, h.LongestStreak)
		}
		return tw.Flush()
	},
}

var habitsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := newClient().CreateHabit(cmd.Context(), args[0], habitCategory, habitColor)
		if err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "Added %q (%s)\n", h.Name, h.ID)
		return nil
	},
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm <habit-id>",
	Short: "Delete a habit and its history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().DeleteHabit(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	habitsAddCmd.Flags().StringVar(&habitCategory, "category", "", "health, study, mindfulness, creative or other")
	habitsAddCmd.Flags().StringVar(&habitColor, "color", "", "display colour")
	habitsCmd.AddCommand(habitsListCmd, habitsAddCmd, habitsRmCmd)
	rootCmd.AddCommand(habitsCmd)
}
