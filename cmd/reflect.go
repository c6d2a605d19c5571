package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var reflectCmd = &cobra.Command{
	Use:   "reflect <year> <month> [text...]",
	Short: "Read or write the reflection for a month",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("year must be a number: %w", err)
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("month must be a number: %w", err)
		}

		c := newClient()
		if len(args) > 2 {
			r, err := c.SaveReflection(cmd.Context(), year, month, strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Saved reflection for %04d-%02d\n", r.Year, r.Month)
			return nil
		}

		r, err := c.Reflection(cmd.Context(), year, month)
		if err != nil {
			return err
		}
		if r.Content == "" {
			fmt.Fprintf(out(cmd), "No reflection for %04d-%02d\n", year, month)
			return nil
		}
		fmt.Fprintln(out(cmd), r.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reflectCmd)
}
