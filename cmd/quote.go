package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedQuotes bool

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show today's motivation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if seedQuotes {
			n, err := c.SeedMotivations(cmd.Context())
			if err != nil {
				return err
			}
			if n > 0 {
				fmt.Fprintf(out(cmd), "Seeded %d motivations\n", n)
			}
		}
		m, err := c.DailyMotivation(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "%q\n", m.Text)
		if m.Author != "" {
			fmt.Fprintf(out(cmd), "  - %s\n", m.Author)
		}
		return nil
	},
}

func init() {
	quoteCmd.Flags().BoolVar(&seedQuotes, "seed", false, "add the built-in motivations if none exist")
	rootCmd.AddCommand(quoteCmd)
}
