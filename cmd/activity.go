package cmd

import (
	"fmt"
	"strings"

	"github.com/brk3/momentum/internal/activity"
	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/pkg/habit"
	"github.com/spf13/cobra"
)

var (
	heatmapYear   int
	trendDays     int
	activityStart string
	activityEnd   string
)

var levelGlyphs = map[habit.Level]string{
	habit.LevelNone:   "·",
	habit.LevelLow:    "░",
	habit.LevelMedium: "▒",
	habit.LevelHigh:   "▓",
	habit.LevelFull:   "█",
}

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show a year of activity, one row per month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hm, err := newClient().Heatmap(cmd.Context(), heatmapYear)
		if err != nil {
			return err
		}
		w := out(cmd)
		fmt.Fprintf(w, "%d\n", hm.Year)
		var row strings.Builder
		month := ""
		for _, d := range hm.Days {
			if m := d.Date[5:7]; m != month {
				if month != "" {
					fmt.Fprintln(w, row.String())
					row.Reset()
				}
				month = m
				row.WriteString(m + " ")
			}
			row.WriteString(levelGlyphs[d.Level])
		}
		if row.Len() > 0 {
			fmt.Fprintln(w, row.String())
		}
		return nil
	},
}

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show daily completion percentage for recent days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := newClient().Trend(cmd.Context(), trendDays)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Fprintf(out(cmd), "%s %3d%% %s\n", p.Date, p.Percentage, strings.Repeat("█", p.Percentage/10))
		}
		return nil
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show per-day completions for a date range (default the last 7 days)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := activityStart, activityEnd
		if end == "" {
			end = calendar.FormatISO(clock().Today())
		}
		if start == "" {
			to, err := calendar.ParseISO(end)
			if err != nil {
				return err
			}
			start = calendar.FormatISO(calendar.AddDays(to, -6))
		}
		days, err := newClient().Activity(cmd.Context(), start, end)
		if err != nil {
			return err
		}
		for _, d := range days {
			fmt.Fprintf(out(cmd), "%s %s %d/%d\n", d.Date, levelGlyphs[d.Level], d.Completed, d.Total)
		}
		return nil
	},
}

func init() {
	activityCmd.Flags().StringVar(&activityStart, "start", "", "first day, YYYY-MM-DD")
	activityCmd.Flags().StringVar(&activityEnd, "end", "", "last day, YYYY-MM-DD (default today)")
	heatmapCmd.Flags().IntVar(&heatmapYear, "year", 0, "year to show (default current year)")
	trendCmd.Flags().IntVar(&trendDays, "days", activity.DefaultTrendDays, "number of days, 1-90")
	rootCmd.AddCommand(activityCmd, heatmapCmd, trendCmd)
}
