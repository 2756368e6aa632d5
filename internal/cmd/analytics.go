package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/analytics"
	"github.com/BerylCAtieno/network-navigator/internal/store"
	"github.com/spf13/cobra"
)

var analyticsJSON bool

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show networking statistics and insights",
	Args:  cobra.NoArgs,
	RunE:  runAnalytics,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)

	analyticsCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Print the full report as JSON")
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	report := analytics.NewAnalyzer(analytics.DefaultConfig(), time.Now()).Report(a.store.List(store.Filter{}))
	out := cmd.OutOrStdout()
	if analyticsJSON {
		return writeJSON(out, report)
	}

	fmt.Fprintf(out, "Contacts:           %d\n", report.Stats.TotalContacts)
	fmt.Fprintf(out, "Hot contacts:       %d\n", report.Stats.HotContacts)
	fmt.Fprintf(out, "Interactions:       %d\n", report.Stats.TotalInteractions)
	fmt.Fprintf(out, "Needs follow-up:    %d\n", report.Stats.NeedsFollowUp)

	fmt.Fprintln(out, "\nWarmth:")
	for _, share := range report.Warmth {
		fmt.Fprintf(out, "  %-5s %3d  %5.1f%%\n", share.Level, share.Count, share.Percent)
	}

	active := 0
	for _, day := range report.Activity {
		active += day.Count
	}
	fmt.Fprintf(out, "\nInteractions in the last %d days: %d\n", len(report.Activity), active)

	if len(report.Insights) > 0 {
		fmt.Fprintln(out, "\nInsights:")
		for _, in := range report.Insights {
			fmt.Fprintf(out, "  %s\n    %s\n", in.Title, strings.TrimSpace(in.Description))
		}
	}
	return nil
}
