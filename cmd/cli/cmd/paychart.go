// Package cmd - paychart command
package cmd

import (
	"github.com/spf13/cobra"

	"agency-dash/core/output"
	"agency-dash/core/paychart"
)

var chartBeans int64

// paychartCmd shows a pay chart or places a bean total on it
var paychartCmd = &cobra.Command{
	Use:   "paychart <host|agency>",
	Short: "Show a pay chart, or the ranking a bean total reaches",
	Long: `Print the host or agency pay chart. With --beans, report the ranking the
beans reach and how far the next ranking is.

Examples:
  agency-dash paychart host
  agency-dash paychart agency --beans 640000`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(paychart.KindHost), string(paychart.KindAgency)},
	RunE:      runPaychart,
}

func init() {
	paychartCmd.Flags().Int64Var(&chartBeans, "beans", 0, "bean total to place on the chart")
}

func runPaychart(cmd *cobra.Command, args []string) error {
	kind := paychart.Kind(args[0])
	chart, err := paychart.Lookup(kind)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("beans") {
		return render(cmd, output.ChartReport(chart))
	}

	placement, err := paychart.RankFor(chart, chartBeans)
	if err != nil {
		return err
	}
	return render(cmd, output.PlacementReport(kind, placement))
}
