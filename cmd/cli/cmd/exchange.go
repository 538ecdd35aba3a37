// Package cmd - exchange command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agency-dash/core/exchange"
	"agency-dash/core/output"
	"agency-dash/internal/config"
	"agency-dash/internal/logging"
)

var exchangeTable string

// exchangeCmd represents the exchange command
var exchangeCmd = &cobra.Command{
	Use:   "exchange <beans>",
	Short: "Show how many diamonds a bean balance buys",
	Long: `Spend beans on the largest bundles first and report the bundles bought,
the diamonds received and the beans left over.

Examples:
  agency-dash exchange 11000
  agency-dash exchange 15107 --format markdown
  agency-dash exchange 500 --tables gems.hcl --table gems`,
	Args: cobra.ExactArgs(1),
	RunE: runExchange,
}

func init() {
	exchangeCmd.Flags().StringVar(&exchangeTable, "table", "", "exchange table name (default from config)")
}

func runExchange(cmd *cobra.Command, args []string) error {
	beans, err := parseCount("beans", args[0])
	if err != nil {
		return err
	}

	set, err := loadTables()
	if err != nil {
		return err
	}
	name := exchangeTable
	if name == "" {
		name = config.Get().Tables.Exchange
	}
	tiers, err := set.ExchangeTable(name)
	if err != nil {
		return err
	}

	result, err := exchange.ComputeBreakdown(beans, tiers)
	if err != nil {
		return err
	}
	logging.Debug("Exchange computed",
		zap.String("table", name),
		zap.Int64("beans", beans),
		zap.Int64("diamonds", result.TotalYield),
		zap.Int64("remainder", result.Remainder))

	return render(cmd, output.ExchangeReport(result))
}
