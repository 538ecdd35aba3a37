// Package cmd - paysheet command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agency-dash/adapters/tables"
	"agency-dash/core/output"
	"agency-dash/core/paysheet"
	"agency-dash/internal/config"
	"agency-dash/internal/logging"
)

// paysheetCmd prices a batch of hosts
var paysheetCmd = &cobra.Command{
	Use:   "paysheet <hosts.csv>",
	Short: "Calculate host payments from a CSV file",
	Long: `Read one host per row and calculate base pay, bonuses and deductions
under the configured payment rules.

Required columns: id, name, diamonds_earned, pk_wins, days_worked
Optional columns: additional_bonuses, deductions

Examples:
  agency-dash paysheet hosts.csv
  agency-dash paysheet hosts.csv --format csv > paysheet.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runPaysheet,
}

func runPaysheet(cmd *cobra.Command, args []string) error {
	hosts, err := tables.LoadHosts(args[0])
	if err != nil {
		return err
	}

	sheet, err := paysheet.NewSheet(config.Get().PaymentRules())
	if err != nil {
		return err
	}
	for _, host := range hosts {
		if _, err := sheet.Add(host); err != nil {
			return err
		}
	}

	summary := sheet.Summary()
	logging.Debug("Paysheet calculated",
		zap.String("file", args[0]),
		zap.Int("hosts", summary.Hosts),
		zap.String("total", summary.TotalPayout.String()))

	return render(cmd, output.PaysheetReport(sheet))
}
