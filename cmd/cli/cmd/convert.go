// Package cmd - conversion commands: convert, pk, target
package cmd

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"agency-dash/core/conversion"
	"agency-dash/core/output"
	"agency-dash/internal/config"
	apperrors "agency-dash/internal/errors"
)

// convertCmd converts between beans, diamonds and dollars
var convertCmd = &cobra.Command{
	Use:   "convert <beans|diamonds|usd> <amount>",
	Short: "Convert at the flat rates",
	Long: `Convert an amount at the configured flat rates.

  beans     beans to diamonds
  diamonds  diamonds to whole beans
  usd       diamonds to US dollars

Examples:
  agency-dash convert beans 2100
  agency-dash convert usd 5000`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"beans", "diamonds", "usd"},
	RunE:      runConvert,
}

// pkCmd summarises a PK match
var pkCmd = &cobra.Command{
	Use:   "pk <received-beans> <sent-beans>",
	Short: "Compare beans received and sent in a PK match",
	Args:  cobra.ExactArgs(2),
	RunE:  runPK,
}

// targetCmd paces a host against a monthly target
var targetCmd = &cobra.Command{
	Use:   "target <monthly-diamonds> <days-worked> <current-diamonds>",
	Short: "Check a host's progress against a monthly diamond target",
	Args:  cobra.ExactArgs(3),
	RunE:  runTarget,
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Parsing(name+" must be a number", err)
	}
	return d, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount("amount", args[1])
	if err != nil {
		return err
	}
	rates := config.Get().ConversionRates()

	var report *output.Report
	switch args[0] {
	case "beans":
		diamonds, err := rates.BeansToDiamonds(amount)
		if err != nil {
			return err
		}
		report = output.ConversionReport("beans", "diamonds", amount.String(), output.Amount(diamonds, 2))
	case "diamonds":
		beans, err := rates.DiamondsToBeans(amount)
		if err != nil {
			return err
		}
		report = output.ConversionReport("diamonds", "beans", amount.String(), output.Int(beans))
	case "usd":
		usd, err := rates.DiamondsToUSD(amount)
		if err != nil {
			return err
		}
		report = output.ConversionReport("diamonds", "USD", amount.String(), output.USD(usd))
	default:
		return apperrors.InvalidArgumentf("unknown unit %q (want beans, diamonds or usd)", args[0])
	}
	return render(cmd, report)
}

func runPK(cmd *cobra.Command, args []string) error {
	received, err := parseCount("received beans", args[0])
	if err != nil {
		return err
	}
	sent, err := parseCount("sent beans", args[1])
	if err != nil {
		return err
	}

	perf, err := config.Get().ConversionRates().CalculatePKPerformance(received, sent)
	if err != nil {
		return err
	}
	return render(cmd, output.PKPerformanceReport(perf))
}

func runTarget(cmd *cobra.Command, args []string) error {
	monthly, err := parseAmount("monthly target", args[0])
	if err != nil {
		return err
	}
	days, err := strconv.Atoi(args[1])
	if err != nil {
		return apperrors.Parsing("days worked must be a whole number", err)
	}
	current, err := parseAmount("current diamonds", args[2])
	if err != nil {
		return err
	}

	progress, err := conversion.CalculateTargets(monthly, days, current)
	if err != nil {
		return err
	}
	return render(cmd, output.TargetReport(progress))
}
