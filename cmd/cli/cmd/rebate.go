// Package cmd - rebate command
package cmd

import (
	"github.com/spf13/cobra"

	"agency-dash/core/output"
	"agency-dash/core/rebate"
	"agency-dash/internal/config"
	apperrors "agency-dash/internal/errors"
)

var rebateScore int64

// rebateCmd represents the rebate command
var rebateCmd = &cobra.Command{
	Use:   "rebate [diamonds]",
	Short: "Show the best PK rebate reached in every match type",
	Long: `Convert diamonds spent in a PK match to a score and report, for every
match type, the highest rebate tier the score reaches. Match types the score
does not qualify for show the minimum score they need.

Examples:
  agency-dash rebate 12000
  agency-dash rebate --score 150000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRebate,
}

func init() {
	rebateCmd.Flags().Int64Var(&rebateScore, "score", 0, "use a PK score directly instead of diamonds")
}

func runRebate(cmd *cobra.Command, args []string) error {
	byScore := cmd.Flags().Changed("score")

	var score int64
	switch {
	case byScore && len(args) > 0:
		return apperrors.InvalidArgument("give either diamonds or --score, not both")
	case byScore:
		score = rebateScore
	case len(args) == 1:
		diamonds, err := parseCount("diamonds", args[0])
		if err != nil {
			return err
		}
		if score, err = rebate.DiamondsToScore(diamonds, config.Get().Rates.ScorePerDiamond); err != nil {
			return err
		}
	default:
		return apperrors.InvalidArgument("diamonds or --score is required")
	}

	set, err := loadTables()
	if err != nil {
		return err
	}
	outcomes, err := rebate.LookupBestTier(score, set.Rebates)
	if err != nil {
		return err
	}
	return render(cmd, output.RebateReport(score, outcomes))
}
