// Package cmd provides the CLI commands for agency-dash.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agency-dash/adapters/tables"
	"agency-dash/core/output"
	"agency-dash/core/ui"
	"agency-dash/internal/config"
	apperrors "agency-dash/internal/errors"
	"agency-dash/internal/logging"
)

const version = "1.0.0"

var (
	cfgFile      string
	verbose      bool
	tablePaths   []string
	outputFormat string
	noColor      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "agency-dash",
	Short: "Exchange, rebate and payout calculators for a livestreaming agency",
	Long: `agency-dash answers the everyday numbers questions of a livestreaming agency:
how many diamonds a bean balance buys, which PK rebate a score reaches,
what a host is owed this month and where they sit on the pay charts.

Examples:
  agency-dash exchange 15107
  agency-dash rebate 12000
  agency-dash rebate --score 150000 --format json
  agency-dash paysheet hosts.csv --format csv
  agency-dash paychart agency --beans 640000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.NewWriter(rootCmd.ErrOrStderr(), noColor).Error("%v", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agency-dash.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringSliceVar(&tablePaths, "tables", nil, "HCL or CSV tier files layered over the built-in tables")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, csv, markdown); default from config")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(exchangeCmd)
	rootCmd.AddCommand(rebateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(pkCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(paysheetCmd)
	rootCmd.AddCommand(paychartCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func initConfig() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadTables returns the built-in tables with configured and --tables files layered on top.
func loadTables() (*tables.Set, error) {
	paths := append(append([]string{}, config.Get().Tables.Files...), tablePaths...)
	set, err := tables.Load(paths...)
	if err != nil {
		return nil, err
	}
	logging.Debug("Tier tables ready",
		zap.Strings("files", paths),
		zap.Strings("exchange_tables", set.ExchangeNames()),
		zap.Int("rebate_categories", len(set.Rebates)))
	return set, nil
}

// render writes report in the selected output format.
func render(cmd *cobra.Command, report *output.Report) error {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	return output.Render(cmd.OutOrStdout(), format, output.Options{NoColor: noColor}, report)
}

func parseCount(name, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Parsing(name+" must be a whole number", err)
	}
	return n, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agency-dash version %s\n", version)
	},
}
