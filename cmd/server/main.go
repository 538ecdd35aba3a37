// Package main - Entry point for the agency-dash API server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"agency-dash/adapters/tables"
	"agency-dash/api"
	"agency-dash/internal/config"
	"agency-dash/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "Config file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	set, err := tables.Load(cfg.Tables.Files...)
	if err != nil {
		logging.Fatal("Failed to load tier tables", zap.Error(err))
	}

	handler := api.NewHandler(api.HandlerConfig{
		Tables:          set,
		DefaultExchange: cfg.Tables.Exchange,
		Rules:           cfg.PaymentRules(),
		ScorePerDiamond: cfg.Rates.ScorePerDiamond,
	})
	apiServer := api.NewServer(version, handler, logging.Logger)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("Starting agency-dash server",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.Strings("exchange_tables", set.ExchangeNames()),
		zap.Int("rebate_categories", len(set.Rebates)))

	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		logging.Fatal("Server stopped", zap.Error(err))
	}
}
