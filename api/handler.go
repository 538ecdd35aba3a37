// Package api - Request execution
// The handler wraps the core packages - it contains NO calculation logic.
package api

import (
	"agency-dash/adapters/tables"
	"agency-dash/core/exchange"
	"agency-dash/core/paychart"
	"agency-dash/core/paysheet"
	"agency-dash/core/rebate"
	apperrors "agency-dash/internal/errors"
)

// Handler executes decoded requests against loaded tables and rules
type Handler struct {
	tables          *tables.Set
	defaultExchange string
	rules           paysheet.Rules
	scorePerDiamond int64
}

// HandlerConfig carries the handler's dependencies
type HandlerConfig struct {
	Tables          *tables.Set
	DefaultExchange string
	Rules           paysheet.Rules
	ScorePerDiamond int64
}

// NewHandler creates a new handler. Zero values fall back to built-ins.
func NewHandler(cfg HandlerConfig) *Handler {
	h := &Handler{
		tables:          cfg.Tables,
		defaultExchange: cfg.DefaultExchange,
		rules:           cfg.Rules,
		scorePerDiamond: cfg.ScorePerDiamond,
	}
	if h.tables == nil {
		h.tables = tables.Defaults()
	}
	if h.defaultExchange == "" {
		h.defaultExchange = "beans_to_diamonds"
	}
	if h.rules.TargetDays == 0 {
		h.rules = paysheet.DefaultRules()
	}
	if h.scorePerDiamond == 0 {
		h.scorePerDiamond = rebate.ScorePerDiamond
	}
	return h
}

func (h *Handler) exchange(req *ExchangeRequest) (*exchange.Result, error) {
	if req.Quantity == nil {
		return nil, apperrors.InvalidArgument("quantity is required")
	}

	tiers := req.Tiers
	if len(tiers) == 0 {
		name := req.Table
		if name == "" {
			name = h.defaultExchange
		}
		var err error
		if tiers, err = h.tables.ExchangeTable(name); err != nil {
			return nil, err
		}
	}
	return exchange.ComputeBreakdown(*req.Quantity, tiers)
}

func (h *Handler) rebates(req *RebateRequest) (*RebateResponse, error) {
	var score int64
	switch {
	case req.Diamonds != nil && req.Score != nil:
		return nil, apperrors.InvalidArgument("set either diamonds or score, not both")
	case req.Diamonds != nil:
		var err error
		if score, err = rebate.DiamondsToScore(*req.Diamonds, h.scorePerDiamond); err != nil {
			return nil, err
		}
	case req.Score != nil:
		score = *req.Score
	default:
		return nil, apperrors.InvalidArgument("diamonds or score is required")
	}

	table := req.Tables
	if len(table) == 0 {
		table = h.tables.Rebates
	}
	outcomes, err := rebate.LookupBestTier(score, table)
	if err != nil {
		return nil, err
	}
	return &RebateResponse{Score: score, Outcomes: rebate.Sorted(outcomes)}, nil
}

func (h *Handler) paysheet(req *PaysheetRequest) (*PaysheetResponse, error) {
	if len(req.Hosts) == 0 {
		return nil, apperrors.InvalidArgument("hosts is required")
	}
	sheet, err := paysheet.NewSheet(h.rules)
	if err != nil {
		return nil, err
	}
	for _, host := range req.Hosts {
		if _, err := sheet.Add(host); err != nil {
			return nil, err
		}
	}
	return &PaysheetResponse{Payments: sheet.Rows(), Summary: sheet.Summary()}, nil
}

func (h *Handler) payChart(kind string, beans *int64) (*PayChartResponse, error) {
	chart, err := paychart.Lookup(paychart.Kind(kind))
	if err != nil {
		return nil, err
	}
	resp := &PayChartResponse{Chart: chart}
	if beans != nil {
		if resp.Placement, err = paychart.RankFor(chart, *beans); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
