// Package api - Request and response types
package api

import (
	"agency-dash/core/exchange"
	"agency-dash/core/paychart"
	"agency-dash/core/paysheet"
	"agency-dash/core/rebate"
)

// ExchangeRequest asks for a bean to diamond breakdown
type ExchangeRequest struct {
	// Quantity is the number of beans to spend
	Quantity *int64 `json:"quantity"`

	// Table names a loaded exchange table; defaults to the configured one
	Table string `json:"table,omitempty"`

	// Tiers replaces the named table for this request only
	Tiers []exchange.Tier `json:"tiers,omitempty"`
}

// RebateRequest asks for the best PK rebate per match type.
// Exactly one of Diamonds and Score must be set.
type RebateRequest struct {
	Diamonds *int64 `json:"diamonds,omitempty"`
	Score    *int64 `json:"score,omitempty"`

	// Tables replaces the loaded rebate categories for this request only
	Tables rebate.Table `json:"tables,omitempty"`
}

// RebateResponse carries per-category outcomes sorted by category
type RebateResponse struct {
	Score    int64            `json:"score"`
	Outcomes []rebate.Outcome `json:"outcomes"`
}

// PaysheetRequest prices a batch of hosts
type PaysheetRequest struct {
	Hosts []paysheet.HostEntry `json:"hosts"`
}

// PaysheetResponse is the priced batch
type PaysheetResponse struct {
	Payments []*paysheet.Payment `json:"payments"`
	Summary  paysheet.Summary    `json:"summary"`
}

// PayChartResponse returns a chart and, when beans were given, a placement
type PayChartResponse struct {
	Chart     *paychart.Chart     `json:"chart"`
	Placement *paychart.Placement `json:"placement,omitempty"`
}

// ErrorBody is the error envelope
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
