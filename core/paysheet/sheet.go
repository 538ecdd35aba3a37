package paysheet

import (
	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

// Sheet accumulates host payments for one pay period. It is owned by the
// caller and is not safe for concurrent use.
type Sheet struct {
	rules    Rules
	payments []*Payment
	index    map[string]int
}

// Summary aggregates a sheet
type Summary struct {
	Hosts         int             `json:"hosts"`
	TotalPayout   decimal.Decimal `json:"total_payout"`
	AveragePayout decimal.Decimal `json:"average_payout"`
}

// NewSheet creates an empty sheet priced under rules.
func NewSheet(rules Rules) (*Sheet, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Sheet{
		rules: rules,
		index: make(map[string]int),
	}, nil
}

// Add prices entry and appends it. A host ID may only appear once.
func (s *Sheet) Add(entry HostEntry) (*Payment, error) {
	if _, dup := s.index[entry.ID]; dup {
		return nil, apperrors.InvalidArgumentf("host %s is already on the paysheet", entry.ID).
			WithContext("host", entry.ID)
	}
	payment, err := Calculate(s.rules, entry)
	if err != nil {
		return nil, err
	}
	s.index[entry.ID] = len(s.payments)
	s.payments = append(s.payments, payment)
	return payment, nil
}

// Get returns the payment for a host ID.
func (s *Sheet) Get(id string) (*Payment, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, apperrors.NotFound("host", id)
	}
	return s.payments[i], nil
}

// Rows returns payments in insertion order.
func (s *Sheet) Rows() []*Payment {
	rows := make([]*Payment, len(s.payments))
	copy(rows, s.payments)
	return rows
}

// Len returns the number of hosts on the sheet.
func (s *Sheet) Len() int {
	return len(s.payments)
}

// Summary totals the sheet. The average is rounded to cents.
func (s *Sheet) Summary() Summary {
	total := decimal.Zero
	for _, p := range s.payments {
		total = total.Add(p.FinalPayment)
	}
	avg := decimal.Zero
	if len(s.payments) > 0 {
		avg = total.DivRound(decimal.NewFromInt(int64(len(s.payments))), 2)
	}
	return Summary{
		Hosts:         len(s.payments),
		TotalPayout:   total,
		AveragePayout: avg,
	}
}

// Reset clears all entries.
func (s *Sheet) Reset() {
	s.payments = nil
	s.index = make(map[string]int)
}
