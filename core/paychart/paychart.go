// Package paychart holds the host and agency pay charts and finds the
// ranking a bean total qualifies for.
package paychart

import (
	"sort"

	"github.com/shopspring/decimal"

	apperrors "agency-dash/internal/errors"
)

// Kind names a pay chart
type Kind string

const (
	KindHost   Kind = "host"
	KindAgency Kind = "agency"
)

// Row is one ranking of a pay chart. Columns that a chart does not carry
// are zero.
type Row struct {
	Ranking              string          `json:"ranking"`
	TargetBeans          int64           `json:"target_beans"`
	SalaryBeans          int64           `json:"salary_beans,omitempty"`
	SalaryDiamonds       int64           `json:"salary_diamonds,omitempty"`
	AgencyBonusUSD       decimal.Decimal `json:"agency_bonus_usd"`
	RemunerationUSD      decimal.Decimal `json:"remuneration_usd"`
	RemunerationBeans    int64           `json:"remuneration_beans,omitempty"`
	RemunerationDiamonds int64           `json:"remuneration_diamonds,omitempty"`
}

// Chart is an ordered pay chart
type Chart struct {
	Kind Kind  `json:"kind"`
	Rows []Row `json:"rows"`
}

// Placement is the result of ranking a bean total against a chart
type Placement struct {
	Beans    int64 `json:"beans"`
	Eligible bool  `json:"eligible"`
	Row      *Row  `json:"row,omitempty"`

	// Next is the ranking above the placed one, nil at the top
	Next *Row `json:"next,omitempty"`

	// BeansToNext is how many more beans reach Next
	BeansToNext int64 `json:"beans_to_next,omitempty"`

	// MinTarget is the lowest target when not Eligible
	MinTarget int64 `json:"min_target,omitempty"`
}

// Lookup returns the built-in chart of the given kind.
func Lookup(kind Kind) (*Chart, error) {
	switch kind {
	case KindHost:
		return HostChart(), nil
	case KindAgency:
		return AgencyChart(), nil
	default:
		return nil, apperrors.NotFound("pay chart", string(kind)).
			WithContext("known", []Kind{KindHost, KindAgency})
	}
}

// RankFor selects the highest ranking whose target beans meets.
func RankFor(chart *Chart, beans int64) (*Placement, error) {
	if beans < 0 {
		return nil, apperrors.InvalidArgumentf("beans must be non-negative, got %d", beans)
	}
	if chart == nil || len(chart.Rows) == 0 {
		return nil, apperrors.InvalidArgument("pay chart has no rows")
	}

	rows := make([]Row, len(chart.Rows))
	copy(rows, chart.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TargetBeans > rows[j].TargetBeans
	})

	for i := range rows {
		if beans < rows[i].TargetBeans {
			continue
		}
		placement := &Placement{Beans: beans, Eligible: true, Row: &rows[i]}
		if i > 0 {
			placement.Next = &rows[i-1]
			placement.BeansToNext = rows[i-1].TargetBeans - beans
		}
		return placement, nil
	}

	lowest := rows[len(rows)-1]
	return &Placement{
		Beans:       beans,
		Eligible:    false,
		Next:        &lowest,
		BeansToNext: lowest.TargetBeans - beans,
		MinTarget:   lowest.TargetBeans,
	}, nil
}
