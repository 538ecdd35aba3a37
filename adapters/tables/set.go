// Package tables loads tier tables and host rows from files.
// Every table is validated once, at load time; a file with a missing or
// misnamed column is rejected rather than guessed at.
package tables

import (
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"agency-dash/core/exchange"
	"agency-dash/core/rebate"
	apperrors "agency-dash/internal/errors"
	"agency-dash/internal/logging"
)

// Set is a named collection of exchange and rebate tables
type Set struct {
	Exchange map[string][]exchange.Tier `json:"exchange"`
	Rebates  rebate.Table               `json:"rebates"`
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{
		Exchange: make(map[string][]exchange.Tier),
		Rebates:  make(rebate.Table),
	}
}

// Defaults returns the built-in tables.
func Defaults() *Set {
	return &Set{
		Exchange: exchange.DefaultTables(),
		Rebates:  rebate.PKRebates(),
	}
}

// ExchangeTable returns a named exchange table.
func (s *Set) ExchangeTable(name string) ([]exchange.Tier, error) {
	tiers, ok := s.Exchange[name]
	if !ok {
		return nil, apperrors.NotFound("exchange table", name).
			WithContext("known", s.ExchangeNames())
	}
	return tiers, nil
}

// ExchangeNames lists exchange table names in sorted order.
func (s *Set) ExchangeNames() []string {
	names := make([]string, 0, len(s.Exchange))
	for name := range s.Exchange {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge copies other's tables into s. Tables with the same name are
// replaced, rebate categories one by one.
func (s *Set) Merge(other *Set) {
	for name, tiers := range other.Exchange {
		s.Exchange[name] = tiers
	}
	for category, tiers := range other.Rebates {
		s.Rebates[category] = tiers
	}
}

// Validate checks every table in the set.
func (s *Set) Validate() error {
	for name, tiers := range s.Exchange {
		if err := exchange.ValidateTiers(tiers); err != nil {
			return apperrors.Wrapf(apperrors.TypeInvalidArgument, err, "exchange table %q", name)
		}
	}
	if len(s.Rebates) > 0 {
		if err := rebate.ValidateTable(s.Rebates); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile loads one tier file, choosing the parser by extension.
func LoadFile(path string) (*Set, error) {
	var (
		set *Set
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		set, err = LoadHCL(path)
	case ".csv":
		set, err = LoadCSV(path)
	default:
		return nil, apperrors.InvalidArgumentf("unsupported tier file %s: want .hcl or .csv", path)
	}
	if err != nil {
		return nil, err
	}

	logging.Debug("Loaded tier file",
		zap.String("path", path),
		zap.Int("exchange_tables", len(set.Exchange)),
		zap.Int("rebate_categories", len(set.Rebates)))
	return set, nil
}

// Load starts from the built-in tables and layers each file over them.
func Load(paths ...string) (*Set, error) {
	set := Defaults()
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		set.Merge(loaded)
	}
	return set, nil
}
