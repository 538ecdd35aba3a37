package tables

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"agency-dash/core/exchange"
	"agency-dash/core/rebate"
	apperrors "agency-dash/internal/errors"
)

var (
	exchangeHeader = []string{"cost", "yield"}
	rebateHeader   = []string{"category", "threshold", "rebate"}
)

// LoadCSV reads a CSV tier file. A cost,yield header makes an exchange
// table named after the file; a category,threshold,rebate header makes
// rebate categories.
func LoadCSV(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Parsing("cannot read tier file "+path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseCSV(f, name)
}

// ParseCSV parses CSV tier rows from r. name labels an exchange table.
func ParseCSV(r io.Reader, name string) (*Set, error) {
	reader, header, err := openCSV(r, name)
	if err != nil {
		return nil, err
	}

	set := NewSet()
	switch {
	case headerIs(header, exchangeHeader):
		tiers, err := readExchangeRows(reader, name)
		if err != nil {
			return nil, err
		}
		set.Exchange[name] = tiers
	case headerIs(header, rebateHeader):
		table, err := readRebateRows(reader, name)
		if err != nil {
			return nil, err
		}
		set.Rebates = table
	default:
		return nil, apperrors.Newf(apperrors.TypeParsing,
			"%s: header %q matches neither %q nor %q",
			name, strings.Join(header, ","), strings.Join(exchangeHeader, ","), strings.Join(rebateHeader, ","))
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func openCSV(r io.Reader, name string) (*csv.Reader, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, apperrors.Newf(apperrors.TypeParsing, "%s: file is empty", name)
	}
	if err != nil {
		return nil, nil, apperrors.Parsing(name+": cannot read header", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	// Every following row must have exactly as many fields as the header.
	reader.FieldsPerRecord = len(header)
	return reader, header, nil
}

func readExchangeRows(reader *csv.Reader, name string) ([]exchange.Tier, error) {
	var tiers []exchange.Tier
	err := eachRow(reader, name, func(line int, row []string) error {
		cost, err := parseInt(row[0], "cost", name, line)
		if err != nil {
			return err
		}
		yield, err := parseInt(row[1], "yield", name, line)
		if err != nil {
			return err
		}
		tiers = append(tiers, exchange.Tier{Cost: cost, Yield: yield})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "%s: no tier rows", name)
	}
	return tiers, nil
}

func readRebateRows(reader *csv.Reader, name string) (rebate.Table, error) {
	table := make(rebate.Table)
	err := eachRow(reader, name, func(line int, row []string) error {
		category := strings.TrimSpace(row[0])
		if category == "" {
			return apperrors.Newf(apperrors.TypeParsing, "%s line %d: category is empty", name, line)
		}
		threshold, err := parseInt(row[1], "threshold", name, line)
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return apperrors.Wrapf(apperrors.TypeParsing, err, "%s line %d: rebate %q", name, line, row[2])
		}
		table[category] = append(table[category], rebate.Tier{Threshold: threshold, Rebate: amount})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "%s: no tier rows", name)
	}
	return table, nil
}

func eachRow(reader *csv.Reader, name string, fn func(line int, row []string) error) error {
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return apperrors.Parsing(name+": malformed row", err)
		}
		line, _ := reader.FieldPos(0)
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

func parseInt(raw, column, name string, line int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperrors.Wrapf(apperrors.TypeParsing, err, "%s line %d: %s %q is not a whole number", name, line, column, raw).
			WithContext("line", line)
	}
	return v, nil
}

func headerIs(header, want []string) bool {
	if len(header) != len(want) {
		return false
	}
	for i := range want {
		if header[i] != want[i] {
			return false
		}
	}
	return true
}
