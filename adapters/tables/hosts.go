package tables

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"agency-dash/core/paysheet"
	apperrors "agency-dash/internal/errors"
)

var (
	hostRequired = []string{"id", "name", "diamonds_earned", "pk_wins", "days_worked"}
	hostOptional = []string{"additional_bonuses", "deductions"}
)

// LoadHosts reads paysheet host rows from a CSV file.
func LoadHosts(path string) ([]paysheet.HostEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Parsing("cannot read host file "+path, err)
	}
	defer f.Close()
	return ParseHosts(f, path)
}

// ParseHosts parses host rows. Columns may come in any order; the five
// required columns must be present and unknown columns are rejected.
func ParseHosts(r io.Reader, name string) ([]paysheet.HostEntry, error) {
	reader, header, err := openCSV(r, name)
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, col := range header {
		if !known(col) {
			return nil, apperrors.Newf(apperrors.TypeParsing, "%s: unknown column %q", name, col)
		}
		if _, dup := columns[col]; dup {
			return nil, apperrors.Newf(apperrors.TypeParsing, "%s: column %q repeated", name, col)
		}
		columns[col] = i
	}
	for _, col := range hostRequired {
		if _, ok := columns[col]; !ok {
			return nil, apperrors.Newf(apperrors.TypeParsing, "%s: missing column %q", name, col)
		}
	}

	var hosts []paysheet.HostEntry
	err = eachRow(reader, name, func(line int, row []string) error {
		cell := func(col string) string {
			if i, ok := columns[col]; ok {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		entry := paysheet.HostEntry{
			ID:   cell("id"),
			Name: cell("name"),
		}
		var err error
		if entry.DiamondsEarned, err = parseAmount(cell("diamonds_earned"), "diamonds_earned", name, line); err != nil {
			return err
		}
		if entry.AdditionalBonuses, err = parseAmount(cell("additional_bonuses"), "additional_bonuses", name, line); err != nil {
			return err
		}
		if entry.Deductions, err = parseAmount(cell("deductions"), "deductions", name, line); err != nil {
			return err
		}
		if entry.PKWins, err = parseCount(cell("pk_wins"), "pk_wins", name, line); err != nil {
			return err
		}
		if entry.DaysWorked, err = parseCount(cell("days_worked"), "days_worked", name, line); err != nil {
			return err
		}
		hosts = append(hosts, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hosts, nil
}

func known(col string) bool {
	for _, c := range hostRequired {
		if c == col {
			return true
		}
	}
	for _, c := range hostOptional {
		if c == col {
			return true
		}
	}
	return false
}

// parseAmount treats an empty cell as zero.
func parseAmount(raw, column, name string, line int) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Wrapf(apperrors.TypeParsing, err, "%s line %d: %s %q", name, line, column, raw)
	}
	return v, nil
}

func parseCount(raw, column, name string, line int) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrapf(apperrors.TypeParsing, err, "%s line %d: %s %q is not a whole number", name, line, column, raw)
	}
	return v, nil
}
