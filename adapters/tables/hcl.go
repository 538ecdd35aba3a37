package tables

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"agency-dash/core/exchange"
	"agency-dash/core/rebate"
	apperrors "agency-dash/internal/errors"
)

// A tier file looks like:
//
//	exchange "beans_to_diamonds" {
//	  tier {
//	    cost  = 10999
//	    yield = 3045
//	  }
//	}
//
//	rebate "Agency PK Party" {
//	  tier {
//	    threshold = 150000
//	    rebate    = 0.25
//	  }
//	}
type hclFile struct {
	Exchanges []hclExchange `hcl:"exchange,block"`
	Rebates   []hclRebate   `hcl:"rebate,block"`
}

type hclExchange struct {
	Name  string            `hcl:"name,label"`
	Tiers []hclExchangeTier `hcl:"tier,block"`
}

type hclExchangeTier struct {
	Cost  int64 `hcl:"cost"`
	Yield int64 `hcl:"yield"`
}

type hclRebate struct {
	Category string          `hcl:"category,label"`
	Tiers    []hclRebateTier `hcl:"tier,block"`
}

type hclRebateTier struct {
	Threshold int64          `hcl:"threshold"`
	Rebate    hcl.Expression `hcl:"rebate"`
}

// LoadHCL reads and parses an HCL tier file.
func LoadHCL(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Parsing("cannot read tier file "+path, err)
	}
	return ParseHCL(src, path)
}

// ParseHCL parses HCL tier definitions. filename is only used in diagnostics.
func ParseHCL(src []byte, filename string) (*Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, apperrors.Parsing("invalid HCL in "+filename, diags)
	}

	var decoded hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, apperrors.Parsing("invalid tier definitions in "+filename, diags)
	}

	set := NewSet()
	for _, block := range decoded.Exchanges {
		if _, dup := set.Exchange[block.Name]; dup {
			return nil, apperrors.Newf(apperrors.TypeParsing, "%s: exchange table %q defined twice", filename, block.Name)
		}
		tiers := make([]exchange.Tier, 0, len(block.Tiers))
		for _, t := range block.Tiers {
			tiers = append(tiers, exchange.Tier{Cost: t.Cost, Yield: t.Yield})
		}
		set.Exchange[block.Name] = tiers
	}

	for _, block := range decoded.Rebates {
		if _, dup := set.Rebates[block.Category]; dup {
			return nil, apperrors.Newf(apperrors.TypeParsing, "%s: rebate category %q defined twice", filename, block.Category)
		}
		tiers := make([]rebate.Tier, 0, len(block.Tiers))
		for _, t := range block.Tiers {
			amount, err := decimalFromExpression(t.Rebate)
			if err != nil {
				return nil, apperrors.Parsing(filename+": rebate category "+block.Category, err)
			}
			tiers = append(tiers, rebate.Tier{Threshold: t.Threshold, Rebate: amount})
		}
		set.Rebates[block.Category] = tiers
	}

	if len(set.Exchange) == 0 && len(set.Rebates) == 0 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "%s defines no exchange or rebate tables", filename)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// decimalFromExpression evaluates a constant numeric expression without
// passing through float64.
func decimalFromExpression(expr hcl.Expression) (decimal.Decimal, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, diags
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.Number) {
		return decimal.Zero, apperrors.Newf(apperrors.TypeParsing,
			"rebate must be a number, got %s", val.Type().FriendlyName())
	}
	return decimal.NewFromString(val.AsBigFloat().Text('f', -1))
}
