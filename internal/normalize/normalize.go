// Package normalize turns raw spreadsheet cell values into canonical forms:
// signed decimal amounts, month ordinals, and case-insensitive field lookups.
// Every function is pure and total; unparseable input degrades to the zero
// value instead of raising an error, so a bad cell never fails an upload.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/models"
)

// currencyRe strips currency and percent markers and whitespace before
// decimal parsing.
var currencyRe = regexp.MustCompile(`[R$€£%\s]`)

// ParseAmount parses a raw cell value into a signed decimal. It accepts
// numeric cells as-is and standardizes currency strings in both Brazilian
// ("1.234,56") and plain ("1,234.56") notation. Unparseable input yields
// zero; callers that care can compare against the raw cell themselves.
func ParseAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		return parseAmountString(v)
	default:
		return decimal.Zero
	}
}

func parseAmountString(s string) decimal.Decimal {
	s = standardizeAmount(s)
	if s == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// standardizeAmount rewrites a currency string into a form decimal can parse.
// Both "." and "," are accepted as the decimal marker; whichever separator
// appears last is taken as the decimal point and the other is dropped as a
// thousands separator.
func standardizeAmount(s string) string {
	s = currencyRe.ReplaceAllString(strings.TrimSpace(s), "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// Brazilian notation: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// Plain notation: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Comma as decimal marker: 1234,56
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// Comma as thousands separator: 1,234
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	return s
}

// Field resolves a canonical column name against a raw row, trying the
// canonical name and each alias with case-insensitive comparison. It returns
// ok=false when no variant is present, mirroring the dashboard's tolerance
// for capitalized versus lowercase headers.
func Field(row models.RawRow, canonical string, aliases ...string) (any, bool) {
	names := append([]string{canonical}, aliases...)
	for _, name := range names {
		if v, ok := row[name]; ok {
			return v, true
		}
	}
	for key, v := range row {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(key), name) {
				return v, true
			}
		}
	}
	return nil, false
}

// FieldString resolves a field and renders it as a trimmed string. Missing
// fields and nil cells yield the empty string.
func FieldString(row models.RawRow, canonical string, aliases ...string) string {
	v, ok := Field(row, canonical, aliases...)
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(Stringify(v))
}
