package classify

import (
	"strings"

	"rmoreira/findash/internal/models"
)

// ParseDRELine parses an income-statement line description into its
// structural markers: "(=)" prefixes mark subtotal lines, "(-)" prefixes
// mark deduction lines, "Margem" lines carry percentages instead of
// currency and the closing lines are the final result and EBITDA.
func ParseDRELine(description string) models.DRELine {
	trimmed := strings.TrimSpace(description)
	return models.DRELine{
		Description: description,
		IsResult:    strings.HasPrefix(trimmed, "(=)"),
		IsExpense:   strings.HasPrefix(trimmed, "(-)"),
		IsPercent:   strings.Contains(description, "Margem"),
		IsFinal: strings.Contains(description, "Lucro ou Prejuízo") ||
			strings.Contains(description, "EBITDA"),
	}
}

// ParseDRERegime canonicalizes a regime cell or flag value. Unrecognized
// input selects both regimes.
func ParseDRERegime(raw string) models.DRERegime {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "caixa":
		return models.RegimeCaixa
	case "competencia", "competência":
		return models.RegimeCompetencia
	default:
		return models.RegimeAmbos
	}
}
