package aggregate

import "rmoreira/findash/internal/models"

// FilterDREMonthly keeps the monthly statement lines of one regime.
// RegimeAmbos keeps everything.
func FilterDREMonthly(lines []models.DREMonthlyLine, regime models.DRERegime) []models.DREMonthlyLine {
	if regime == models.RegimeAmbos || regime == "" {
		return lines
	}
	kept := make([]models.DREMonthlyLine, 0, len(lines))
	for _, l := range lines {
		if l.Regime == regime {
			kept = append(kept, l)
		}
	}
	return kept
}

// FilterDREAccumulated keeps the accumulated statement lines of one regime.
func FilterDREAccumulated(lines []models.DREAccumulatedLine, regime models.DRERegime) []models.DREAccumulatedLine {
	if regime == models.RegimeAmbos || regime == "" {
		return lines
	}
	kept := make([]models.DREAccumulatedLine, 0, len(lines))
	for _, l := range lines {
		if l.Regime == regime {
			kept = append(kept, l)
		}
	}
	return kept
}

// DREPeriodTotals sums each accumulated line over the month window
// [from, to], both inclusive and 1-based, in line order. Bounds are clamped
// to the year and an inverted window is swapped. Percentage lines are
// skipped: margins do not add up across months.
func DREPeriodTotals(lines []models.DREAccumulatedLine, from, to int) []models.DREPeriodTotal {
	if from < 1 {
		from = 1
	}
	if to > 12 || to < 1 {
		to = 12
	}
	if from > to {
		from, to = to, from
	}

	totals := make([]models.DREPeriodTotal, 0, len(lines))
	for _, l := range lines {
		if l.Line.IsPercent {
			continue
		}
		total := models.DREPeriodTotal{Line: l.Line}
		for m := from; m <= to; m++ {
			total.Total = total.Total.Add(l.Months[m-1])
		}
		totals = append(totals, total)
	}
	return totals
}
