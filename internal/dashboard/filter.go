// Package dashboard holds the per-dashboard sessions: each session owns its
// own record list and filter scope independently, and every derived view is
// recomputed in full from (records, filter) on demand. Sessions are explicit
// objects constructed per dashboard, never package-level singletons, and are
// meant for single-goroutine use: all mutation happens synchronously in
// response to discrete user actions (upload, filter change).
package dashboard

// AllCompanies is the company filter value that disables company filtering.
const AllCompanies = "Todas"

// Filter is the (company, months, categories) scope restricting which
// records participate in aggregation. An empty month or category set means
// "no restriction". Setters do not validate the selection against loaded
// data; selecting a value that does not exist simply yields empty results.
type Filter struct {
	Company    string
	Months     []string
	Categories []string
}

// NewFilter returns the unrestricted scope.
func NewFilter() Filter {
	return Filter{Company: AllCompanies}
}

// MatchesCompany reports whether a record's company passes the scope.
func (f Filter) MatchesCompany(company string) bool {
	return f.Company == AllCompanies || f.Company == company
}

// MatchesMonth reports whether a record's month passes the scope.
func (f Filter) MatchesMonth(month string) bool {
	if len(f.Months) == 0 {
		return true
	}
	for _, m := range f.Months {
		if m == month {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether a record's category passes the scope.
func (f Filter) MatchesCategory(category string) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}
