package catalog

import (
	"strings"

	"github.com/jonathan/report-explorer/internal/types"
)

// Filter returns the subset of rows satisfying every active constraint.
// Constraints combine with logical AND across dimensions and logical OR
// within a multi-valued dimension. The function is pure: identical inputs
// always yield identical output.
func Filter(rows []types.CatalogRow, criteria types.FilterCriteria) []types.CatalogRow {
	if criteria.IsZero() {
		out := make([]types.CatalogRow, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]types.CatalogRow, 0, len(rows))
	for _, row := range rows {
		if matches(row, criteria) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row types.CatalogRow, criteria types.FilterCriteria) bool {
	if len(criteria.Companies) > 0 && !matchesAnyCompany(row.CompanyNames, criteria.Companies) {
		return false
	}
	if len(criteria.Categories) > 0 && !containsExact(criteria.Categories, row.Category) {
		return false
	}
	if len(criteria.Sources) > 0 && !containsExact(criteria.Sources, row.Source) {
		return false
	}
	if !matchesDateRange(row.PublishedDate, criteria.DateFrom, criteria.DateTo) {
		return false
	}
	return true
}

// matchesAnyCompany reports whether any selected company is a substring
// of the row's joined company-names string.
func matchesAnyCompany(joined string, companies []string) bool {
	for _, c := range companies {
		if strings.Contains(joined, c) {
			return true
		}
	}
	return false
}

func containsExact(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// matchesDateRange applies the inclusive date range. The comparison is
// string-lexicographic, which is correct only because published dates are
// zero-padded ISO-like strings; both endpoints must be set for the range
// to constrain, matching the two-ended date picker it models.
func matchesDateRange(date, from, to string) bool {
	if from == "" || to == "" {
		return true
	}
	return date >= from && date <= to
}
