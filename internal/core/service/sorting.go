package service

import (
	"sort"
	"strings"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/pkg/format"
)

// sortListings returns a new slice ordered by criterion, with rank IDs
// reassigned 1..N in the new order. The sort is stable: equal keys keep
// their pre-sort relative order. The input slice is not mutated.
func sortListings(listings []domain.ExchangeListing, criterion domain.SortCriterion, descending bool) []domain.ExchangeListing {
	sorted := make([]domain.ExchangeListing, len(listings))
	copy(sorted, listings)

	less := lessFunc(criterion)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	for i := range sorted {
		sorted[i].ID = i + 1
	}

	return sorted
}

// lessFunc selects the comparison key for a criterion. Numeric keys are
// parsed back from the formatted display strings.
func lessFunc(criterion domain.SortCriterion) func(a, b domain.ExchangeListing) bool {
	switch criterion {
	case domain.SortByID:
		return func(a, b domain.ExchangeListing) bool { return a.ID < b.ID }
	case domain.SortByPrice:
		return numericLess(func(l domain.ExchangeListing) string { return l.Price }, format.ParseNumber)
	case domain.SortByPlusDepth:
		return numericLess(func(l domain.ExchangeListing) string { return l.DepthPlus2Pct }, format.ParseMoney)
	case domain.SortByMinusDepth:
		return numericLess(func(l domain.ExchangeListing) string { return l.DepthMinus2Pct }, format.ParseMoney)
	case domain.SortByExchange:
		return func(a, b domain.ExchangeListing) bool {
			return strings.ToLower(a.ExchangeName) < strings.ToLower(b.ExchangeName)
		}
	case domain.SortByVolumeSpread:
		return numericLess(func(l domain.ExchangeListing) string { return l.VolumeSpreadPercent }, format.ParsePercent)
	default:
		return numericLess(func(l domain.ExchangeListing) string { return l.Volume24h }, format.ParseMoney)
	}
}

func numericLess(field func(domain.ExchangeListing) string, parse func(string) (float64, error)) func(a, b domain.ExchangeListing) bool {
	return func(a, b domain.ExchangeListing) bool {
		// listings are produced by our own formatters, so a parse failure
		// only happens on hand-built test data; the zero fallback keeps the
		// sort total
		av, _ := parse(field(a))
		bv, _ := parse(field(b))
		return av < bv
	}
}
