package domain

import "fmt"

// CacheKey is a structured cache key. Keys are built only through the
// constructors below so that every component addressing the cache agrees on
// the namespace layout.
type CacheKey string

func (k CacheKey) String() string { return string(k) }

// BaseSnapshotKey addresses the unsorted merged snapshot for a pair.
func BaseSnapshotKey(pair string) CacheKey {
	return CacheKey(fmt.Sprintf("listings:base:%s", pair))
}

// SortedListingsKey addresses a sorted+ranked result for one
// (criterion, direction) combination.
func SortedListingsKey(pair string, criterion SortCriterion, descending bool) CacheKey {
	return CacheKey(fmt.Sprintf("listings:sorted:%s:%s:%t", pair, criterion, descending))
}

// PriceHistoryKey addresses a price-history window for a coin.
func PriceHistoryKey(coin string, days int, dailyClose bool) CacheKey {
	return CacheKey(fmt.Sprintf("history:%s:%d:%t", coin, days, dailyClose))
}
