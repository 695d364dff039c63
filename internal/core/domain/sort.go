package domain

import "fmt"

// SortCriterion names a column of the aggregated view that listings can be
// ordered by.
type SortCriterion string

const (
	SortByID           SortCriterion = "id"
	SortByPrice        SortCriterion = "price"
	SortByVolume       SortCriterion = "volume"
	SortByPlusDepth    SortCriterion = "plus_depth"
	SortByMinusDepth   SortCriterion = "minus_depth"
	SortByExchange     SortCriterion = "exchange"
	SortByVolumeSpread SortCriterion = "volume_percentage"
)

// DefaultSortCriterion applies when a request names no criterion.
const DefaultSortCriterion = SortByVolume

// ParseSortCriterion validates a requested sort criterion. The empty string
// resolves to the default.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch c := SortCriterion(s); c {
	case "":
		return DefaultSortCriterion, nil
	case SortByID, SortByPrice, SortByVolume, SortByPlusDepth,
		SortByMinusDepth, SortByExchange, SortByVolumeSpread:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown sort criterion %q", ErrValidation, s)
	}
}
