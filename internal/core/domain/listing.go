package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LastUpdatedLabel is an opaque display string, not a timestamp.
const LastUpdatedLabel = "Recently"

// ExchangeListing is one row of the aggregated market view. Numeric fields
// are pre-formatted display strings; ID is a rank reassigned after every
// sort and carries no meaning across requests.
type ExchangeListing struct {
	ID                     int              `json:"id"`
	ExchangeName           string           `json:"exchangeName"`
	Pair                   string           `json:"pair"`
	Price                  string           `json:"price"`
	PricePercentAdjustment *decimal.Decimal `json:"pricePercentAdjustment,omitempty"`
	DepthPlus2Pct          string           `json:"depthPlus2Pct"`
	DepthMinus2Pct         string           `json:"depthMinus2Pct"`
	Volume24h              string           `json:"volume24h"`
	VolumeSpreadPercent    string           `json:"volumeSpreadPercent"`
	LastUpdated            string           `json:"lastUpdated"`
	IconURL                string           `json:"iconUrl,omitempty"`
	SiteURL                string           `json:"siteUrl,omitempty"`
}

// SyntheticListing is an operator-authored entry. Numeric fields are kept
// raw; formatting happens when the listing is merged into the aggregated
// view. A listing is either percent-driven (PricePercentAdjustment set) or
// fixed-price, never both.
type SyntheticListing struct {
	ExchangeName           string           `json:"exchangeName"`
	Pair                   string           `json:"pair"`
	Price                  decimal.Decimal  `json:"price"`
	PricePercentAdjustment *decimal.Decimal `json:"pricePercentAdjustment,omitempty"`
	DepthPlus2Pct          decimal.Decimal  `json:"depthPlus2Pct"`
	DepthMinus2Pct         decimal.Decimal  `json:"depthMinus2Pct"`
	Volume24h              decimal.Decimal  `json:"volume24h"`
	VolumeSpreadPercent    decimal.Decimal  `json:"volumeSpreadPercent"`
	IconURL                string           `json:"iconUrl,omitempty"`
	SiteURL                string           `json:"siteUrl,omitempty"`
}

// Key returns the store key for the listing: the lower-cased exchange name.
func (l SyntheticListing) Key() string {
	return strings.ToLower(l.ExchangeName)
}

// SyntheticPatch carries a partial update for a synthetic listing. Nil
// fields are left untouched.
type SyntheticPatch struct {
	Pair                   *string          `json:"pair,omitempty"`
	Price                  *decimal.Decimal `json:"price,omitempty"`
	PricePercentAdjustment *decimal.Decimal `json:"pricePercentAdjustment,omitempty"`
	DepthPlus2Pct          *decimal.Decimal `json:"depthPlus2Pct,omitempty"`
	DepthMinus2Pct         *decimal.Decimal `json:"depthMinus2Pct,omitempty"`
	Volume24h              *decimal.Decimal `json:"volume24h,omitempty"`
	VolumeSpreadPercent    *decimal.Decimal `json:"volumeSpreadPercent,omitempty"`
	IconURL                *string          `json:"iconUrl,omitempty"`
	SiteURL                *string          `json:"siteUrl,omitempty"`
}

type ListingsResponse struct {
	Status string            `json:"status"`
	Data   []ExchangeListing `json:"data"`
}
