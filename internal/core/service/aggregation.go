package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/pkg/format"
)

// mergeSynthetic appends the operator-curated listings after the snapshot
// rows and assigns provisional IDs across the merged collection. Synthetic
// rows sharing a name with a live exchange stay as distinct rows; no
// deduplication is performed.
func (s *ListingService) mergeSynthetic(ctx context.Context, snapshot []domain.ExchangeListing) []domain.ExchangeListing {
	synthetics := s.store.List()

	merged := make([]domain.ExchangeListing, len(snapshot), len(snapshot)+len(synthetics))
	copy(merged, snapshot)

	for _, synthetic := range synthetics {
		merged = append(merged, s.renderSynthetic(ctx, synthetic))
	}

	for i := range merged {
		merged[i].ID = i + 1
	}

	return merged
}

// renderSynthetic formats a stored synthetic listing into an aggregated
// row. Percent-driven prices are recomputed against the live reference
// price; when the reference price is unavailable (0 sentinel) the
// last-known static price is kept rather than failing the merge.
func (s *ListingService) renderSynthetic(ctx context.Context, listing domain.SyntheticListing) domain.ExchangeListing {
	price := listing.Price
	if listing.PricePercentAdjustment != nil {
		if ref := s.refPrice.ReferencePrice(ctx); ref > 0 {
			price = adjustedPrice(ref, *listing.PricePercentAdjustment)
		}
	}

	return domain.ExchangeListing{
		ExchangeName:           listing.ExchangeName,
		Pair:                   listing.Pair,
		Price:                  format.Price(price),
		PricePercentAdjustment: listing.PricePercentAdjustment,
		DepthPlus2Pct:          format.Money(listing.DepthPlus2Pct),
		DepthMinus2Pct:         format.Money(listing.DepthMinus2Pct),
		Volume24h:              format.Money(listing.Volume24h),
		VolumeSpreadPercent:    format.Percent(listing.VolumeSpreadPercent),
		LastUpdated:            domain.LastUpdatedLabel,
		IconURL:                listing.IconURL,
		SiteURL:                listing.SiteURL,
	}
}

// adjustedPrice computes reference * (1 + adjustment/100) rounded to four
// decimals.
func adjustedPrice(reference float64, adjustment decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(adjustment.Div(decimal.NewFromInt(100)))
	return decimal.NewFromFloat(reference).Mul(factor).Round(4)
}
