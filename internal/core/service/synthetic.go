package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
)

// CreateSynthetic stores a new operator-curated listing, replacing any
// existing entry with the same lower-cased name. The price is never taken
// from the request: it starts at zero and, for percent-driven listings, is
// computed from the current reference price when one is available.
func (s *ListingService) CreateSynthetic(ctx context.Context, listing domain.SyntheticListing) (domain.SyntheticListing, error) {
	listing.ExchangeName = strings.TrimSpace(listing.ExchangeName)
	if listing.ExchangeName == "" {
		return domain.SyntheticListing{}, fmt.Errorf("%w: exchangeName is required", domain.ErrValidation)
	}
	if err := validateAmounts(listing.DepthPlus2Pct, listing.DepthMinus2Pct, listing.Volume24h); err != nil {
		return domain.SyntheticListing{}, err
	}

	if listing.Pair == "" {
		listing.Pair = s.pair
	}

	listing.Price = decimal.Zero
	if listing.PricePercentAdjustment != nil {
		if ref := s.refPrice.ReferencePrice(ctx); ref > 0 {
			listing.Price = adjustedPrice(ref, *listing.PricePercentAdjustment)
		}
	}

	s.store.Put(listing)
	return listing, nil
}

// ListSynthetic returns the full store contents in raw form.
func (s *ListingService) ListSynthetic() []domain.SyntheticListing {
	return s.store.List()
}

// UpdateSynthetic applies a partial update to the named listing. An
// explicit price switches the listing to fixed-price mode and clears the
// percent adjustment; an explicit adjustment switches it to percent-driven
// mode and recomputes the price immediately when the reference price is
// available. The two are never set together.
func (s *ListingService) UpdateSynthetic(ctx context.Context, name string, patch domain.SyntheticPatch) (domain.SyntheticListing, error) {
	listing, ok := s.store.Get(name)
	if !ok {
		return domain.SyntheticListing{}, fmt.Errorf("%w: synthetic listing %q", domain.ErrNotFound, name)
	}

	if patch.Pair != nil {
		listing.Pair = *patch.Pair
	}

	switch {
	case patch.PricePercentAdjustment != nil:
		listing.PricePercentAdjustment = patch.PricePercentAdjustment
		if ref := s.refPrice.ReferencePrice(ctx); ref > 0 {
			listing.Price = adjustedPrice(ref, *patch.PricePercentAdjustment)
		}
	case patch.Price != nil:
		listing.Price = *patch.Price
		listing.PricePercentAdjustment = nil
	}

	if patch.DepthPlus2Pct != nil {
		listing.DepthPlus2Pct = *patch.DepthPlus2Pct
	}
	if patch.DepthMinus2Pct != nil {
		listing.DepthMinus2Pct = *patch.DepthMinus2Pct
	}
	if patch.Volume24h != nil {
		listing.Volume24h = *patch.Volume24h
	}
	if patch.VolumeSpreadPercent != nil {
		listing.VolumeSpreadPercent = *patch.VolumeSpreadPercent
	}
	if patch.IconURL != nil {
		listing.IconURL = *patch.IconURL
	}
	if patch.SiteURL != nil {
		listing.SiteURL = *patch.SiteURL
	}

	if err := validateAmounts(listing.DepthPlus2Pct, listing.DepthMinus2Pct, listing.Volume24h); err != nil {
		return domain.SyntheticListing{}, err
	}

	s.store.Put(listing)
	return listing, nil
}

// DeleteSynthetic removes the named listing; unknown names are NotFound.
// The name match is case-insensitive.
func (s *ListingService) DeleteSynthetic(name string) error {
	if !s.store.Delete(name) {
		return fmt.Errorf("%w: synthetic listing %q", domain.ErrNotFound, name)
	}

	return nil
}

func validateAmounts(amounts ...decimal.Decimal) error {
	for _, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%w: depth and volume values must be non-negative", domain.ErrValidation)
		}
	}

	return nil
}
