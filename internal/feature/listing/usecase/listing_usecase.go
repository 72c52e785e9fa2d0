// Package usecase implements the business logic for building the securities listing.
package usecase

import (
	"context"

	"stock_listing/internal/feature/listing/domain/entity"
)

// ListingFetcher fetches and cleans the listing of a single source.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ListingFetcher interface {
	FetchListing(ctx context.Context, source entity.Source) ([]entity.Listing, error)
}

// ListingUsecase combines the exchange-listed and OTC listings.
type ListingUsecase struct {
	fetcher ListingFetcher
}

// NewListingUsecase creates a new ListingUsecase. The fetcher carries the shared
// rate-limited session, so both sources are fetched under one request ceiling.
func NewListingUsecase(f ListingFetcher) *ListingUsecase {
	return &ListingUsecase{fetcher: f}
}

// GetCombinedListing fetches TSE then OTC sequentially and concatenates the results.
// Slice position is the row index of the combined table. Any failure aborts the
// whole computation and no partial result is returned.
func (u *ListingUsecase) GetCombinedListing(ctx context.Context) ([]entity.Listing, error) {
	var combined []entity.Listing
	for _, src := range entity.Sources {
		ls, err := u.fetcher.FetchListing(ctx, src)
		if err != nil {
			return nil, err
		}
		combined = append(combined, ls...)
	}
	if combined == nil {
		combined = []entity.Listing{}
	}
	return combined, nil
}

// GetListing returns the cleaned listing of a single source.
func (u *ListingUsecase) GetListing(ctx context.Context, source entity.Source) ([]entity.Listing, error) {
	return u.fetcher.FetchListing(ctx, source)
}
