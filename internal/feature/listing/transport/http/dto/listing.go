// Package dto defines data transfer objects for the listing HTTP API.
package dto

import "stock_listing/internal/feature/listing/domain/entity"

// ListingItem represents one row of the listing in the API response.
type ListingItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Market   string `json:"market"`
	Industry string `json:"industry"`
	YFSymbol string `json:"yf_symbol"`
}

// FromEntities converts domain listings to response items, preserving order.
func FromEntities(ls []entity.Listing) []ListingItem {
	out := make([]ListingItem, 0, len(ls))
	for _, l := range ls {
		out = append(out, ListingItem{
			Symbol:   l.Symbol,
			Name:     l.Name,
			Market:   l.Market,
			Industry: l.Industry,
			YFSymbol: l.YFSymbol,
		})
	}
	return out
}
