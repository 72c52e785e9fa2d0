// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"stock_listing/internal/feature/listing/adapters/isin"
	"stock_listing/internal/feature/listing/usecase"
	platformhttp "stock_listing/internal/platform/http"
	"stock_listing/internal/shared/ratelimiter"
)

// NewSession creates the rate-limited HTTP session shared by every registry fetch.
func NewSession(cfg isin.Config) *platformhttp.Session {
	client := platformhttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.RatePerSec, time.Second)
	return platformhttp.NewSession(client, limiter)
}

// NewListingUsecase creates a fully configured ListingUsecase. Both sources are
// fetched through the single session passed in.
func NewListingUsecase(cfg isin.Config, session *platformhttp.Session) *usecase.ListingUsecase {
	return usecase.NewListingUsecase(isin.NewClient(cfg, session))
}
