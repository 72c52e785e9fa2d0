package router

import (
	"github.com/gin-gonic/gin"

	listinghandler "stock_listing/internal/feature/listing/transport/handler"
	platformhandler "stock_listing/internal/platform/http/handler"
	jwtmw "stock_listing/internal/platform/jwt"
)

// NewRouter は銘柄一覧APIのルーティングを設定したGinエンジンを返します。
func NewRouter(listing *listinghandler.ListingHandler, jwtSecret, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 認証不要
	health := platformhandler.NewHealth(version)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/listings", listing.List)
		auth.GET("/listings/:source", listing.ListBySource)
	}

	return r
}
