// Package handler はlistingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_listing/internal/feature/listing/domain/entity"
	"stock_listing/internal/feature/listing/transport/http/dto"
)

// ListingUsecase は銘柄一覧取得のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ListingUsecase interface {
	GetCombinedListing(ctx context.Context) ([]entity.Listing, error)
	GetListing(ctx context.Context, source entity.Source) ([]entity.Listing, error)
}

// errUpstreamMessage は取得元の失敗時にクライアントへ返す文言です。
// 取得先URLや内部のエラー詳細はログにのみ出力します。
const errUpstreamMessage = "failed to fetch listing from upstream registry"

// ListingHandler は銘柄一覧に関するHTTPリクエストを処理します。
type ListingHandler struct {
	uc ListingUsecase
}

// NewListingHandler は新しい ListingHandler を作成します。
func NewListingHandler(uc ListingUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

// List は上場・店頭を結合した普通株の一覧を返します。
// リクエストごとに取得元から再計算します。取得・解析に失敗した場合は502を返します。
//
// GET /listings
func (h *ListingHandler) List(c *gin.Context) {
	ls, err := h.uc.GetCombinedListing(c.Request.Context())
	if err != nil {
		slog.Error("failed to build combined listing", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": errUpstreamMessage})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ls))
}

// ListBySource は指定された市場のみの一覧を返します。
// 不正な市場指定は取得処理を呼ばずに400を返します。
//
// GET /listings/:source  (source: tse | otc | 2 | 4)
func (h *ListingHandler) ListBySource(c *gin.Context) {
	src, err := entity.ParseSource(c.Param("source"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ls, err := h.uc.GetListing(c.Request.Context(), src)
	if err != nil {
		slog.Error("failed to build listing", "source", src, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": errUpstreamMessage})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(ls))
}
