package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"stock_listing/internal/app/di"
	"stock_listing/internal/app/router"
	"stock_listing/internal/feature/listing/adapters/isin"
	listinghandler "stock_listing/internal/feature/listing/transport/handler"
	jwtmw "stock_listing/internal/platform/jwt"
)

// version はビルド時に -ldflags "-X main.version=..." で上書きします。
var version = "dev"

func main() {
	// .envを読み込む
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := isin.LoadConfig()

	// セッション（レートリミッタ）はプロセスで1つだけ生成し、全取得で共有する
	session := di.NewSession(cfg)
	listingUC := di.NewListingUsecase(cfg, session)
	listingH := listinghandler.NewListingHandler(listingUC)

	secret := jwtmw.LoadSecret()
	if secret == "" {
		slog.Warn("JWT_SECRET is not set; /listings will answer 500 until it is configured")
	}

	r := router.NewRouter(listingH, secret, version)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("starting listing server", "port", port, "isin_base_url", cfg.BaseURL, "layout_version", isin.LayoutVersion)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
