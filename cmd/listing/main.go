// Command listing fetches the TWSE and TPEx equity listings once and writes the
// combined table to stdout.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stock_listing/internal/app/di"
	"stock_listing/internal/feature/listing/adapters/isin"
	"stock_listing/internal/feature/listing/domain/entity"
	"stock_listing/internal/feature/listing/transport/http/dto"
)

func main() {
	source := flag.String("source", "all", "listing to fetch: all, tse (2) or otc (4)")
	format := flag.String("format", "json", "output format: json or csv")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	cfg := isin.LoadConfig()
	uc := di.NewListingUsecase(cfg, di.NewSession(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var (
		ls  []entity.Listing
		err error
	)
	if *source == "all" {
		ls, err = uc.GetCombinedListing(ctx)
	} else {
		src, perr := entity.ParseSource(*source)
		if perr != nil {
			log.Fatal(perr)
		}
		ls, err = uc.GetListing(ctx, src)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := write(os.Stdout, *format, dto.FromEntities(ls)); err != nil {
		log.Fatal(err)
	}
	slog.Info("listing ok", "rows", len(ls))
}

func write(w io.Writer, format string, items []dto.ListingItem) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"symbol", "name", "market", "industry", "yf_symbol"}); err != nil {
			return err
		}
		for _, it := range items {
			if err := cw.Write([]string{it.Symbol, it.Name, it.Market, it.Industry, it.YFSymbol}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("unknown format %q", format)
}
