// Package entity defines the domain models for the listing feature.
package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSource is returned when a value does not name a known listing source.
var ErrInvalidSource = errors.New("invalid listing source")

// Source selects which registry listing to fetch. The numeric value is the
// strMode parameter understood by the ISIN registry page.
type Source int

const (
	// SourceTSE is the exchange-listed (上市) board.
	SourceTSE Source = 2
	// SourceOTC is the over-the-counter (上櫃) board.
	SourceOTC Source = 4
)

// Sources lists the recognized sources in the order they are combined.
var Sources = []Source{SourceTSE, SourceOTC}

// Valid reports whether s is one of the recognized sources.
func (s Source) Valid() bool {
	return s == SourceTSE || s == SourceOTC
}

// Suffix returns the market suffix appended to symbols for the downstream
// market-data provider, or "" for an unrecognized source.
func (s Source) Suffix() string {
	switch s {
	case SourceTSE:
		return ".TW"
	case SourceOTC:
		return ".TWO"
	}
	return ""
}

func (s Source) String() string {
	switch s {
	case SourceTSE:
		return "TSE"
	case SourceOTC:
		return "OTC"
	}
	return "Source(" + strconv.Itoa(int(s)) + ")"
}

// ParseSource accepts either the numeric mode ("2", "4") or the board name ("tse", "otc").
func ParseSource(v string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "2", "tse":
		return SourceTSE, nil
	case "4", "otc":
		return SourceOTC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSource, v)
}

// Listing is one equity instrument from a registry listing.
// YFSymbol is always Symbol followed by Source.Suffix().
type Listing struct {
	Symbol   string
	Name     string
	Market   string
	Industry string
	YFSymbol string
	Source   Source
}
