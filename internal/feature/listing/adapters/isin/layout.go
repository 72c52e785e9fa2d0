package isin

import (
	"errors"
	"fmt"
	"strings"

	"stock_listing/internal/feature/listing/domain/entity"
	"stock_listing/internal/platform/htmltable"
)

// This file is the only place that knows the layout of the C_public.jsp page:
// header texts, how many banner rows precede the data and which glyphs delimit
// the compound symbol/name column. The page is not versioned upstream, so any
// change there has to be mirrored here by hand. Bump LayoutVersion when it is.

// LayoutVersion identifies the page layout this parser understands.
const LayoutVersion = 1

const (
	headerJoiner   = "及"     // joins the two names in the compound header
	fullWidthSpace = "\u3000" // separates symbol and name in the compound column
	asciiSpace     = " "

	// EquityCFICode is the classification code of ordinary shares.
	EquityCFICode = "ESVUFR"

	colSymbol   = "有價證券代號"
	colName     = "名稱"
	colISIN     = "國際證券辨識號碼(ISIN Code)"
	colListed   = "上市日"
	colMarket   = "市場別"
	colIndustry = "產業別"
	colCFICode  = "CFICode"
	colRemarks  = "備註"
)

var (
	// ErrHeaderLayout is returned when the compound header cannot be split into two names.
	ErrHeaderLayout = errors.New("isin: unexpected header layout")
	// ErrMalformedRow is returned when a row cannot be split into symbol and name.
	ErrMalformedRow = errors.New("isin: malformed row")
)

// droppedColumns are not carried into the cleaned listing.
var droppedColumns = []string{colISIN, colListed, colCFICode, colRemarks}

// renamedColumns maps the page's column headers to stable identifiers.
var renamedColumns = map[string]string{
	colSymbol:   "symbol",
	colName:     "name",
	colMarket:   "market",
	colIndustry: "industry",
}

const colYFSymbol = "yf_symbol"

// headerRows returns how many leading rows (header and banner) precede the data.
// Both recognized sources carry a header row followed by one category banner.
func headerRows(source entity.Source) int {
	if source < 11 {
		return 2
	}
	return 1
}

// ParseAndClean turns the raw C_public.jsp page of source into cleaned equity listings.
//
// Any deviation from the expected layout is returned as an error; there is no
// per-row tolerance.
func ParseAndClean(raw string, source entity.Source) ([]entity.Listing, error) {
	suffix := source.Suffix()
	if suffix == "" {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidSource, int(source))
	}

	tbl, err := htmltable.ParseFirst(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}

	tbl, err = applyHeader(tbl, headerRows(source))
	if err != nil {
		return nil, err
	}

	tbl, err = splitCompoundColumn(tbl)
	if err != nil {
		return nil, err
	}

	if tbl, err = tbl.Map(repairSymbolName); err != nil {
		return nil, err
	}

	cfi, err := tbl.ColumnIndex(colCFICode)
	if err != nil {
		return nil, err
	}
	tbl = tbl.Filter(func(row []string) bool { return row[cfi] == EquityCFICode })

	if tbl, err = tbl.DropColumns(droppedColumns...); err != nil {
		return nil, err
	}
	if tbl, err = tbl.RenameColumns(renamedColumns); err != nil {
		return nil, err
	}

	sym, err := tbl.ColumnIndex("symbol")
	if err != nil {
		return nil, err
	}
	tbl = tbl.AppendColumn(colYFSymbol, func(row []string) string { return row[sym] + suffix })

	return toListings(tbl, source)
}

// applyHeader makes the first row the header and drops the first skip rows.
func applyHeader(tbl *htmltable.Table, skip int) (*htmltable.Table, error) {
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrHeaderLayout)
	}
	out := &htmltable.Table{Columns: tbl.Rows[0]}
	if skip < tbl.Len() {
		out.Rows = tbl.Rows[skip:]
	}
	return out, nil
}

// splitCompoundColumn replaces the first column ("有價證券代號及名稱") with a
// symbol column and a name column split on the full-width space.
func splitCompoundColumn(tbl *htmltable.Table) (*htmltable.Table, error) {
	if len(tbl.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrHeaderLayout)
	}
	names := strings.Split(tbl.Columns[0], headerJoiner)
	if len(names) != 2 {
		return nil, fmt.Errorf("%w: header %q does not split on %q into two names", ErrHeaderLayout, tbl.Columns[0], headerJoiner)
	}

	out := &htmltable.Table{
		Columns: append([]string{names[0], names[1]}, tbl.Columns[1:]...),
		Rows:    make([][]string, 0, tbl.Len()),
	}
	for i, row := range tbl.Rows {
		parts := strings.Split(row[0], fullWidthSpace)
		if len(parts) > 2 {
			return nil, fmt.Errorf("%w: row %d value %q has more than one full-width space", ErrMalformedRow, i, row[0])
		}
		symbol, name := parts[0], ""
		if len(parts) == 2 {
			name = parts[1]
		}
		out.Rows = append(out.Rows, append([]string{symbol, name}, row[1:]...))
	}
	return out, nil
}

// repairSymbolName fixes rows whose symbol still contains a separator, which
// happens when the page used an ASCII space instead of a full-width one.
// Columns 0 and 1 are symbol and name after splitCompoundColumn.
func repairSymbolName(row []string) []string {
	symbol := row[0]
	sep := fullWidthSpace
	if strings.Contains(symbol, asciiSpace) {
		sep = asciiSpace
	}
	if parts := strings.SplitN(symbol, sep, 2); len(parts) > 1 {
		row[0] = parts[0]
		row[1] = strings.TrimSpace(parts[1])
	}
	return row
}

func toListings(tbl *htmltable.Table, source entity.Source) ([]entity.Listing, error) {
	out := make([]entity.Listing, 0, tbl.Len())
	for i, row := range tbl.Rows {
		l := entity.Listing{
			Symbol:   tbl.Value(row, "symbol"),
			Name:     tbl.Value(row, "name"),
			Market:   tbl.Value(row, "market"),
			Industry: tbl.Value(row, "industry"),
			YFSymbol: tbl.Value(row, colYFSymbol),
			Source:   source,
		}
		if l.Symbol == "" || l.Name == "" {
			return nil, fmt.Errorf("%w: equity row %d (%q) has no separate symbol and name", ErrMalformedRow, i, l.Symbol)
		}
		out = append(out, l)
	}
	return out, nil
}
