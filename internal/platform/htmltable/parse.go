// Package htmltable extracts tabular data from HTML documents and provides
// column-oriented operations on the result.
package htmltable

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoTable is returned when the document contains no <table> element.
var ErrNoTable = errors.New("htmltable: no table found")

// ParseFirst parses an HTML document and returns its first <table> as a Table.
//
// Every <tr> of the table (including header rows made of <th>) becomes a row, in
// document order. Cells spanning several columns or rows are expanded by repeating
// their text, and short rows are padded with empty strings so all rows have the
// same width. Columns are named by position ("0", "1", ...).
func ParseFirst(r io.Reader) (*Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	tbl := findFirst(doc, atom.Table)
	if tbl == nil {
		return nil, ErrNoTable
	}

	var rows [][]string
	pending := map[int]*span{}
	for _, tr := range collectRows(tbl) {
		rows = append(rows, expandRow(tr, pending))
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	cols := make([]string, width)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return &Table{Columns: cols, Rows: rows}, nil
}

// span is a cell carried down into following rows by rowspan.
type span struct {
	text      string
	remaining int
}

func expandRow(tr *html.Node, pending map[int]*span) []string {
	var row []string
	col := 0

	fillPending := func() {
		for {
			sp, ok := pending[col]
			if !ok {
				return
			}
			row = append(row, sp.text)
			sp.remaining--
			if sp.remaining == 0 {
				delete(pending, col)
			}
			col++
		}
	}

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		fillPending()

		text := cellText(c)
		colspan := spanAttr(c, "colspan")
		rowspan := spanAttr(c, "rowspan")
		for i := 0; i < colspan; i++ {
			row = append(row, text)
			if rowspan > 1 {
				pending[col] = &span{text: text, remaining: rowspan - 1}
			}
			col++
		}
	}
	fillPending()
	return row
}

// collectRows returns the <tr> elements belonging to tbl, skipping nested tables.
func collectRows(tbl *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				continue
			case atom.Tr:
				out = append(out, c)
			default:
				walk(c)
			}
		}
	}
	walk(tbl)
	return out
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// cellText concatenates the text content of a cell and trims surrounding whitespace.
// <br> is rendered as a single space.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(a.Val))
		if err != nil || v < 1 {
			return 1
		}
		return v
	}
	return 1
}
