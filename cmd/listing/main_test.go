package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_listing/internal/feature/listing/transport/http/dto"
)

var items = []dto.ListingItem{
	{Symbol: "2330", Name: "台積電", Market: "上市", Industry: "半導體業", YFSymbol: "2330.TW"},
	{Symbol: "6488", Name: "環球晶", Market: "上櫃", Industry: "半導體業", YFSymbol: "6488.TWO"},
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, write(&buf, "json", items))

	var got []dto.ListingItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, items, got)
}

func TestWrite_CSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, write(&buf, "csv", items))

	want := "symbol,name,market,industry,yf_symbol\n" +
		"2330,台積電,上市,半導體業,2330.TW\n" +
		"6488,環球晶,上櫃,半導體業,6488.TWO\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	assert.Error(t, write(&bytes.Buffer{}, "xml", items))
}
