package http

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/traditionalchinese"
)

func big5(t *testing.T, s string) []byte {
	t.Helper()
	b, err := traditionalchinese.Big5.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	const text = "有價證券代號及名稱"

	tests := []struct {
		name        string
		body        func(t *testing.T) []byte
		contentType string
	}{
		{
			name:        "MS950 charset in content type",
			body:        func(t *testing.T) []byte { return big5(t, text) },
			contentType: "text/html;charset=MS950",
		},
		{
			name:        "Big5 charset in content type",
			body:        func(t *testing.T) []byte { return big5(t, text) },
			contentType: "text/html; charset=big5",
		},
		{
			name: "MS950 declared in meta only",
			body: func(t *testing.T) []byte {
				var buf bytes.Buffer
				buf.WriteString(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=MS950"></head><body>`)
				buf.Write(big5(t, text))
				return buf.Bytes()
			},
			contentType: "text/html",
		},
		{
			name:        "UTF-8 body",
			body:        func(t *testing.T) []byte { return []byte(text) },
			contentType: "text/html; charset=utf-8",
		},
		{
			name:        "no charset information defaults to content sniffing",
			body:        func(t *testing.T) []byte { return []byte("<html><body>" + text + "</body></html>") },
			contentType: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeBody(bytes.NewReader(tt.body(t)), tt.contentType)

			require.NoError(t, err)
			assert.Contains(t, got, text)
		})
	}
}

func TestLookupEncoding(t *testing.T) {
	t.Parallel()

	assert.Nil(t, lookupEncoding(""))
	assert.Nil(t, lookupEncoding("no-such-charset"))
	assert.Equal(t, traditionalchinese.Big5, lookupEncoding(" MS950 "))
	assert.Equal(t, traditionalchinese.Big5, lookupEncoding("cp950"))
	assert.NotNil(t, lookupEncoding("utf-8"))
}
