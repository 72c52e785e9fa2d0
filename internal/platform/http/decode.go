package http

import (
	"bytes"
	"io"
	"mime"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// metaCharset は HTML 先頭部分の meta 宣言から charset を取り出します。
var metaCharset = regexp.MustCompile(`(?i)charset\s*=\s*["']?([a-z0-9_\-]+)`)

// sniffLen は meta 宣言を探す先頭バイト数です。
const sniffLen = 1024

// DecodeBody は r を読み切り、contentType の charset に従ってUTF-8文字列に変換します。
// charset がない場合は HTML の meta 宣言、最後に内容から推定します。
func DecodeBody(r io.Reader, contentType string) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	enc := encodingFromContentType(contentType)
	if enc == nil {
		enc = encodingFromMeta(body)
	}
	if enc == nil {
		enc, _, _ = charset.DetermineEncoding(body, contentType)
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func encodingFromContentType(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}
	return lookupEncoding(params["charset"])
}

func encodingFromMeta(body []byte) encoding.Encoding {
	head := body
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if !bytes.Contains(bytes.ToLower(head), []byte("<meta")) {
		return nil
	}
	m := metaCharset.FindSubmatch(head)
	if m == nil {
		return nil
	}
	return lookupEncoding(string(m[1]))
}

// lookupEncoding は WHATWG のラベルに加えて、TWSE が返す MS950 系のラベルを Big5 として解決します。
func lookupEncoding(label string) encoding.Encoding {
	label = strings.ToLower(strings.TrimSpace(label))
	switch label {
	case "":
		return nil
	case "ms950", "cp950", "windows-950", "x-windows-950":
		return traditionalchinese.Big5
	}
	enc, _ := charset.Lookup(label)
	return enc
}
