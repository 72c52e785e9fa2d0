package http

import (
	"context"
	"fmt"
	"net/http"

	"stock_listing/internal/shared/ratelimiter"
)

// userAgent はリクエストに付与する User-Agent です。
const userAgent = "stock_listing/1.0 (+https://isin.twse.com.tw)"

// StatusError は 2xx 以外のレスポンスを表します。
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.URL)
}

// Temporary は再試行で回復しうるステータスかどうかを返します。
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// TransportError はリクエスト送信やボディ読み込みの失敗（接続エラーなど）を表します。
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Session はレートリミッタを共有するHTTPクライアントです。
// 呼び出し元が1つ生成し、同じ上限を適用したいすべての取得処理に渡します。
type Session struct {
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// NewSession は指定されたクライアントとレートリミッタで Session を生成します。
func NewSession(client *http.Client, limiter ratelimiter.RateLimiterInterface) *Session {
	return &Session{client: client, limiter: limiter}
}

// GetText はレートリミッタの枠を待ってから GET を発行し、ボディをUTF-8文字列として返します。
// 文字コードは Content-Type の charset、なければ HTML の meta から判定します。
func (s *Session) GetText(ctx context.Context, url string) (string, error) {
	if err := s.limiter.WaitIfNeeded(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := s.client.Do(req)
	if err != nil {
		return "", &TransportError{Op: "do request", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &StatusError{StatusCode: res.StatusCode, URL: url}
	}

	text, err := DecodeBody(res.Body, res.Header.Get("Content-Type"))
	if err != nil {
		return "", &TransportError{Op: "read body", Err: err}
	}
	return text, nil
}
