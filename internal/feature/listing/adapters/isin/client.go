package isin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"stock_listing/internal/feature/listing/domain/entity"
	"stock_listing/internal/feature/listing/usecase"
	platformhttp "stock_listing/internal/platform/http"
	"stock_listing/internal/shared/retry"
)

// Session is the rate-limited HTTP session shared by every fetch.
type Session interface {
	GetText(ctx context.Context, url string) (string, error)
}

// Client fetches registry pages through a shared Session and cleans them into listings.
type Client struct {
	cfg     Config
	session Session
	// fatalf terminates the process on a usage error. Replaced in tests.
	fatalf func(format string, args ...any)
}

// Client must satisfy the usecase's fetcher port.
var _ usecase.ListingFetcher = (*Client)(nil)

// NewClient creates a Client. The session is owned by the caller and should be
// shared with every other client that must respect the same request ceiling.
func NewClient(cfg Config, session Session) *Client {
	return &Client{cfg: cfg, session: session, fatalf: log.Fatalf}
}

// Fetch returns the raw page text for source.
//
// An unrecognized source is a programming error: the process exits with status 1
// before any request is made. Connection failures and 429/5xx responses are retried
// cfg.MaxAttempts times in total with a fixed cfg.RetryWait between attempts.
func (c *Client) Fetch(ctx context.Context, source entity.Source) (string, error) {
	if !source.Valid() {
		c.fatalf("The parameter \"mode\" need to be 2 or 4. Given: %d", int(source))
		return "", fmt.Errorf("%w: %d", entity.ErrInvalidSource, int(source))
	}

	u := c.pageURL(source)
	var text string
	err := retry.Do(ctx, retry.Policy{
		MaxAttempts: c.cfg.MaxAttempts,
		Wait:        c.cfg.RetryWait,
		Retryable:   isTransient,
	}, func(ctx context.Context) error {
		var err error
		text, err = c.session.GetText(ctx, u)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("fetch %s listing: %w", source, err)
	}
	return text, nil
}

// FetchListing fetches the page for source and returns its cleaned equity listings.
func (c *Client) FetchListing(ctx context.Context, source entity.Source) ([]entity.Listing, error) {
	raw, err := c.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	listings, err := ParseAndClean(raw, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s listing: %w", source, err)
	}
	return listings, nil
}

func (c *Client) pageURL(source entity.Source) string {
	q := url.Values{}
	q.Set("strMode", strconv.Itoa(int(source)))
	return c.cfg.BaseURL + "?" + q.Encode()
}

// isTransient reports whether err came from the network layer or a retryable status.
// Cancellation of the caller's context stops the retry loop on its own.
func isTransient(err error) bool {
	var te *platformhttp.TransportError
	if errors.As(err, &te) {
		return true
	}
	var se *platformhttp.StatusError
	return errors.As(err, &se) && se.Temporary()
}
