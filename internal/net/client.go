// Package net fetches a single RPC response for the CLI. It performs no
// retries, rate limiting or session rotation; callers own those concerns.
package net

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// ErrStatus signals a non-2xx reply.
var ErrStatus = errors.New("net: unexpected status")

// maxBody bounds how much of a reply is read.
const maxBody = 32 << 20

// Client wraps a tls-client HTTP client with a browser TLS fingerprint.
type Client struct {
	hc tls_client.HttpClient
}

// New builds a Client. profile names a tls-client profile such as
// "chrome_133"; unknown names fall back to the library default.
func New(timeout time.Duration, profile string) (*Client, error) {
	p, ok := profiles.MappedTLSClients[profile]
	if !ok {
		p = profiles.DefaultClientProfile
	}
	hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(int(timeout/time.Second)),
		tls_client.WithClientProfile(p),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	)
	if err != nil {
		return nil, fmt.Errorf("net: client: %w", err)
	}
	return &Client{hc: hc}, nil
}

// WithLocale sets the hl (language) and gl (region) query parameters on
// rawURL, leaving others untouched. Empty values are not set.
func WithLocale(rawURL, language, region string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	if language != "" {
		q.Set("hl", language)
	}
	if region != "" {
		q.Set("gl", region)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch GETs rawURL and returns the raw body, prefix included.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header = http.Header{
		"accept":          {"*/*"},
		"accept-language": {"en-US,en;q=0.9"},
		"user-agent":      {ua},
		http.HeaderOrderKey: {
			"accept",
			"accept-language",
			"user-agent",
		},
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("net: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("net: read body: %w", err)
	}
	return body, nil
}

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36"
