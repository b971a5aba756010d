// Package fetcher downloads feed documents over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func New(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  false,
				DisableKeepAlives:   false,
				MaxIdleConnsPerHost: 5,
			},
		},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Run performs a single GET for the given URL. Any transport error, timeout
// or non-2xx status is returned as an error with no content; there is no
// retry. The body is returned transcoded to UTF-8 when the response declares
// a different charset.
func (f *Fetcher) Run(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return decodeBody(data, resp.Header.Get("Content-Type")), nil
}

// decodeBody converts the body to UTF-8 based on the charset parameter of the
// Content-Type header. Absent, UTF-8 or unknown charsets pass the bytes
// through unchanged; the XML layer still gets a chance to act on the encoding
// declaration.
func decodeBody(data []byte, contentType string) []byte {
	if contentType == "" {
		return data
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return data
	}

	charset := params["charset"]
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return data
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return data
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return data
	}

	return decoded
}
