// Package assets resolves image sources to raw bytes for export: data URIs
// are decoded in place, remote URLs are fetched over HTTP with a bounded
// per-request timeout.
package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// ErrNotFound reports a source that resolved to no usable bytes (HTTP 404, or
// a malformed data URI).
var ErrNotFound = errors.New("asset not found")

// Fetcher resolves a URL to raw bytes and a MIME type.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) (data []byte, mimeType string, err error)
}

const (
	defaultTimeout = 15 * time.Second
	maxAssetBytes  = 64 << 20
	fallbackMIME   = "image/png"
	dataURIPrefix  = "data:image/"
)

// HTTPFetcher fetches assets over HTTP. The zero value is usable.
type HTTPFetcher struct {
	Client  *http.Client
	Timeout time.Duration
}

func (f *HTTPFetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *HTTPFetcher) timeout() time.Duration {
	if f.Timeout > 0 {
		return f.Timeout
	}
	return defaultTimeout
}

// FetchBytes downloads a URL. Non-2xx statuses map to ErrNotFound for 404 and
// a plain error otherwise.
func (f *HTTPFetcher) FetchBytes(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build asset request: %w", err)
	}
	resp, err := f.client().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("fetch asset: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read asset body: %w", err)
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = fallbackMIME
	}
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return data, mimeType, nil
}

var dataURIRe = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,(.+)$`)

// IsDataURI reports whether a source string is an inline base64 image.
func IsDataURI(src string) bool { return strings.HasPrefix(src, dataURIPrefix) }

// DecodeDataURI decodes a base64 image data URI into bytes and a MIME type.
func DecodeDataURI(src string) ([]byte, string, error) {
	m := dataURIRe.FindStringSubmatch(src)
	if m == nil {
		return nil, "", fmt.Errorf("%w: malformed data uri", ErrNotFound)
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return data, m[1], nil
}

// ExtensionForMIME maps a MIME type to a file extension, defaulting to png.
func ExtensionForMIME(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "png"):
		return "png"
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return "jpg"
	case strings.Contains(mimeType, "webp"):
		return "webp"
	case strings.Contains(mimeType, "gif"):
		return "gif"
	default:
		return "png"
	}
}
