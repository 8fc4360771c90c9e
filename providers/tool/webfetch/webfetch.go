package webfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/reagent/internal/utils"
	"github.com/leofalp/reagent/providers/tool"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "reagent-webfetch-tool/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the maximum time to wait for TLS handshake
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is the maximum time to wait for response headers
	ResponseHeaderTimeout = 10 * time.Second
	// IdleConnTimeout is the maximum time an idle connection can be reused
	IdleConnTimeout = 90 * time.Second
)

// NewWebFetchTool returns a tool that fetches a web page and returns its
// content converted to Markdown. Fetch failures come back as descriptive
// strings in the observation, so the model can see what went wrong and try a
// different URL.
func NewWebFetchTool() *tool.Tool {
	return tool.New("webfetch",
		map[string]tool.Kind{
			"url":             tool.KindString,
			"timeout_seconds": tool.KindInt,
		},
		func(ctx context.Context, args tool.Arguments) (any, error) {
			markdown, err := Fetch(ctx, args.String("url"), args.Int("timeout_seconds"))
			if err != nil {
				return fmt.Sprintf("fetch failed: %v", err), nil
			}
			return markdown, nil
		},
		tool.WithDescription("Fetches a web page and returns its content converted to Markdown. url may be partial (like 'example.com') or full; timeout_seconds bounds the request, 0 uses the default."),
	)
}

// NormalizeURL trims url and prepends https:// when no scheme is present.
func NormalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}

// Fetch retrieves the page at url and returns its content as Markdown.
// Partial URLs are normalized by prepending "https://". Up to ten redirects
// are followed; the body is capped at [MaxBodySize] bytes. timeoutSeconds
// bounds the whole exchange, with [DefaultTimeout] as the fallback.
func Fetch(ctx context.Context, url string, timeoutSeconds int) (string, error) {
	url = NormalizeURL(url)
	if url == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}

	timeout := DefaultTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", DefaultUserAgent)

	response, err := newClient(timeout).Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request timeout or canceled: %w", err)
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer utils.CloseWithLog(response.Body)

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d %s", response.StatusCode, response.Status)
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(response.Body, MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if len(htmlBytes) == MaxBodySize {
		return "", fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	return markdown, nil
}

// newClient builds an HTTP client with timeouts on every phase of the
// exchange so a slow or unresponsive server cannot stall a round.
func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   TLSHandshakeTimeout,
			ResponseHeaderTimeout: ResponseHeaderTimeout,
			IdleConnTimeout:       IdleConnTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects (>10)")
			}
			return nil
		},
	}
}
