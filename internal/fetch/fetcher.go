// Package fetch retrieves document text from URLs with robots.txt
// compliance, per-host rate limiting, and caching.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/clauscan/clauscan/internal/cache"
	"github.com/clauscan/clauscan/internal/model"
)

// Fetcher fetches document text from URLs
type Fetcher struct {
	httpClient *http.Client
	robots     *RobotsChecker
	limiter    *Limiter
	cache      cache.Cache // nil disables caching
	userAgent  string
	maxBytes   int64
	cacheTTL   model.CacheConfig
}

// New creates a Fetcher. A nil cache disables caching.
func New(cfg model.HTTPConfig, cacheCfg model.CacheConfig, c cache.Cache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		limiter:   NewLimiter(cfg.RequestsPerSec, 2),
		cache:     c,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		cacheTTL:  cacheCfg,
	}
}

// Result contains the fetched document text and metadata
type Result struct {
	Text     string
	FinalURL string
	Cached   bool
}

// Fetch retrieves the document at rawURL and extracts its visible text.
// HTML responses are reduced to visible text; anything else is treated
// as plain text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	key := cache.Key(rawURL)
	if f.cache != nil {
		if text, found := f.cache.Get(key); found {
			return &Result{Text: string(text), FinalURL: rawURL, Cached: true}, nil
		}
	}

	allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("fetch disallowed by robots.txt: %s", rawURL)
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") {
		text, err = ExtractText(text)
		if err != nil {
			return nil, fmt.Errorf("extract text: %w", err)
		}
	}

	if f.cache != nil {
		// A failed cache write costs a refetch, nothing more.
		if err := f.cache.Set(key, []byte(text), f.cacheTTL.TTL); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
	}

	return &Result{
		Text:     text,
		FinalURL: resp.Request.URL.String(),
	}, nil
}
