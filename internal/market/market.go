// Package market proxies crypto and stock quotes from third-party providers.
package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/metrics"
)

var log = logrus.WithField("package", "market")

const (
	// DefaultCoinMarketCapURL ...
	DefaultCoinMarketCapURL = "https://pro-api.coinmarketcap.com"
	// DefaultCoinGeckoURL ...
	DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"
	// DefaultYahooURL ...
	DefaultYahooURL = "https://query1.finance.yahoo.com"

	maxResponseSize = 10 << 20
	cacheSize       = 256
)

var (
	// ErrNotConfigured is returned when provider key is missing.
	ErrNotConfigured = errors.New("market provider is not configured")
	// ErrNotFound is returned when provider knows nothing about requested asset.
	ErrNotFound = errors.New("not found")
)

// Config ...
type Config struct {
	CoinMarketCapURL string
	CoinMarketCapKey string
	CoinGeckoURL     string
	YahooURL         string

	RPS      float64
	Burst    int
	CacheTTL time.Duration
}

// Client is a market data client.
type Client struct {
	c       *http.Client
	cfg     Config
	limiter *rate.Limiter
	cache   *expirable.LRU[string, []byte]
}

// New creates new instance of Client.
func New(cfg Config, c *http.Client) *Client {
	if cfg.CoinMarketCapURL == "" {
		cfg.CoinMarketCapURL = DefaultCoinMarketCapURL
	}
	if cfg.CoinGeckoURL == "" {
		cfg.CoinGeckoURL = DefaultCoinGeckoURL
	}
	if cfg.YahooURL == "" {
		cfg.YahooURL = DefaultYahooURL
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	if c == nil {
		c = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		c:       c,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		cache:   expirable.NewLRU[string, []byte](cacheSize, nil, cfg.CacheTTL),
	}
}

// get fetches upstream JSON, successful responses are cached by URL.
func (c *Client) get(ctx context.Context, provider, u string, header http.Header) ([]byte, error) {
	if data, ok := c.cache.Get(u); ok {
		return data, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	data, err := c.do(req)
	metrics.Upstream(provider, err)
	if err != nil {
		log.WithField("provider", provider).WithError(err).Warn("upstream request failed")
		return nil, err
	}

	c.cache.Add(u, data)

	return data, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, truncate(string(data), 200))
	}

	return data, nil
}

func (c *Client) cmc(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if c.cfg.CoinMarketCapKey == "" {
		return nil, ErrNotConfigured
	}

	h := http.Header{}
	h.Set("X-CMC_PRO_API_KEY", c.cfg.CoinMarketCapKey)

	return c.get(ctx, "coinmarketcap", c.cfg.CoinMarketCapURL+path+"?"+q.Encode(), h)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func joinUpper(s []string) string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ",")
}
