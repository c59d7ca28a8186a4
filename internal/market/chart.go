package market

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultChartDays ...
	DefaultChartDays = 7
	// MaxChartDays ...
	MaxChartDays = 365
)

// slugs maps listing slugs to chart provider ids where they differ.
var slugs = map[string]string{
	"bnb":                  "binancecoin",
	"binance-coin":         "binancecoin",
	"xrp":                  "ripple",
	"polygon":              "matic-network",
	"avalanche":            "avalanche-2",
	"multi-collateral-dai": "dai",
	"polkadot-new":         "polkadot",
	"toncoin":              "the-open-network",
	"unus-sed-leo":         "leo-token",
	"near-protocol":        "near",
}

// Point is a price at a moment.
type Point struct {
	Time  int64   `json:"time"`
	Price float64 `json:"price"`
}

// Chart returns historical USD prices of coin identified by listing slug.
func (c *Client) Chart(ctx context.Context, slug string, days int) ([]Point, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("slug is required: %w", ErrNotFound)
	}
	if days <= 0 {
		days = DefaultChartDays
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	id, ok := slugs[slug]
	if !ok {
		id = slug
	}

	points, err := c.marketChart(ctx, id, days)
	if err == nil {
		return points, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	found, err := c.search(ctx, slug)
	if err != nil {
		return nil, err
	}
	if found == id {
		return nil, fmt.Errorf("coin %s: %w", slug, ErrNotFound)
	}

	log.WithField("slug", slug).WithField("id", found).Debug("chart id resolved by search")

	return c.marketChart(ctx, found, days)
}

func (c *Client) marketChart(ctx context.Context, id string, days int) ([]Point, error) {
	data, err := c.get(ctx, "coingecko",
		fmt.Sprintf("%s/coins/%s/market_chart?%s", c.cfg.CoinGeckoURL, url.PathEscape(id), url.Values{
			"vs_currency": []string{"usd"},
			"days":        []string{itoa(days)},
		}.Encode()), nil)
	if err != nil {
		return nil, err
	}

	prices := gjson.GetBytes(data, "prices").Array()
	out := make([]Point, 0, len(prices))
	for _, p := range prices {
		pair := p.Array()
		if len(pair) != 2 {
			continue
		}
		out = append(out, Point{
			Time:  time.UnixMilli(pair[0].Int()).Unix(),
			Price: pair[1].Float(),
		})
	}

	return out, nil
}

// search finds provider id by slug, symbol or name.
func (c *Client) search(ctx context.Context, query string) (string, error) {
	data, err := c.get(ctx, "coingecko", c.cfg.CoinGeckoURL+"/search?"+url.Values{"query": []string{query}}.Encode(), nil)
	if err != nil {
		return "", err
	}

	coins := gjson.GetBytes(data, "coins").Array()
	if len(coins) == 0 {
		return "", fmt.Errorf("coin %s: %w", query, ErrNotFound)
	}

	name := strings.ReplaceAll(query, "-", " ")
	for _, v := range coins {
		if strings.EqualFold(v.Get("symbol").String(), query) || strings.EqualFold(v.Get("name").String(), name) {
			return v.Get("id").String(), nil
		}
	}

	return coins[0].Get("id").String(), nil
}
