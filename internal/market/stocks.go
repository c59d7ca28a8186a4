package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// DefaultSymbols are quoted when no symbols are requested.
var DefaultSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META"}

// Stock is an equity quote.
type Stock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     float64 `json:"marketCap"`
	Volume        float64 `json:"volume"`
	Currency      string  `json:"currency"`
}

// Stocks returns quotes of symbols.
func (c *Client) Stocks(ctx context.Context, symbols []string) ([]Stock, error) {
	list := joinUpper(symbols)
	if list == "" {
		list = joinUpper(DefaultSymbols)
	}

	h := http.Header{}
	h.Set("User-Agent", "Mozilla/5.0")

	data, err := c.get(ctx, "yahoo", c.cfg.YahooURL+"/v7/finance/quote?"+url.Values{"symbols": []string{list}}.Encode(), h)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes: %w", err)
	}

	items := gjson.GetBytes(data, "quoteResponse.result").Array()
	out := make([]Stock, 0, len(items))
	for _, v := range items {
		name := v.Get("longName").String()
		if name == "" {
			name = v.Get("shortName").String()
		}

		out = append(out, Stock{
			Symbol:        v.Get("symbol").String(),
			Name:          name,
			Price:         v.Get("regularMarketPrice").Float(),
			Change:        v.Get("regularMarketChange").Float(),
			ChangePercent: v.Get("regularMarketChangePercent").Float(),
			MarketCap:     v.Get("marketCap").Float(),
			Volume:        v.Get("regularMarketVolume").Float(),
			Currency:      v.Get("currency").String(),
		})
	}

	return out, nil
}
