package market

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

const (
	// DefaultListingsLimit ...
	DefaultListingsLimit = 100
	// MaxListingsLimit ...
	MaxListingsLimit = 5000
)

// Coin is a crypto asset quote.
type Coin struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Slug              string  `json:"slug"`
	Rank              int64   `json:"rank"`
	Price             float64 `json:"price"`
	Change1h          float64 `json:"change1h"`
	Change24h         float64 `json:"change24h"`
	Change7d          float64 `json:"change7d"`
	MarketCap         float64 `json:"marketCap"`
	Volume24h         float64 `json:"volume24h"`
	CirculatingSupply float64 `json:"circulatingSupply"`
}

// CoinDetail is a coin with its description.
type CoinDetail struct {
	Coin
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Website     string   `json:"website"`
	Explorer    string   `json:"explorer"`
	Tags        []string `json:"tags"`
	MaxSupply   float64  `json:"maxSupply"`
	TotalSupply float64  `json:"totalSupply"`
}

func coin(v gjson.Result) Coin {
	usd := v.Get("quote.USD")
	return Coin{
		ID:                v.Get("id").Int(),
		Name:              v.Get("name").String(),
		Symbol:            v.Get("symbol").String(),
		Slug:              v.Get("slug").String(),
		Rank:              v.Get("cmc_rank").Int(),
		Price:             usd.Get("price").Float(),
		Change1h:          usd.Get("percent_change_1h").Float(),
		Change24h:         usd.Get("percent_change_24h").Float(),
		Change7d:          usd.Get("percent_change_7d").Float(),
		MarketCap:         usd.Get("market_cap").Float(),
		Volume24h:         usd.Get("volume_24h").Float(),
		CirculatingSupply: v.Get("circulating_supply").Float(),
	}
}

// Listings returns top coins by market cap.
func (c *Client) Listings(ctx context.Context, limit int) ([]Coin, error) {
	if limit <= 0 {
		limit = DefaultListingsLimit
	}
	if limit > MaxListingsLimit {
		limit = MaxListingsLimit
	}

	data, err := c.cmc(ctx, "/v1/cryptocurrency/listings/latest", url.Values{
		"start":   []string{"1"},
		"limit":   []string{itoa(limit)},
		"convert": []string{"USD"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	items := gjson.GetBytes(data, "data").Array()
	out := make([]Coin, 0, len(items))
	for _, v := range items {
		out = append(out, coin(v))
	}

	return out, nil
}

// Detail returns coin info merged with its latest quote.
func (c *Client) Detail(ctx context.Context, id int64) (*CoinDetail, error) {
	q := url.Values{"id": []string{strconv.FormatInt(id, 10)}}

	info, err := c.cmc(ctx, "/v2/cryptocurrency/info", q)
	if err != nil {
		return nil, fmt.Errorf("failed to get info: %w", err)
	}

	quotes, err := c.cmc(ctx, "/v2/cryptocurrency/quotes/latest", q)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes: %w", err)
	}

	key := "data." + strconv.FormatInt(id, 10)

	i := gjson.GetBytes(info, key)
	if !i.Exists() {
		return nil, fmt.Errorf("coin %d: %w", id, ErrNotFound)
	}

	qv := gjson.GetBytes(quotes, key)
	if qv.IsArray() {
		qv = qv.Get("0")
	}

	d := CoinDetail{
		Coin:        coin(qv),
		Description: i.Get("description").String(),
		Logo:        i.Get("logo").String(),
		Website:     i.Get("urls.website.0").String(),
		Explorer:    i.Get("urls.explorer.0").String(),
		MaxSupply:   qv.Get("max_supply").Float(),
		TotalSupply: qv.Get("total_supply").Float(),
		Tags:        []string{},
	}
	d.ID = id
	d.Name = i.Get("name").String()
	d.Symbol = i.Get("symbol").String()
	d.Slug = i.Get("slug").String()

	for _, t := range i.Get("tags").Array() {
		d.Tags = append(d.Tags, t.String())
	}

	return &d, nil
}
