package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listings = `{"data":[{"id":1,"name":"Bitcoin","symbol":"BTC","slug":"bitcoin","cmc_rank":1,"circulating_supply":19000000,
"quote":{"USD":{"price":50000.5,"percent_change_1h":0.1,"percent_change_24h":-1.5,"percent_change_7d":3,"market_cap":950000000000,"volume_24h":30000000000}}}]}`

func newServer(t *testing.T, hits *int32) (*httptest.Server, *Client) {
	mux := http.NewServeMux()

	mux.HandleFunc("/cmc/v1/cryptocurrency/listings/latest", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "key", r.Header.Get("X-CMC_PRO_API_KEY"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(listings)) // nolint
	})
	mux.HandleFunc("/cmc/v2/cryptocurrency/info", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write([]byte(`{"data":{"1027":{"id":1027,"name":"Ethereum","symbol":"ETH","slug":"ethereum","description":"Smart contracts",` + // nolint
			`"logo":"https://logo/eth.png","tags":["pos","smart-contracts"],"urls":{"website":["https://ethereum.org"],"explorer":["https://etherscan.io"]}}}}`))
	})
	mux.HandleFunc("/cmc/v2/cryptocurrency/quotes/latest", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write([]byte(`{"data":{"1027":{"id":1027,"cmc_rank":2,"circulating_supply":120000000,"total_supply":120000000,` + // nolint
			`"quote":{"USD":{"price":3000,"percent_change_24h":2}}}}}`))
	})
	mux.HandleFunc("/gecko/coins/bitcoin/market_chart", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		w.Write([]byte(`{"prices":[[1700000000000,35000.1],[1700003600000,35100.2]]}`)) // nolint
	})
	mux.HandleFunc("/gecko/coins/binancecoin/market_chart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prices":[[1700000000000,250]]}`)) // nolint
	})
	mux.HandleFunc("/gecko/coins/pepe-token/market_chart", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/gecko/coins/pepe/market_chart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prices":[[1700000000000,0.000001]]}`)) // nolint
	})
	mux.HandleFunc("/gecko/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "pepe-token":
			w.Write([]byte(`{"coins":[{"id":"pepe","name":"Pepe","symbol":"PEPE"}]}`)) // nolint
		default:
			w.Write([]byte(`{"coins":[]}`)) // nolint
		}
	})
	mux.HandleFunc("/gecko/coins/missing/market_chart", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/yahoo/v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Equal(t, "AAPL,MSFT,GOOGL,AMZN,NVDA,TSLA,META", r.URL.Query().Get("symbols"))
		w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple","regularMarketPrice":190.5,` + // nolint
			`"regularMarketChange":1.5,"regularMarketChangePercent":0.8,"marketCap":3000000000000,"regularMarketVolume":50000000,"currency":"USD"}]}}`))
	})

	srv := httptest.NewServer(mux)

	return srv, New(Config{
		CoinMarketCapURL: srv.URL + "/cmc",
		CoinMarketCapKey: "key",
		CoinGeckoURL:     srv.URL + "/gecko",
		YahooURL:         srv.URL + "/yahoo",
		RPS:              1000,
		Burst:            1000,
		CacheTTL:         time.Minute,
	}, srv.Client())
}

func TestClient_Listings(t *testing.T) {
	var hits int32
	srv, c := newServer(t, &hits)
	defer srv.Close()

	coins, err := c.Listings(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, []Coin{{
		ID:                1,
		Name:              "Bitcoin",
		Symbol:            "BTC",
		Slug:              "bitcoin",
		Rank:              1,
		Price:             50000.5,
		Change1h:          0.1,
		Change24h:         -1.5,
		Change7d:          3,
		MarketCap:         950000000000,
		Volume24h:         30000000000,
		CirculatingSupply: 19000000,
	}}, coins)

	// cached
	_, err = c.Listings(context.Background(), 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestClient_Listings_NotConfigured(t *testing.T) {
	_, err := New(Config{}, nil).Listings(context.Background(), 10)
	require.True(t, errors.Is(err, ErrNotConfigured))
}

func TestClient_Detail(t *testing.T) {
	var hits int32
	srv, c := newServer(t, &hits)
	defer srv.Close()

	d, err := c.Detail(context.Background(), 1027)
	require.NoError(t, err)
	assert.EqualValues(t, 1027, d.ID)
	assert.Equal(t, "Ethereum", d.Name)
	assert.Equal(t, "ETH", d.Symbol)
	assert.EqualValues(t, 2, d.Rank)
	assert.Equal(t, 3000.0, d.Price)
	assert.Equal(t, "https://ethereum.org", d.Website)
	assert.Equal(t, []string{"pos", "smart-contracts"}, d.Tags)
}

func TestClient_Chart(t *testing.T) {
	var hits int32
	srv, c := newServer(t, &hits)
	defer srv.Close()

	points, err := c.Chart(context.Background(), "bitcoin", 0)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Time: 1700000000, Price: 35000.1}, {Time: 1700003600, Price: 35100.2}}, points)

	points, err = c.Chart(context.Background(), "BNB", 7)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Time: 1700000000, Price: 250}}, points)

	points, err = c.Chart(context.Background(), "pepe-token", 7)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Time: 1700000000, Price: 0.000001}}, points)

	_, err = c.Chart(context.Background(), "missing", 7)
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Chart(context.Background(), "", 7)
	require.Error(t, err)
}

func TestClient_Stocks(t *testing.T) {
	var hits int32
	srv, c := newServer(t, &hits)
	defer srv.Close()

	stocks, err := c.Stocks(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []Stock{{
		Symbol:        "AAPL",
		Name:          "Apple",
		Price:         190.5,
		Change:        1.5,
		ChangePercent: 0.8,
		MarketCap:     3000000000000,
		Volume:        50000000,
		Currency:      "USD",
	}}, stocks)
}

func TestClient_RateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[]}}`)) // nolint
	}))
	defer srv.Close()

	c := New(Config{YahooURL: srv.URL, RPS: 0.001, Burst: 1}, srv.Client())

	_, err := c.Stocks(context.Background(), []string{"AAPL"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Stocks(ctx, []string{"MSFT"})
	require.Error(t, err)
}
