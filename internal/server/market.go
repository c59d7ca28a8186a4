package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/market"
)

func (s server) getListings(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /api/market Market GetListings
	//
	// Returns latest crypto listings.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   type: integer
	//   default: 100
	// responses:
	//   '200':
	//     description: Coins ordered by rank
	//   '500':
	//     description: provider is not configured
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '502':
	//     description: provider failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	limit := market.DefaultListingsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 || l > market.MaxListingsLimit {
			api.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = l
	}

	coins, err := s.Market.Listings(r.Context(), limit)
	if err != nil {
		writeMarketError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, coins)
}

func (s server) getCoinDetail(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /api/market/detail Market GetCoinDetail
	//
	// Returns coin info and quote.
	//
	// ---
	// parameters:
	// - name: id
	//   in: query
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     description: Coin detail
	//   '400':
	//     description: missing or invalid id
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: unknown coin
	//     schema:
	//       "$ref": "#/definitions/Error"

	v := r.URL.Query().Get("id")
	if v == "" {
		api.WriteError(w, http.StatusBadRequest, "id is required")
		return
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := s.Market.Detail(r.Context(), id)
	if err != nil {
		writeMarketError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, d)
}

func (s server) getChart(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /api/market/chart Market GetChart
	//
	// Returns historical prices, empty list on any failure.
	//
	// ---
	// parameters:
	// - name: slug
	//   in: query
	//   required: true
	//   type: string
	// - name: days
	//   in: query
	//   type: integer
	//   default: 7
	// responses:
	//   '200':
	//     description: Price points

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		days = market.DefaultChartDays
	}

	points, err := s.Market.Chart(r.Context(), r.URL.Query().Get("slug"), days)
	if err != nil {
		log.WithError(err).Warn("failed to get chart")
		points = nil
	}
	if points == nil {
		points = []market.Point{}
	}

	api.WriteOK(w, http.StatusOK, points)
}

func (s server) getStocks(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /api/market/stocks Market GetStocks
	//
	// Returns stock quotes.
	//
	// ---
	// parameters:
	// - name: symbols
	//   in: query
	//   type: string
	//   description: comma separated symbols
	// responses:
	//   '200':
	//     description: Stock quotes
	//   '502':
	//     description: provider failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	var symbols []string
	for _, v := range strings.Split(r.URL.Query().Get("symbols"), ",") {
		if v = strings.TrimSpace(v); v != "" {
			symbols = append(symbols, v)
		}
	}

	stocks, err := s.Market.Stocks(r.Context(), symbols)
	if err != nil {
		writeMarketError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, stocks)
}

func writeMarketError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, market.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, market.ErrNotConfigured):
		log.WithError(err).Error("market request rejected")
		api.WriteError(w, http.StatusInternalServerError, "market provider is not configured")
	default:
		log.WithError(err).Error("market request failed")
		api.WriteError(w, http.StatusBadGateway, "failed to fetch market data")
	}
}
