// Package server Social gateway
//
// The gateway provides access to the social contract (profiles, posts, groups, messages),
// ipfs uploads, market data and live stream stats.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/ipfs"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/livestats"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/market"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/metrics"
	mm "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/middleware"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
)

var log = logrus.WithField("layer", "server").WithField("package", "server")

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const (
	maxBodySize   = 64 << 10
	listCacheTTL  = 10 * time.Second
	uploadTimeout = 2 * time.Minute
)

// ProfileCache returns profiles of several addresses, absent profiles are omitted.
type ProfileCache interface {
	Profiles(ctx context.Context, addrs ...common.Address) (map[common.Address]*entities.Profile, error)
}

// Uploader pins content to ipfs.
type Uploader interface {
	UploadFile(ctx context.Context, name string, r io.Reader, size int64, metadata map[string]string) (*ipfs.Upload, error)
	UploadJSON(ctx context.Context, name string, v interface{}) (*ipfs.Upload, error)
}

// Market returns quotes.
type Market interface {
	Listings(ctx context.Context, limit int) ([]market.Coin, error)
	Detail(ctx context.Context, id int64) (*market.CoinDetail, error)
	Chart(ctx context.Context, slug string, days int) ([]market.Point, error)
	Stocks(ctx context.Context, symbols []string) ([]market.Stock, error)
}

// Dependencies of handlers.
type Dependencies struct {
	Service  service.Service
	Profiles ProfileCache
	Storage  storage.Storage
	Tracker  service.Tracker
	IPFS     Uploader
	Gateway  string
	Market   Market
	Live     livestats.Store
	LiveHub  http.Handler

	// WriteToken protects write routes with a bearer token if set.
	WriteToken string

	// WriteLimiter limits write and upload routes per client ip if set.
	WriteLimiter *mm.RateLimiter
}

type server struct {
	Dependencies
}

// SetupRouter setups handlers to chi router.
func SetupRouter(d Dependencies, r chi.Router, timeout time.Duration) {
	if d.Gateway == "" {
		d.Gateway = entities.DefaultIPFSGateway
	}

	r.Use(
		api.FileServerMiddleware("/docs", "static"),
		api.LoggerMiddleware,
		api.RequestIDMiddleware,
		metrics.Middleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RecovererMiddleware,
	)

	srv := server{Dependencies: d}

	// websocket and uploads live longer than ordinary requests
	if d.LiveHub != nil {
		r.Get("/api/live/ws", d.LiveHub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(api.TimeoutMiddleware(uploadTimeout), srv.limit)
		r.Post("/v1/ipfs/file", srv.uploadFile)
		r.With(api.BodyLimiterMiddleware(entities.MaxJSONUploadSize+maxBodySize)).
			Post("/v1/ipfs/json", srv.uploadJSON)
	})

	r.Group(func(r chi.Router) {
		r.Use(
			api.TimeoutMiddleware(timeout),
			api.BodyLimiterMiddleware(maxBodySize),
		)

		r.Route("/v1", func(r chi.Router) {
			r.Get("/users", mm.Cached(listCacheTTL, srv.listUsers))
			r.Get("/profiles/{address}", srv.getProfile)
			r.Get("/profiles/{address}/followers", srv.getFollowers)
			r.Get("/profiles/{address}/following", srv.getFollowing)
			r.Get("/profiles/{address}/following/{target}", srv.checkFollowing)
			r.Get("/profiles/{address}/posts", srv.getUserPosts)
			r.Get("/profiles/{address}/notifications", srv.listNotifications)
			r.Post("/profiles/{address}/notifications/read", srv.markNotificationsRead)
			r.Get("/profiles/{address}/activity", srv.listActivity)

			r.Get("/posts", srv.listPosts)
			r.Get("/posts/{id}", srv.getPost)
			r.Get("/posts/{id}/comments", srv.getComments)
			r.Get("/posts/{id}/likes/{address}", srv.checkLiked)

			r.Get("/groups", mm.Cached(listCacheTTL, srv.listGroups))
			r.Get("/groups/{id}", srv.getGroup)
			r.Get("/groups/{id}/messages", srv.getGroupMessages)
			r.Get("/messages/{a}/{b}", srv.getDirectMessages)

			r.Get("/admin/status", srv.getAdminStatus)
			r.Get("/validate/username", srv.validateUsername)

			r.Get("/tx/{hash}", srv.getTx)
			r.Post("/tx/errors", srv.parseTxError)

			r.With(srv.limit).Post("/tx", srv.trackTx)

			r.Group(func(r chi.Router) {
				r.Use(srv.limit, srv.authorize)
				srv.setupWrites(r)
			})
		})

		r.Route("/api", func(r chi.Router) {
			r.Get("/market", srv.getListings)
			r.Get("/market/detail", srv.getCoinDetail)
			r.Get("/market/chart", srv.getChart)
			r.Get("/market/stocks", srv.getStocks)

			r.Get("/live/stats", srv.getLiveStats)
			r.Post("/live/stats", srv.postLiveStats)
		})
	})
}

func (s server) limit(next http.Handler) http.Handler {
	if s.WriteLimiter == nil {
		return next
	}
	return s.WriteLimiter.Handler(next)
}

func (s server) authorize(next http.Handler) http.Handler {
	if s.WriteToken == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.WriteToken {
			api.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
