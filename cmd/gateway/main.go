package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
	"github.com/go-redis/redis/v8"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/go-api/health"
	"github.com/Decentr-net/logrus/sentry"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain/ethereum"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/consumer/txwatch"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/ipfs"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/livestats"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/market"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/metrics"
	mm "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/middleware"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/readcache"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/server"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service/impl"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`
	WriteToken     string        `long:"http.write-token" env:"HTTP_WRITE_TOKEN" description:"bearer token required by write routes, writes are public if empty"`
	WriteRPS       float64       `long:"http.write-rps" env:"HTTP_WRITE_RPS" default:"1" description:"write and upload requests per second allowed per client ip"`
	WriteBurst     int           `long:"http.write-burst" env:"HTTP_WRITE_BURST" default:"5" description:"write and upload burst per client ip"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	RPC         string        `long:"chain.rpc" env:"NEXT_PUBLIC_RPC_URL" default:"http://localhost:8545" description:"ethereum json-rpc endpoint"`
	ChainID     int64         `long:"chain.id" env:"NEXT_PUBLIC_CHAIN_ID" default:"1337" description:"chain id used for signing"`
	Contract    string        `long:"chain.contract" env:"NEXT_PUBLIC_CONTRACT_ADDRESS" description:"social contract address"`
	PrivateKey  string        `long:"chain.private-key" env:"PRIVATE_KEY" description:"hex private key signing writes, gateway is read-only if empty"`
	CallTimeout time.Duration `long:"chain.timeout" env:"CHAIN_TIMEOUT" default:"15s" description:"timeout for requests to the node"`
	PostFee     string        `long:"fees.post" env:"POST_FEE" default:"100000000000000" description:"wei attached to createPost"`
	GroupFee    string        `long:"fees.group" env:"GROUP_FEE" default:"1000000000000000" description:"wei attached to createGroup"`

	TxPollInterval time.Duration `long:"tx.poll-interval" env:"TX_POLL_INTERVAL" default:"2s" description:"interval between receipt checks"`
	TxTimeout      time.Duration `long:"tx.timeout" env:"TX_TIMEOUT" default:"5m" description:"transactions not mined in time are marked as failed"`

	CacheSize        int           `long:"cache.size" env:"CACHE_SIZE" default:"10000" description:"profiles kept in read cache"`
	CacheTTL         time.Duration `long:"cache.ttl" env:"CACHE_TTL" default:"30s" description:"read cache ttl"`
	CacheConcurrency int64         `long:"cache.concurrency" env:"CACHE_CONCURRENCY" default:"8" description:"concurrent profile reads against the node"`

	PinataURL       string `long:"pinata.url" env:"PINATA_API_URL" default:"https://api.pinata.cloud" description:"pinata api url"`
	PinataJWT       string `long:"pinata.jwt" env:"PINATA_JWT" description:"pinata jwt"`
	PinataAPIKey    string `long:"pinata.api-key" env:"NEXT_PUBLIC_PINATA_API_KEY" description:"pinata api key"`
	PinataSecretKey string `long:"pinata.secret-key" env:"PINATA_SECRET_API_KEY" description:"pinata secret api key"`
	IPFSGateway     string `long:"ipfs.gateway" env:"NEXT_PUBLIC_PINATA_GATEWAY" default:"https://gateway.pinata.cloud/ipfs/" description:"ipfs gateway used to build content urls"`

	CoinMarketCapKey string        `long:"market.cmc-key" env:"COINMARKETCAP_API_KEY" description:"coinmarketcap api key"`
	MarketRPS        float64       `long:"market.rps" env:"MARKET_RPS" default:"5" description:"upstream market requests per second"`
	MarketCacheTTL   time.Duration `long:"market.cache-ttl" env:"MARKET_CACHE_TTL" default:"60s" description:"market responses cache ttl"`

	LiveStore string `long:"live.store" env:"LIVE_STORE" default:"file" description:"live stats store" choice:"file" choice:"redis"`
	LiveFile  string `long:"live.file" env:"LIVE_FILE" default:"data/live-stats.json" description:"live stats json file"`
	Redis     string `long:"redis" env:"REDIS" default:"localhost:6379" description:"redis address"`
	RedisKey  string `long:"redis.prefix" env:"REDIS_PREFIX" default:"live" description:"redis keys prefix"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Fatal("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Social Gateway"
	parser.LongDescription = "HTTP gateway to the social contract, ipfs, market data and live stream stats"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "gateway",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	checkConfig()

	db := mustGetDB()
	s := postgres.New(db)

	b := mustGetBackend()

	fees := mustGetFees()
	lookup := impl.New(b, nil, fees)
	cache := readcache.New(lookup, opts.CacheSize, opts.CacheTTL, opts.CacheConcurrency)
	watcher := txwatch.New(b, s, lookup, opts.TxPollInterval, opts.TxTimeout, txwatch.WithInvalidator(cache))
	srv := impl.New(b, watcher, fees)

	pingers := []health.Pinger{
		health.SubjectPinger("postgres", db.PingContext),
		b,
		watcher,
	}

	live, hub, livePinger := mustGetLiveStats()
	pingers = append(pingers, hub)
	if livePinger != nil {
		pingers = append(pingers, livePinger)
	}

	r := chi.NewMux()
	server.SetupRouter(server.Dependencies{
		Service:  srv,
		Profiles: cache,
		Storage:  s,
		Tracker:  watcher,
		IPFS: ipfs.New(ipfs.Config{
			APIURL:    opts.PinataURL,
			JWT:       opts.PinataJWT,
			APIKey:    opts.PinataAPIKey,
			SecretKey: opts.PinataSecretKey,
			Gateway:   opts.IPFSGateway,
		}, nil),
		Gateway: opts.IPFSGateway,
		Market: market.New(market.Config{
			CoinMarketCapKey: opts.CoinMarketCapKey,
			RPS:              opts.MarketRPS,
			CacheTTL:         opts.MarketCacheTTL,
		}, nil),
		Live:         live,
		LiveHub:      hub,
		WriteToken:   opts.WriteToken,
		WriteLimiter: mm.NewRateLimiter(opts.WriteRPS, opts.WriteBurst),
	}, r, opts.RequestTimeout)

	r.Get("/health", health.Handler(5*time.Second, pingers...))
	r.Handle("/metrics", metrics.Handler())

	httpSrv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return watcher.Run(ctx)
	})
	gr.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-gctx.Done():
		}

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown http server")
		}

		return errTerminated
	})

	logrus.WithFields(logrus.Fields{
		"address":   httpSrv.Addr,
		"contract":  opts.Contract,
		"read_only": opts.PrivateKey == "",
		"version":   health.GetVersion(),
	}).Info("gateway started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("gateway unexpectedly closed")
	}
}

// checkConfig warns about optional settings which disable parts of the gateway when empty.
func checkConfig() {
	for _, v := range []struct {
		empty bool
		msg   string
	}{
		{opts.Contract == "", "contract address is not set, contract calls will fail"},
		{opts.PrivateKey == "", "private key is not set, gateway is read-only"},
		{opts.PinataJWT == "" && (opts.PinataAPIKey == "" || opts.PinataSecretKey == ""), "pinata credentials are not set, ipfs uploads are disabled"},
		{opts.CoinMarketCapKey == "", "coinmarketcap key is not set, crypto listings are disabled"},
		{opts.PrivateKey != "" && opts.WriteToken == "", "write token is not set, writes signed by the gateway key are public"},
	} {
		if v.empty {
			logrus.Warn(v.msg)
		}
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func mustGetBackend() *ethereum.Backend {
	if opts.Contract != "" && !common.IsHexAddress(opts.Contract) {
		logrus.WithField("contract", opts.Contract).Fatal("invalid contract address")
	}

	b, err := ethereum.New(context.Background(), ethereum.Options{
		RPC:        opts.RPC,
		Contract:   common.HexToAddress(opts.Contract),
		ChainID:    opts.ChainID,
		PrivateKey: opts.PrivateKey,
		Timeout:    opts.CallTimeout,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create ethereum backend")
	}

	return b
}

func mustGetFees() impl.Fees {
	fees := impl.DefaultFees()

	for _, v := range []struct {
		name string
		s    string
		dst  **big.Int
	}{
		{name: "fees.post", s: opts.PostFee, dst: &fees.Post},
		{name: "fees.group", s: opts.GroupFee, dst: &fees.Group},
	} {
		wei, ok := new(big.Int).SetString(v.s, 10)
		if !ok || wei.Sign() < 0 {
			logrus.WithField(v.name, v.s).Fatal("invalid fee")
		}
		*v.dst = wei
	}

	return fees
}

func mustGetLiveStats() (livestats.Store, *livestats.Hub, health.Pinger) {
	var (
		store  livestats.Store
		pinger health.Pinger
	)

	switch opts.LiveStore {
	case "redis":
		rs := livestats.NewRedisStore(redis.NewClient(&redis.Options{Addr: opts.Redis}), opts.RedisKey)
		if _, err := rs.Ping(context.Background()); err != nil {
			logrus.WithError(err).Fatal("failed to ping redis")
		}
		store, pinger = rs, rs
	default:
		store = livestats.NewFileStore(opts.LiveFile)
	}

	hub := livestats.NewHub(store)

	return livestats.WithBroadcaster(store, hub), hub, pinger
}
