package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dingocoin/nft-marketplace-backend/internal/metrics"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/dingocoin"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/protocol"
	redispub "github.com/dingocoin/nft-marketplace-backend/internal/nft/publisher/redis"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/repository/sqlite"
	"github.com/dingocoin/nft-marketplace-backend/internal/nft/service"
	"github.com/dingocoin/nft-marketplace-backend/internal/transport"
)

type config struct {
	SQLitePath       string        `long:"sqlite-path" env:"NFT_SQLITE_PATH" description:"path to the marketplace SQLite database" default:"nft.db"`
	RPCURL           string        `long:"rpc-url" env:"NFT_RPC_URL" description:"Dingocoin RPC URL" default:"http://127.0.0.1:34646"`
	RPCUser          string        `long:"rpc-user" env:"NFT_RPC_USER" description:"Dingocoin RPC username"`
	RPCPassword      string        `long:"rpc-password" env:"NFT_RPC_PASSWORD" description:"Dingocoin RPC password"`
	RedisAddr        string        `long:"redis-addr" env:"NFT_REDIS_ADDR" description:"Redis address for published state" default:"127.0.0.1:6379"`
	PlatformAddress  string        `long:"platform-address" env:"NFT_PLATFORM_ADDRESS" description:"platform fee address" required:"true"`
	AddressingSecret string        `long:"addressing-secret" env:"NFT_ADDRESSING_SECRET" description:"hex-encoded asset addressing secret" required:"true"`
	VinWorkers       int           `long:"vin-workers" env:"NFT_VIN_WORKERS" description:"concurrency for resolving transaction inputs" default:"16"`
	ListenAddr       string        `long:"listen-addr" env:"NFT_LISTEN_ADDR" description:"address for the marketplace API" default:":8080"`
	MetricsAddr      string        `long:"metrics-addr" env:"NFT_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	HTTPTimeout      time.Duration `long:"http-timeout" env:"NFT_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("nft marketplace failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	secret, err := hex.DecodeString(cfg.AddressingSecret)
	if err != nil {
		return fmt.Errorf("decode addressing secret: %w", err)
	}
	if !dingocoin.IsAddress(cfg.PlatformAddress) {
		return fmt.Errorf("invalid platform address %q", cfg.PlatformAddress)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := sqlite.NewRepository(cfg.SQLitePath, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("init dingocoin rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source := dingocoin.NewNodeSource(dingocoin.NewRPCClient(rpcClient, metrics.NewRPCClient()), cfg.VinWorkers)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	publisher := redispub.NewPublisher(redisClient, metrics.NewPublisher(), logger.Named("publisher"))
	publisher.Start(ctx)
	defer publisher.Stop()

	proto := protocol.New(cfg.PlatformAddress)
	serviceRepo := service.NewSqliteRepository(repo)

	indexer := service.NewIndexerService(
		serviceRepo,
		source,
		publisher,
		proto,
		metrics.NewIndexer(),
		logger.Named("indexer"),
	)
	market := service.NewMarketService(
		serviceRepo,
		source,
		publisher,
		proto,
		dingocoin.NewKeychain(secret),
		indexer,
		logger.Named("market"),
	)

	handler := transport.NewHandler(serviceRepo, market, indexer, logger.Named("transport"))
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           transport.NewRouter(handler),
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	indexerErr := make(chan error, 1)
	go func() {
		indexerErr <- indexer.Run(ctx)
	}()
	go func() {
		logger.Info("starting marketplace API", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("marketplace API failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown marketplace API", zap.Error(err))
		}
	}()

	if err := <-indexerErr; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("indexer: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string, timeout time.Duration) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(cfg, nil)
}
