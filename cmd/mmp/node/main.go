package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/mmp-backend/internal/metrics"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/bitcoin"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/chain"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/registry"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/repository/clickhouse"
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/service"
	"github.com/goodnatureofminers/mmp-backend/internal/transport"
)

type config struct {
	Network       model.Network `long:"network" env:"MMP_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"MMP_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"MMP_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"MMP_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"MMP_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	GRPCAddr      string        `long:"grpc-addr" env:"MMP_GRPC_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"MMP_REST_ADDR" description:"REST listen address" default:":8001"`
	ZMQAddr       string        `long:"zmq-addr" env:"MMP_ZMQ_ADDR" description:"bitcoind ZMQ publisher for hashblock/hashtx"`
	StartHeight   uint32        `long:"start-height" env:"MMP_START_HEIGHT" description:"first height to scan when nothing was persisted yet"`
	ScanChunk     uint32        `long:"scan-chunk" env:"MMP_SCAN_CHUNK" description:"heights scanned per watcher iteration" default:"500"`
	Workers       int           `long:"workers" env:"MMP_WORKERS" description:"parallel block fetches" default:"8"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("mmp node failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := cfg.Network.Params()
	if err != nil {
		return err
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := bitcoin.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Network))
	source := bitcoin.NewSource(rpc, logger)
	scanner := chain.NewScanner(source, cfg.Workers, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	transitions := service.NewTransitionBatcher(logger, repo)
	transitions.Start(ctx)
	defer transitions.Stop()

	contracts := registry.New(params, service.NewTransitionLog(logger, transitions), metrics.NewRegistry())
	jobs := service.NewJobService(contracts, scanner, source, params, logger)

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}
	watcher, err := service.NewWatcher(
		contracts,
		scanner,
		source,
		repo,
		metrics.NewWatcher(cfg.Network),
		service.WatcherConfig{
			Network:     cfg.Network,
			StartHeight: cfg.StartHeight,
			ChunkSize:   cfg.ScanChunk,
		},
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}

	if err := startGRPCServer(ctx, cfg.GRPCAddr, source, logger); err != nil {
		return err
	}
	if err := startRESTServer(ctx, cfg, jobs, logger); err != nil {
		return err
	}

	return watcher.Run(ctx)
}

func startGRPCServer(ctx context.Context, addr string, tip transport.ChainTip, logger *zap.Logger) error {
	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthpb.RegisterHealthServer(grpcServer, transport.NewHealthHandler(tip))
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		logger.Info("starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}

func startRESTServer(ctx context.Context, cfg config, jobs transport.JobService, logger *zap.Logger) error {
	conn, err := grpc.NewClient(cfg.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial grpc: %w", err)
	}

	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	if err := transport.NewJobsHandler(jobs, logger).Register(gw); err != nil {
		_ = conn.Close()
		return fmt.Errorf("register jobs handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", zap.Error(err))
		}
		_ = conn.Close()
	}()
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
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

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
