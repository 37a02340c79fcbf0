package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwrk-planet/rooms-api/config"
	"github.com/cwrk-planet/rooms-api/internal/cache"
	"github.com/cwrk-planet/rooms-api/internal/domain"
	"github.com/cwrk-planet/rooms-api/internal/postgres"
	"github.com/cwrk-planet/rooms-api/internal/service"
	"github.com/cwrk-planet/rooms-api/internal/sqlite"
	grpcx "github.com/cwrk-planet/rooms-api/internal/transport/grpc"
	httpx "github.com/cwrk-planet/rooms-api/internal/transport/http"
	"github.com/cwrk-planet/rooms-api/pkg/logger"

	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		Level:     logger.ParseLevel(cfg.Logging.Level),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting rooms-api",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version, "storage", cfg.Storage.Driver)

	ctx := context.Background()

	// --- storage ---
	rooms, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		slog.Error("open storage", "driver", cfg.Storage.Driver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- cache ---
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			// кеш необязателен: RoomCache сам уходит в хранилище при ошибках Redis
			slog.Warn("redis ping failed", "addr", cfg.Cache.Redis.Addr, "err", err)
		}
		rooms = cache.NewRoomCache(rooms, rdb, cache.Options{
			Key: cfg.Cache.Key,
			TTL: cfg.Cache.TTLOr(cache.DefaultTTL),
		})
	}

	// --- services ---
	roomSvc := service.NewRoomService(rooms)

	// --- HTTP ---
	handler := httpx.NewHandler(roomSvc)
	router := httpx.NewRouter(handler, httpx.RouterOptions{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Timeout:        cfg.HTTP.RequestTimeoutOr(30 * time.Second),
	})
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeoutOr(10 * time.Second),
		WriteTimeout: cfg.HTTP.WriteTimeoutOr(15 * time.Second),
		IdleTimeout:  cfg.HTTP.IdleTimeoutOr(60 * time.Second),
	}

	// --- gRPC ---
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerInterceptor(cfg.GRPC.CallTimeoutOr(grpcx.DefaultCallTimeout))),
		grpc.ChainStreamInterceptor(grpcx.StreamServerInterceptor()),
	)
	healthSrv := grpcx.Register(grpcServer, grpcx.NewServer(roomSvc))

	// --- run both servers ---
	errCh := make(chan error, 2)

	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if cfg.GRPC.Addr != "" {
		go func() {
			lis, err := net.Listen("tcp", cfg.GRPC.Addr)
			if err != nil {
				errCh <- err
				return
			}
			slog.Info("grpc listen", "addr", cfg.GRPC.Addr)
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- err
			}
		}()
	}

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeoutOr(10*time.Second))
	defer cancel()

	healthSrv.Shutdown()
	grpcServer.GracefulStop()
	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}

func openStore(ctx context.Context, cfg config.Storage) (domain.RoomLister, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRoomRepository(db), closeSQL(db), nil
	default:
		db, err := postgres.New(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetimeOr(0),
			MaxConnIdleTime: cfg.Postgres.MaxConnIdleTimeOr(0),
			ApplicationName: "rooms-api",
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRoomRepository(db.Pool), db.Close, nil
	}
}

func closeSQL(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			slog.Warn("close sqlite", "err", err)
		}
	}
}
