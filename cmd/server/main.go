package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/loofinder/internal/auth"
	"github.com/mmynk/loofinder/internal/config"
	"github.com/mmynk/loofinder/internal/geolocation"
	"github.com/mmynk/loofinder/internal/middleware"
	"github.com/mmynk/loofinder/internal/seed"
	"github.com/mmynk/loofinder/internal/service"
	"github.com/mmynk/loofinder/internal/session"
	"github.com/mmynk/loofinder/internal/storage"
	"github.com/mmynk/loofinder/internal/storage/memory"
	"github.com/mmynk/loofinder/internal/storage/redis"
	"github.com/mmynk/loofinder/internal/storage/sqlite"
	"github.com/mmynk/loofinder/internal/toilets"
	"github.com/mmynk/loofinder/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshot := openSnapshot(ctx, cfg)
	defer snapshot.Close()

	var locator geolocation.Locator = geolocation.Denied{}
	if pos := cfg.Location.Position; pos != nil {
		locator = geolocation.NewStatic(pos.Lat, pos.Lng)
	}

	sessions := session.New(ctx, snapshot, auth.NewMockAuthenticator())
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	store := toilets.New(toilets.WithLocateTimeout(cfg.Location.Timeout))
	store.Initialize(ctx, seed.Toilets(), locator)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	// OptionalAuth runs first so RPC logs carry the caller's user id
	interceptors := connect.WithInterceptors(
		middleware.OptionalAuth(jwtManager),
		metrics.Interceptor(),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	toiletPath, toiletHandler := service.NewToiletServiceHandler(
		service.NewToiletService(store, sessions, locator, cfg.Location.Timeout),
		jwtManager,
		interceptors,
	)
	mux.Handle(toiletPath, toiletHandler)

	sessionPath, sessionHandler := service.NewSessionServiceHandler(
		service.NewSessionService(sessions, jwtManager),
		interceptors,
	)
	mux.Handle(sessionPath, sessionHandler)

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", server.Addr, "url", "http://localhost"+server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// openSnapshot opens the configured session backend. A backend that cannot be
// opened falls back to memory so the server still starts, logged out.
func openSnapshot(ctx context.Context, cfg *config.Config) storage.Snapshot {
	var (
		snapshot storage.Snapshot
		err      error
	)
	switch cfg.Session.Backend {
	case config.BackendRedis:
		snapshot, err = redis.New(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   "loofinder:",
		})
	case config.BackendMemory:
		snapshot = memory.New()
	default:
		snapshot, err = sqlite.OpenOrReset(cfg.Session.DBPath)
	}

	if err != nil {
		slog.Warn("Session storage unavailable, sessions will not survive restarts",
			"backend", cfg.Session.Backend,
			"error", err,
		)
		return memory.New()
	}
	slog.Info("Session storage initialized", "backend", cfg.Session.Backend)
	return snapshot
}
