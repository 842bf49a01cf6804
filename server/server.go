package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
	"github.com/rabinshresthaaa/CoverPage/service"
	"github.com/redis/go-redis/v9"
)

const (
	idleTimeout  = 120 * time.Second
	startTimeout = 10 * time.Second
)

// Server is the HTTP front end of the cover page generator.
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	redis      *redis.Client
}

// New builds the asset source, metrics registry and router for cfg.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	startCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()

	source, err := NewAssetSource(startCtx, cfg)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var rdb *redis.Client
	if cfg.RateLimit.Enabled && cfg.RateLimit.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
		})
		if err := rdb.Ping(startCtx).Err(); err != nil {
			slog.Warn("redis unreachable, rate limit checks will fail open until it recovers",
				"addr", cfg.RateLimit.RedisAddr, "error", err)
		}
	}

	router := NewRouter(cfg, Deps{Source: source, Redis: rdb, Gatherer: reg})

	return &Server{
		cfg:   cfg,
		redis: rdb,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
			IdleTimeout:  idleTimeout,
		},
	}, nil
}

// NewAssetSource returns the asset source selected by cfg.Assets.Source.
func NewAssetSource(ctx context.Context, cfg *config.Config) (service.AssetSource, error) {
	switch cfg.Assets.Source {
	case config.SourceMinio:
		source, err := service.NewMinioAssetSource(&cfg.Minio)
		if err != nil {
			return nil, err
		}
		if err := source.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		slog.Info("using minio asset source", "endpoint", cfg.Minio.Endpoint, "bucket", cfg.Minio.Bucket)
		return source, nil
	case config.SourceFile, "":
		slog.Info("using file asset source", "directory", cfg.Assets.Dir)
		return service.NewFileAssetSource(cfg.Assets.Dir), nil
	default:
		return nil, fmt.Errorf("%w: unknown assets.source %q", config.ErrInvalidConfig, cfg.Assets.Source)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves on ln (or the configured port when ln is nil) until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if ln != nil {
			slog.Info("server starting", "addr", ln.Addr().String())
			err = s.httpServer.Serve(ln)
		} else {
			slog.Info("server starting", "port", s.cfg.Server.Port)
			err = s.httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}

	slog.Info("server exited gracefully")
	return nil
}
