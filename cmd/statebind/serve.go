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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/statebind/internal/config"
	"github.com/vango-dev/statebind/internal/demo"
	"github.com/vango-dev/statebind/pkg/binder"
	"github.com/vango-dev/statebind/pkg/wsdom"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		tracing    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counter demo over WebSocket",
		Long: `Start an HTTP server that mounts the counter demo on every
WebSocket connection and exposes Prometheus metrics.

Examples:
  statebind serve
  statebind serve --config=statebind.json
  statebind serve --addr=0.0.0.0:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, addr, tracing)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to statebind.json (defaults when empty)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace dispatches with the global OpenTelemetry provider")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.New()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}

// newRouter builds the HTTP routes for cfg. Every WebSocket connection gets
// its own counter store and binder.
func newRouter(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry, opts ...binder.Option) http.Handler {
	metrics := binder.NewMetrics(reg)
	opts = append([]binder.Option{
		binder.WithTokenSource(cfg.TokenSource()),
		binder.WithTokenLength(cfg.Binder.TokenLength),
		binder.WithLogger(logger.With("component", "binder")),
		binder.WithMetrics(metrics),
	}, opts...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.MetricsEnabled() {
		r.Handle(cfg.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	r.Handle(cfg.Server.Path, wsdom.Handler(
		func(el *wsdom.Element) {
			demo.Mount(el, append([]binder.Option{binder.WithContext(el.Context())}, opts...)...)
		},
		wsdom.WithLogger(logger.With("component", "wsdom")),
		wsdom.WithUpgrader(websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		}),
	))

	return r
}

func runServe(ctx context.Context, cfg *config.Config, addr string, tracing bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if addr == "" {
		addr = cfg.Address()
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	var opts []binder.Option
	if tracing {
		opts = append(opts, binder.WithTracing())
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(cfg, logger, reg, opts...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	success("statebind listening on http://%s", addr)
	info("WebSocket: %s", cfg.Server.Path)
	if cfg.MetricsEnabled() {
		info("Metrics:   %s", cfg.Server.MetricsPath)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
