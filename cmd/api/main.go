package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"example.com/listnotes-api/internal/config"
	"example.com/listnotes-api/internal/logging"
	"example.com/listnotes-api/internal/metrics"
	"example.com/listnotes-api/internal/notes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(run).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return err
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if err := m.RegisterNotesGauge(func() float64 { return float64(store.Len()) }); err != nil {
		return fmt.Errorf("register notes gauge: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(cfg.CORSAllowedOrigins, log, m, notes.NewHandlers(store, log)),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Int("notes", store.Len()).Msg("notes API listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newStore(cfg config.Config) (*notes.Store, error) {
	gen := notes.RandomID
	var seed []notes.Note
	if cfg.SeedFile != "" {
		var err error
		if seed, err = notes.LoadSeedFile(cfg.SeedFile); err != nil {
			return nil, err
		}
	} else {
		seed = notes.DefaultSeed(gen)
	}

	store, err := notes.NewStore(gen, seed)
	if err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return store, nil
}

func newRouter(origins []string, log zerolog.Logger, m *metrics.Metrics, h *notes.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", m.Handler())
	r.Mount("/", h.Routes())
	return r
}
