package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holdem-dealer/internal/config"
	"holdem-dealer/internal/logging"
	"holdem-dealer/internal/store"
	"holdem-dealer/internal/table"
	httptransport "holdem-dealer/internal/transport/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)
	defer logging.Close()

	var st *store.Store
	if cfg.Server.PostgresDSN != "" {
		st, err = store.New(cfg.Server.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("store init failed")
		}
		defer st.Close()
		if err := st.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("db ping failed")
		}
	} else {
		log.Warn().Msg("POSTGRES_DSN not set; move journal disabled")
	}

	r := newRouter(cfg, st)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.HTTPAddr).Int64("small_blind", cfg.Table.SmallBlind).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return
	}
	log.Info().Msg("server stopped")
}

// newRouter wires the table manager to the transport. st may be nil.
func newRouter(cfg config.AppConfig, st *store.Store) *chi.Mux {
	deps := httptransport.Deps{
		Server:    cfg.Server,
		AccessLog: cfg.Log.AccessLog,
	}
	if st != nil {
		deps.Tables = table.NewManager(cfg.Table, st)
		deps.Journal = st
		deps.DB = st
	} else {
		deps.Tables = table.NewManager(cfg.Table, nil)
	}
	return httptransport.NewRouter(deps)
}
