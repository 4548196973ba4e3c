package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"papertrail/internal/bill"
	billhandler "papertrail/internal/bill/handler"
	donationhandler "papertrail/internal/donation/handler"
	donationmetrics "papertrail/internal/donation/metrics"
	donationservice "papertrail/internal/donation/service"
	donationstore "papertrail/internal/donation/store"
	"papertrail/internal/donor"
	donorhandler "papertrail/internal/donor/handler"
	"papertrail/internal/platform/config"
	"papertrail/internal/platform/httpserver"
	"papertrail/internal/platform/logger"
	"papertrail/internal/platform/metrics"
	"papertrail/internal/platform/postgres"
	"papertrail/internal/politician"
	politicianhandler "papertrail/internal/politician/handler"
	httptransport "papertrail/internal/transport/http"
	votehandler "papertrail/internal/vote/handler"
	votemetrics "papertrail/internal/vote/metrics"
	voteservice "papertrail/internal/vote/service"
	votestore "papertrail/internal/vote/store"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the domain packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Server.Development)
	slog.SetDefault(log)
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	m := metrics.New()
	router, err := buildRouter(cfg, log, m, db)
	if err != nil {
		return err
	}
	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting papertrail", "addr", cfg.Server.Addr, "development", cfg.Server.Development)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func buildRouter(cfg config.Config, log *slog.Logger, m *metrics.Metrics, db *sql.DB) (http.Handler, error) {
	donations, err := donationservice.New(donationstore.NewPostgres(db, m),
		donationservice.WithMetrics(donationmetrics.New()))
	if err != nil {
		return nil, err
	}
	votes, err := voteservice.New(votestore.NewPostgres(db, m),
		voteservice.WithLogger(log),
		voteservice.WithMetrics(votemetrics.New()))
	if err != nil {
		return nil, err
	}
	politicians, err := politician.NewService(politician.NewPostgres(db, m))
	if err != nil {
		return nil, err
	}
	donors, err := donor.NewService(donor.NewPostgres(db, m))
	if err != nil {
		return nil, err
	}
	bills, err := bill.NewService(bill.NewPostgres(db, m))
	if err != nil {
		return nil, err
	}

	return httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        m,
		RequestTimeout: cfg.Server.RequestTimeout,
		Development:    cfg.Server.Development,
		Health: func(ctx context.Context) error {
			return postgres.Health(ctx, db)
		},
	},
		donationhandler.New(donations, log),
		votehandler.New(votes, log),
		politicianhandler.New(politicians, log),
		donorhandler.New(donors, log),
		billhandler.New(bills, log),
	), nil
}
