package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpapi "github.com/tbourn/sejm-prints-backend/internal/http"
	"github.com/tbourn/sejm-prints-backend/internal/identity"
	"github.com/tbourn/sejm-prints-backend/internal/observability"
	"github.com/tbourn/sejm-prints-backend/internal/repo"
	"github.com/tbourn/sejm-prints-backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the prints and votes API until interrupted.

Votes and device identities are stored in the SQLite database at DB_PATH.
Vote changes are published to RabbitMQ when AMQP_ENABLED is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.OTEL, observability.BuildInfo{
		Version: version,
		Term:    cfg.Sejm.Term,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown")
		}
	}()

	db, closeDB, err := a.openDB()
	if err != nil {
		return err
	}
	defer closeDB()
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			return err
		}
	}

	pub, err := a.publisher()
	if err != nil {
		return err
	}
	defer func() { _ = pub.Close() }()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Deps{
		Prints:   a.printService(),
		Votes:    services.NewVoteService(db, cfg.Sejm.Term, pub),
		Identity: identity.NewKVProvider(repo.NewKVStore(db)),
	}, cfg)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Int("term", cfg.Sejm.Term).
			Bool("amqp", cfg.AMQP.Enabled).
			Bool("otel", cfg.OTEL.Enabled).
			Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
