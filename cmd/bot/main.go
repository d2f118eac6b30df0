package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/condyl/ruby/internal/bot"
	"github.com/condyl/ruby/internal/config"
	"github.com/condyl/ruby/internal/constants"
	fxmodules "github.com/condyl/ruby/internal/fx"
	"github.com/condyl/ruby/internal/server"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runBot),
	).Run()
}

func runBot(
	lc fx.Lifecycle,
	b *bot.Bot,
	health *server.HealthServer,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	srv := health.HTTPServer(cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := b.Start(ctx); err != nil {
				return err
			}

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("health server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("health server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := b.Stop(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("error closing discord session")
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("health server shutdown failed")
				return err
			}
			logger.Info().Msg("stopped gracefully")
			return nil
		},
	})
}
