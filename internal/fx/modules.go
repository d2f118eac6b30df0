package fx

import (
	"database/sql"

	"github.com/condyl/ruby/internal/api"
	"github.com/condyl/ruby/internal/bot"
	"github.com/condyl/ruby/internal/config"
	"github.com/condyl/ruby/internal/content"
	"github.com/condyl/ruby/internal/database"
	"github.com/condyl/ruby/internal/logger"
	"github.com/condyl/ruby/internal/repository"
	"github.com/condyl/ruby/internal/server"
	"github.com/condyl/ruby/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideRecentMatchService(accounts *repository.AccountRepository, hdev *api.HDevClient, maps *api.ValAPIClient, tables *content.Content, log zerolog.Logger) *service.RecentMatchService {
	return service.NewRecentMatchService(accounts, hdev, maps, tables, log)
}

func ProvideAccountService(hdev *api.HDevClient, accounts *repository.AccountRepository, log zerolog.Logger) *service.AccountService {
	return service.NewAccountService(hdev, accounts, log)
}

func ProvideDB(cfg *config.Config, log zerolog.Logger) (*sql.DB, error) {
	return database.New(cfg, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(ProvideDB),
	fx.Provide(content.New),
	// repos
	fx.Provide(repository.NewAccountRepository),
	// api clients
	fx.Provide(api.NewHDevClient),
	fx.Provide(api.NewValAPIClient),
	// svc
	fx.Provide(ProvideRecentMatchService),
	fx.Provide(ProvideAccountService),
	// surfaces
	fx.Provide(bot.New),
	fx.Provide(server.NewHealthServer),
)
