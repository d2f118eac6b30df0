package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/condyl/ruby/internal/api"
	"github.com/condyl/ruby/internal/constants"
	"github.com/condyl/ruby/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type accountWriter interface {
	Upsert(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, discordUserID string) error
}

type accountProvider interface {
	GetAccount(ctx context.Context, name, tag string) (*api.AccountResponse, error)
}

// AccountService handles /login and /logout: verifying a riot id upstream
// and maintaining the Discord-to-Riot link in the local store.
type AccountService struct {
	hdev   accountProvider
	store  accountWriter
	logger zerolog.Logger
}

func NewAccountService(hdev accountProvider, store accountWriter, logger zerolog.Logger) *AccountService {
	return &AccountService{hdev: hdev, store: store, logger: logger}
}

// Login verifies name#tag against the provider and links it to the Discord
// user, replacing any previous link.
func (s *AccountService) Login(ctx context.Context, discordUserID, name, tag string) (*domain.Account, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	logger := requestLogger(ctx, s.logger)

	resp, err := s.hdev.GetAccount(apiCtx, name, tag)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == fasthttp.StatusNotFound {
			logger.Info().Str("name", name).Str("tag", tag).Msg("riot account not found")
			return nil, fmt.Errorf("%w: %s#%s", domain.ErrRiotAccountNotFound, name, tag)
		}
		logger.Error().Err(err).Str("name", name).Str("tag", tag).Msg("failed to verify riot account")
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	account := &domain.Account{
		DiscordUserID: discordUserID,
		Puuid:         resp.Data.Puuid,
		Region:        resp.Data.Region,
		RiotName:      resp.Data.Name,
		RiotTag:       resp.Data.Tag,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer dbCancel()

	if err := s.store.Upsert(dbCtx, account); err != nil {
		return nil, err
	}

	logger.Info().
		Str("discord_user_id", discordUserID).
		Str("riot_id", account.RiotID()).
		Str("region", account.Region).
		Msg("account linked")
	return account, nil
}

// Logout removes the caller's link. ErrAccountNotFound when none existed.
func (s *AccountService) Logout(ctx context.Context, discordUserID string) error {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.store.Delete(dbCtx, discordUserID); err != nil {
		return err
	}

	logger := requestLogger(ctx, s.logger)
	logger.Info().Str("discord_user_id", discordUserID).Msg("account unlinked")
	return nil
}
