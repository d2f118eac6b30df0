package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/condyl/ruby/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type AccountRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewAccountRepository(sqlDB *sql.DB, logger zerolog.Logger) *AccountRepository {
	return &AccountRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// GetByDiscordUserID looks up the linked Riot account for a Discord user.
// Returns domain.ErrAccountNotFound when no row exists.
func (r *AccountRepository) GetByDiscordUserID(ctx context.Context, discordUserID string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, discord_user_id, puuid, region, riot_name, riot_tag, created_at, updated_at
		FROM accounts
		WHERE discord_user_id = ?`, discordUserID)

	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.DiscordUserID,
		&account.Puuid,
		&account.Region,
		&account.RiotName,
		&account.RiotTag,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("discord_user_id", discordUserID).Msg("account not found")
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("discord_user_id", discordUserID).Msg("failed to get account")
		return nil, fmt.Errorf("%w: %w", domain.ErrAccountStore, err)
	}

	return &account, nil
}

// Upsert stores or replaces the linked account for a Discord user.
func (r *AccountRepository) Upsert(ctx context.Context, account *domain.Account) error {
	id := account.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	now := time.Now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, discord_user_id, puuid, region, riot_name, riot_tag, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (discord_user_id) DO UPDATE SET
			puuid = excluded.puuid,
			region = excluded.region,
			riot_name = excluded.riot_name,
			riot_tag = excluded.riot_tag,
			updated_at = excluded.updated_at`,
		id, account.DiscordUserID, account.Puuid, account.Region,
		account.RiotName, account.RiotTag, now, now)
	if err != nil {
		r.logger.Error().Err(err).Str("discord_user_id", account.DiscordUserID).Msg("failed to upsert account")
		return fmt.Errorf("%w: %w", domain.ErrAccountStore, err)
	}

	r.logger.Debug().
		Str("discord_user_id", account.DiscordUserID).
		Str("riot_id", account.RiotID()).
		Msg("account upserted")
	return nil
}

// Delete unlinks a Discord user. Returns domain.ErrAccountNotFound when
// there was nothing to delete.
func (r *AccountRepository) Delete(ctx context.Context, discordUserID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE discord_user_id = ?`, discordUserID)
	if err != nil {
		r.logger.Error().Err(err).Str("discord_user_id", discordUserID).Msg("failed to delete account")
		return fmt.Errorf("%w: %w", domain.ErrAccountStore, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAccountStore, err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	r.logger.Debug().Str("discord_user_id", discordUserID).Msg("account deleted")
	return nil
}
