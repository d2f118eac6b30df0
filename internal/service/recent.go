package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/condyl/ruby/internal/api"
	"github.com/condyl/ruby/internal/constants"
	"github.com/condyl/ruby/internal/content"
	"github.com/condyl/ruby/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type accountStore interface {
	GetByDiscordUserID(ctx context.Context, discordUserID string) (*domain.Account, error)
}

type matchProvider interface {
	GetRecentMatch(ctx context.Context, region, puuid string) (*api.MatchesResponse, error)
	GetLifetimeMMRHistory(ctx context.Context, region, name, tag string) (*api.MMRHistoryResponse, error)
}

type mapCatalog interface {
	GetMaps(ctx context.Context) (*api.MapsResponse, error)
}

// RecentMatchService runs the /recent pipeline: resolve the linked account,
// fetch the most recent match, shape it, and enrich it with ranked progress
// and map art.
type RecentMatchService struct {
	accounts accountStore
	hdev     matchProvider
	maps     mapCatalog
	tables   *content.Content
	logger   zerolog.Logger
}

func NewRecentMatchService(accounts accountStore, hdev matchProvider, maps mapCatalog, tables *content.Content, logger zerolog.Logger) *RecentMatchService {
	return &RecentMatchService{accounts: accounts, hdev: hdev, maps: maps, tables: tables, logger: logger}
}

// RecentMatch builds the full report for the invoking Discord user. Errors
// carry the domain sentinels so the command layer can pick the right reply.
func (s *RecentMatchService) RecentMatch(ctx context.Context, discordUserID string) (*domain.RecentMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	logger := requestLogger(ctx, s.logger)

	account, err := s.lookupAccount(ctx, discordUserID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("discord_user_id", discordUserID).
		Str("riot_id", account.RiotID()).
		Str("region", account.Region).
		Msg("fetching recent match")

	match, err := s.fetchRecentMatch(ctx, account)
	if err != nil {
		return nil, err
	}

	players, authorIdx, err := derivePlayers(match, account, s.tables)
	if err != nil {
		logger.Error().Err(err).Str("match_id", match.Metadata.MatchID).Msg("failed to shape players")
		return nil, err
	}
	author := players[authorIdx]

	result := &domain.RecentMatch{
		Match: domain.MatchView{
			ID:        match.Metadata.MatchID,
			Gamemode:  match.Metadata.Mode,
			StartedAt: match.Metadata.GameStart,
			Length:    match.Metadata.GameLength,
		},
		Author: &author,
	}

	if match.Metadata.Mode != constants.GamemodeDeathmatch {
		result.Team, result.Enemy = partitionTeams(players, author.Team)
		result.Match.Outcome, result.Match.TeamScore, result.Match.EnemyScore = teamOutcome(match.Teams, author.Team)
	} else {
		sorted := make([]domain.PlayerView, len(players))
		copy(sorted, players)
		sortByACS(sorted)
		result.Columns = deathmatchColumns(sorted)
		result.Match.Outcome = deathmatchOutcome(sorted)
	}

	mapEntry, mmr, err := s.enrich(ctx, match, account)
	if err != nil {
		return nil, err
	}
	result.Match.Map = mapEntry.DisplayName
	result.Match.MapImage = mapEntry.ListViewIcon
	result.MMR = mmr

	logger.Info().
		Str("match_id", result.Match.ID).
		Str("gamemode", result.Match.Gamemode).
		Str("outcome", string(result.Match.Outcome)).
		Msg("recent match shaped")
	return result, nil
}

func (s *RecentMatchService) lookupAccount(ctx context.Context, discordUserID string) (*domain.Account, error) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	logger := requestLogger(ctx, s.logger)

	account, err := s.accounts.GetByDiscordUserID(dbCtx, discordUserID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			logger.Info().Str("discord_user_id", discordUserID).Msg("user not logged in")
			return nil, err
		}
		logger.Error().Err(err).Str("discord_user_id", discordUserID).Msg("account lookup failed")
		return nil, err
	}
	return account, nil
}

// fetchRecentMatch is the single call whose failure means "retry later"
// instead of "log in": transport errors, timeouts, non-200 answers and error
// statuses embedded in the body all collapse into ErrProviderUnavailable.
func (s *RecentMatchService) fetchRecentMatch(ctx context.Context, account *domain.Account) (*api.Match, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	logger := requestLogger(ctx, s.logger)

	resp, err := s.hdev.GetRecentMatch(apiCtx, account.Region, account.Puuid)
	if err != nil {
		logger.Error().Err(err).Str("puuid", account.Puuid).Msg("failed to fetch recent match")
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	if resp.Status != 0 && resp.Status != 200 {
		logger.Error().Int("status", resp.Status).Str("puuid", account.Puuid).Msg("provider returned error status")
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.Status)
	}
	if len(resp.Data) == 0 {
		logger.Error().Str("puuid", account.Puuid).Msg("provider returned no matches")
		return nil, fmt.Errorf("%w: empty match list", domain.ErrProviderUnavailable)
	}

	return &resp.Data[0], nil
}

// enrich resolves the map catalog entry and, for competitive matches, the
// ranked progress line. The two fetches are independent and run together. A
// missing map entry aborts the reply; a failed rank-history fetch only drops
// the MMR line.
func (s *RecentMatchService) enrich(ctx context.Context, match *api.Match, account *domain.Account) (*api.MapData, *domain.MMRView, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	logger := requestLogger(ctx, s.logger)

	g, gCtx := errgroup.WithContext(apiCtx)
	var mapsResp *api.MapsResponse
	var mmr *domain.MMRView

	g.Go(func() error {
		var err error
		mapsResp, err = s.maps.GetMaps(gCtx)
		return err
	})

	if match.Metadata.Mode == constants.GamemodeCompetitive {
		g.Go(func() error {
			history, err := s.hdev.GetLifetimeMMRHistory(gCtx, account.Region, account.RiotName, account.RiotTag)
			if err != nil || history == nil || len(history.Data) == 0 {
				logger.Warn().Err(err).Str("riot_id", account.RiotID()).Msg("rank history unavailable, omitting MMR line")
				return nil
			}
			mmr = &domain.MMRView{
				RankingInTier: history.Data[0].RankingInTier,
				LastChange:    history.Data[0].LastMmrChange,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("failed to fetch map catalog")
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	for i := range mapsResp.Data {
		if mapsResp.Data[i].DisplayName == match.Metadata.Map {
			return &mapsResp.Data[i], mmr, nil
		}
	}

	logger.Error().Str("map", match.Metadata.Map).Msg("map missing from catalog")
	return nil, nil, fmt.Errorf("%w: %q", domain.ErrMapNotFound, match.Metadata.Map)
}
