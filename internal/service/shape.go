package service

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/condyl/ruby/internal/api"
	"github.com/condyl/ruby/internal/constants"
	"github.com/condyl/ruby/internal/content"
	"github.com/condyl/ruby/internal/domain"
)

// derivePlayers builds one PlayerView per participant, in source order, and
// returns the index of the author's own view. The author must appear in the
// participant list; a linked account that played no part in the match is a
// precondition failure, not a renderable state.
func derivePlayers(match *api.Match, account *domain.Account, tables *content.Content) ([]domain.PlayerView, int, error) {
	teamMode := match.Metadata.Mode != constants.GamemodeDeathmatch

	players := make([]domain.PlayerView, 0, len(match.Players.AllPlayers))
	parties := make([]string, 0, len(match.Players.AllPlayers))
	authorIdx := -1

	for _, p := range match.Players.AllPlayers {
		view := domain.PlayerView{
			Name:       p.Name,
			Tag:        p.Tag,
			Puuid:      p.Puuid,
			Region:     match.Metadata.Region,
			TrackerURL: trackerProfileURL(p.Name, p.Tag),
			IsAuthor:   p.Name == account.RiotName && p.Tag == account.RiotTag,
			Kills:      p.Stats.Kills,
			Deaths:     p.Stats.Deaths,
			Assists:    p.Stats.Assists,
			Score:      p.Stats.Score,
			ACS:        averageCombatScore(p.Stats.Score, match.Metadata.RoundsPlayed),
		}
		view.Hot = view.ACS >= constants.HotACSThreshold

		if teamMode {
			view.Team = p.Team
		}

		view.PartyEmoji = tables.PartyEmoji(partyIndex(&parties, p.PartyID))
		view.Shots = domain.Shots{
			Head:  p.Stats.Headshots,
			Body:  p.Stats.Bodyshots,
			Leg:   p.Stats.Legshots,
			Total: p.Stats.Headshots + p.Stats.Bodyshots + p.Stats.Legshots,
		}
		view.HeadshotPercent = headshotPercent(view.Shots)

		rank, err := tables.RankByTier(p.CurrentTier)
		if err != nil {
			return nil, -1, err
		}
		view.Rank = rank

		agent, err := tables.AgentByName(p.Character)
		if err != nil {
			return nil, -1, err
		}
		view.Agent = agent

		if view.IsAuthor {
			authorIdx = len(players)
		}
		players = append(players, view)
	}

	if authorIdx < 0 {
		return nil, -1, fmt.Errorf("%w: %s", domain.ErrAuthorNotFound, account.RiotID())
	}
	return players, authorIdx, nil
}

// averageCombatScore is the per-round combat score, rounded half away from
// zero like the scoreboard shows it.
func averageCombatScore(score, roundsPlayed int) int {
	if roundsPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(roundsPlayed)))
}

// headshotPercent reports 0 for a participant with no recorded shots rather
// than a non-finite value.
func headshotPercent(shots domain.Shots) float64 {
	if shots.Total == 0 {
		return 0
	}
	return float64(shots.Head) / float64(shots.Total) * 100
}

// partyIndex returns the position of partyID in the first-appearance order of
// distinct parties, growing the order as new parties are seen.
func partyIndex(parties *[]string, partyID string) int {
	for i, id := range *parties {
		if id == partyID {
			return i
		}
	}
	*parties = append(*parties, partyID)
	return len(*parties) - 1
}

func trackerProfileURL(name, tag string) string {
	return fmt.Sprintf("https://tracker.gg/valorant/profile/riot/%s%%23%s/overview",
		url.PathEscape(name), url.PathEscape(tag))
}

// partitionTeams splits players into the author's side and the enemy side by
// case-insensitive team label, each sorted descending by ACS.
func partitionTeams(players []domain.PlayerView, authorTeam string) (team, enemy []domain.PlayerView) {
	for _, p := range players {
		if strings.EqualFold(p.Team, authorTeam) {
			team = append(team, p)
		} else {
			enemy = append(enemy, p)
		}
	}
	sortByACS(team)
	sortByACS(enemy)
	return team, enemy
}

func sortByACS(players []domain.PlayerView) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].ACS > players[j].ACS
	})
}

// deathmatchColumns splits the flat sorted scoreboard into two display
// columns. Lobbies smaller than a full column yield a single column; the
// second takes whatever remains.
func deathmatchColumns(players []domain.PlayerView) [][]domain.PlayerView {
	if len(players) <= constants.DeathmatchColumnSize {
		return [][]domain.PlayerView{players}
	}
	return [][]domain.PlayerView{
		players[:constants.DeathmatchColumnSize],
		players[constants.DeathmatchColumnSize:],
	}
}

// teamOutcome derives the result and the team/enemy round counters from the
// red/blue labeling, mapped by the author's side.
func teamOutcome(teams api.MatchTeams, authorTeam string) (domain.Outcome, int, int) {
	teamScore := teams.Blue.RoundsWon
	enemyScore := teams.Red.RoundsWon
	if strings.EqualFold(authorTeam, "red") {
		teamScore, enemyScore = teams.Red.RoundsWon, teams.Blue.RoundsWon
	}

	switch {
	case teamScore > enemyScore:
		return domain.OutcomeVictory, teamScore, enemyScore
	case enemyScore > teamScore:
		return domain.OutcomeDefeat, teamScore, enemyScore
	default:
		return domain.OutcomeDraw, teamScore, enemyScore
	}
}

// deathmatchOutcome is Victory only for the top of the sorted scoreboard.
// Deathmatch has no draw.
func deathmatchOutcome(sorted []domain.PlayerView) domain.Outcome {
	if len(sorted) > 0 && sorted[0].IsAuthor {
		return domain.OutcomeVictory
	}
	return domain.OutcomeDefeat
}
