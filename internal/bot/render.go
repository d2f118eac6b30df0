package bot

import (
	"fmt"
	"strings"

	"github.com/condyl/ruby/internal/constants"
	"github.com/condyl/ruby/internal/domain"

	"github.com/bwmarrin/discordgo"
)

// Accent colors keyed by outcome.
const (
	colorVictory = 0x16E5B4
	colorDefeat  = 0xFF4655
	colorDraw    = 0xCBB765
)

// BuildRecentEmbed renders a shaped match into the reply embed. Pure; never
// fails on a well-formed view.
func BuildRecentEmbed(view *domain.RecentMatch) *discordgo.MessageEmbed {
	matchURL := "https://tracker.gg/valorant/match/" + view.Match.ID

	embed := &discordgo.MessageEmbed{
		Color: outcomeColor(view.Match.Outcome),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    "Tracker",
			IconURL: view.Author.Agent.Icon,
			URL:     matchURL,
		},
		Image: &discordgo.MessageEmbedImage{URL: view.Match.MapImage},
	}

	if view.Match.Gamemode != constants.GamemodeDeathmatch {
		embed.Title = fmt.Sprintf("%s | %d - %d", view.Match.Outcome, view.Match.TeamScore, view.Match.EnemyScore)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Your Team", Value: teamField(view.Team, view)},
			{Name: "Enemy Team", Value: teamField(view.Enemy, view)},
			{Name: "Player Stats", Value: playerStatsField(view.Author, matchURL)},
			{Name: "Match Info", Value: matchInfoField(&view.Match)},
		}
	} else {
		embed.Title = fmt.Sprintf("%s | %s", view.Match.Outcome, deathmatchScoreline(view))
		embed.Fields = deathmatchFields(view.Columns)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Match Info", Value: matchInfoField(&view.Match),
		})
	}

	return embed
}

func outcomeColor(outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeVictory:
		return colorVictory
	case domain.OutcomeDefeat:
		return colorDefeat
	default:
		return colorDraw
	}
}

// teamField renders one team's scoreboard. Rows after the first carry a
// zero-width-space separator so the field never opens with a blank line.
func teamField(players []domain.PlayerView, view *domain.RecentMatch) string {
	competitive := view.Match.Gamemode == constants.GamemodeCompetitive

	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, teamRow(&p, competitive, view.MMR))
	}
	return strings.Join(lines, "​\n")
}

func teamRow(p *domain.PlayerView, competitive bool, mmr *domain.MMRView) string {
	var b strings.Builder

	b.WriteString(p.PartyEmoji)
	b.WriteString(" ")
	if competitive {
		b.WriteString(p.Rank.Emoji)
		b.WriteString(" ")
	}
	b.WriteString(p.Agent.Emoji)
	b.WriteString(" ")

	if p.IsAuthor {
		b.WriteString("**")
	}
	fmt.Fprintf(&b, "[%s#%s](%s) [%d%s] - %d/%d/%d",
		p.Name, p.Tag, p.TrackerURL, p.ACS, hotMarker(p), p.Kills, p.Deaths, p.Assists)
	if p.IsAuthor {
		if competitive && mmr != nil {
			fmt.Fprintf(&b, "\n| %dRR %s %s %dRR",
				mmr.LastChange, p.Rank.Emoji, p.Rank.Name, mmr.RankingInTier)
		}
		b.WriteString("**")
	}

	return b.String()
}

func deathmatchFields(columns [][]domain.PlayerView) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(columns))
	for i, column := range columns {
		name := "Players"
		if i > 0 {
			name = "​"
		}

		lines := make([]string, 0, len(column))
		for _, p := range column {
			lines = append(lines, deathmatchRow(&p))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: strings.Join(lines, "\n"),
		})
	}
	return fields
}

func deathmatchRow(p *domain.PlayerView) string {
	bold := ""
	if p.IsAuthor {
		bold = "**"
	}
	return fmt.Sprintf("%s %s %s[%s#%s](%s) - %d/%d/%d%s",
		p.PartyEmoji, p.Agent.Emoji, bold, p.Name, p.Tag, p.TrackerURL,
		p.Kills, p.Deaths, p.Assists, bold)
}

// deathmatchScoreline compares the author's kills with the closest rival:
// the runner-up when the author won, the winner otherwise.
func deathmatchScoreline(view *domain.RecentMatch) string {
	var flat []domain.PlayerView
	for _, column := range view.Columns {
		flat = append(flat, column...)
	}
	if len(flat) < 2 {
		return fmt.Sprintf("%d", view.Author.Kills)
	}

	if view.Match.Outcome == domain.OutcomeVictory {
		return fmt.Sprintf("%d - %d", view.Author.Kills, flat[1].Kills)
	}
	return fmt.Sprintf("%d - %d", flat[0].Kills, view.Author.Kills)
}

func playerStatsField(author *domain.PlayerView, matchURL string) string {
	return fmt.Sprintf("Headshot %%: %.2f%%\nRank: %s %s\n[View Full Match History](%s)",
		author.HeadshotPercent, author.Rank.Emoji, author.Rank.Name, matchURL)
}

func matchInfoField(match *domain.MatchView) string {
	return fmt.Sprintf("Map: %s\nGame Start Time: <t:%d:F>\nGame Length: %s\nGamemode: %s",
		match.Map, match.StartedAt, formatGameLength(match.Length), match.Gamemode)
}

func hotMarker(p *domain.PlayerView) string {
	if p.Hot {
		return " 🔥"
	}
	return ""
}

// formatGameLength renders seconds as m:ss.
func formatGameLength(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
