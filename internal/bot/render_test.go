package bot

import (
	"strings"
	"testing"

	"github.com/condyl/ruby/internal/domain"
)

func teamView() *domain.RecentMatch {
	author := domain.PlayerView{
		Name:            "Author",
		Tag:             "NA1",
		TrackerURL:      "https://tracker.gg/valorant/profile/riot/Author%23NA1/overview",
		IsAuthor:        true,
		Kills:           24,
		Deaths:          12,
		Assists:         6,
		ACS:             310,
		Hot:             true,
		Team:            "Red",
		PartyEmoji:      "🔵",
		HeadshotPercent: 50,
		Rank:            domain.Rank{ID: 14, Name: "Gold 3", Emoji: "<:gold_3:1>"},
		Agent:           domain.Agent{Name: "Jett", Emoji: "<:jett:2>", Icon: "https://example.test/jett.png"},
	}
	mate := author
	mate.Name = "Mate"
	mate.IsAuthor = false
	mate.ACS = 200
	mate.Hot = false
	enemy := mate
	enemy.Name = "Enemy"
	enemy.Team = "Blue"

	return &domain.RecentMatch{
		Match: domain.MatchView{
			ID:         "match-1",
			Gamemode:   "Competitive",
			Map:        "Ascent",
			MapImage:   "https://example.test/ascent.png",
			StartedAt:  1700000000,
			Length:     2405,
			Outcome:    domain.OutcomeVictory,
			TeamScore:  13,
			EnemyScore: 7,
		},
		Author: &author,
		Team:   []domain.PlayerView{author, mate},
		Enemy:  []domain.PlayerView{enemy},
		MMR:    &domain.MMRView{RankingInTier: 42, LastChange: 18},
	}
}

func TestBuildRecentEmbed_TeamMode(t *testing.T) {
	embed := BuildRecentEmbed(teamView())

	if embed.Title != "Victory | 13 - 7" {
		t.Fatalf("title=%q, want %q", embed.Title, "Victory | 13 - 7")
	}
	if embed.Color != colorVictory {
		t.Fatalf("color=%#x, want %#x", embed.Color, colorVictory)
	}
	if embed.Image == nil || embed.Image.URL != "https://example.test/ascent.png" {
		t.Fatalf("map image missing")
	}
	if embed.Author == nil || embed.Author.Name != "Tracker" || !strings.Contains(embed.Author.URL, "match-1") {
		t.Fatalf("author line wrong: %+v", embed.Author)
	}
	if len(embed.Fields) != 4 {
		t.Fatalf("fields=%d, want 4", len(embed.Fields))
	}
	if embed.Fields[0].Name != "Your Team" || embed.Fields[1].Name != "Enemy Team" {
		t.Fatalf("unexpected field order: %q, %q", embed.Fields[0].Name, embed.Fields[1].Name)
	}
}

func TestBuildRecentEmbed_AuthorRowBoldedWithMMR(t *testing.T) {
	embed := BuildRecentEmbed(teamView())

	teamField := embed.Fields[0].Value
	if !strings.Contains(teamField, "**[Author#NA1]") {
		t.Fatalf("author row not bolded: %q", teamField)
	}
	if !strings.Contains(teamField, "[310 🔥]") {
		t.Fatalf("hot ACS marker missing: %q", teamField)
	}
	if !strings.Contains(teamField, "18RR") || !strings.Contains(teamField, "42RR") {
		t.Fatalf("MMR line missing: %q", teamField)
	}
	if strings.Contains(embed.Fields[1].Value, "**") {
		t.Fatalf("enemy rows must not be bolded: %q", embed.Fields[1].Value)
	}
}

func TestBuildRecentEmbed_NoLeadingSeparator(t *testing.T) {
	embed := BuildRecentEmbed(teamView())

	for _, field := range embed.Fields[:2] {
		if strings.HasPrefix(field.Value, "​") {
			t.Fatalf("field %q opens with a separator", field.Name)
		}
	}
	if strings.Count(embed.Fields[0].Value, "​") != 1 {
		t.Fatalf("two rows should carry exactly one separator: %q", embed.Fields[0].Value)
	}
}

func TestBuildRecentEmbed_OmitsMMRLineWhenAbsent(t *testing.T) {
	view := teamView()
	view.MMR = nil
	embed := BuildRecentEmbed(view)

	if strings.Contains(embed.Fields[0].Value, "RR") {
		t.Fatalf("MMR line rendered without data: %q", embed.Fields[0].Value)
	}
}

func TestBuildRecentEmbed_MatchInfo(t *testing.T) {
	embed := BuildRecentEmbed(teamView())

	info := embed.Fields[3].Value
	for _, want := range []string{"Map: Ascent", "<t:1700000000:F>", "Game Length: 40:05", "Gamemode: Competitive"} {
		if !strings.Contains(info, want) {
			t.Fatalf("match info missing %q: %q", want, info)
		}
	}
}

func TestBuildRecentEmbed_ZeroShotHeadshotPercent(t *testing.T) {
	view := teamView()
	view.Author.HeadshotPercent = 0
	embed := BuildRecentEmbed(view)

	if !strings.Contains(embed.Fields[2].Value, "Headshot %: 0.00%") {
		t.Fatalf("zero-shot fallback not rendered: %q", embed.Fields[2].Value)
	}
}

func deathmatchView(authorWon bool) *domain.RecentMatch {
	players := make([]domain.PlayerView, 10)
	for i := range players {
		players[i] = domain.PlayerView{
			Name:       "Player",
			Tag:        "NA1",
			TrackerURL: "https://example.test/profile",
			Kills:      40 - i,
			Deaths:     10,
			Assists:    1,
			ACS:        400 - i*10,
			PartyEmoji: "🔵",
			Agent:      domain.Agent{Name: "Jett", Emoji: "<:jett:2>", Icon: "https://example.test/jett.png"},
		}
	}

	authorIdx := 3
	outcome := domain.OutcomeDefeat
	if authorWon {
		authorIdx = 0
		outcome = domain.OutcomeVictory
	}
	players[authorIdx].Name = "Author"
	players[authorIdx].IsAuthor = true
	author := players[authorIdx]

	return &domain.RecentMatch{
		Match: domain.MatchView{
			ID:        "match-2",
			Gamemode:  "Deathmatch",
			Map:       "Ascent",
			MapImage:  "https://example.test/ascent.png",
			StartedAt: 1700000000,
			Length:    540,
			Outcome:   outcome,
		},
		Author:  &author,
		Columns: [][]domain.PlayerView{players[:6], players[6:]},
	}
}

func TestBuildRecentEmbed_DeathmatchVictoryTitle(t *testing.T) {
	embed := BuildRecentEmbed(deathmatchView(true))

	// Author 40 kills, runner-up 39.
	if embed.Title != "Victory | 40 - 39" {
		t.Fatalf("title=%q, want %q", embed.Title, "Victory | 40 - 39")
	}
	if embed.Color != colorVictory {
		t.Fatalf("color=%#x, want %#x", embed.Color, colorVictory)
	}
}

func TestBuildRecentEmbed_DeathmatchDefeatTitle(t *testing.T) {
	embed := BuildRecentEmbed(deathmatchView(false))

	// Leader 40 kills, author at rank 3 has 37.
	if embed.Title != "Defeat | 40 - 37" {
		t.Fatalf("title=%q, want %q", embed.Title, "Defeat | 40 - 37")
	}
	if embed.Color != colorDefeat {
		t.Fatalf("color=%#x, want %#x", embed.Color, colorDefeat)
	}
}

func TestBuildRecentEmbed_DeathmatchFields(t *testing.T) {
	embed := BuildRecentEmbed(deathmatchView(false))

	if len(embed.Fields) != 3 {
		t.Fatalf("fields=%d, want 3", len(embed.Fields))
	}
	if embed.Fields[0].Name != "Players" || embed.Fields[1].Name != "​" {
		t.Fatalf("unexpected column names: %q, %q", embed.Fields[0].Name, embed.Fields[1].Name)
	}
	if got := strings.Count(embed.Fields[0].Value, "\n"); got != 5 {
		t.Fatalf("first column rows=%d, want 6 lines", got+1)
	}
	if !strings.Contains(embed.Fields[0].Value, "**[Author#NA1]") {
		t.Fatalf("author row not bolded: %q", embed.Fields[0].Value)
	}
}

func TestOutcomeColor(t *testing.T) {
	if outcomeColor(domain.OutcomeDraw) != colorDraw {
		t.Fatalf("draw should map to the yellow accent")
	}
}

func TestFormatGameLength(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{2400, "40:00"},
		{2405, "40:05"},
		{59, "0:59"},
		{61, "1:01"},
	}
	for _, c := range cases {
		if got := formatGameLength(c.seconds); got != c.want {
			t.Fatalf("formatGameLength(%d)=%q, want %q", c.seconds, got, c.want)
		}
	}
}
