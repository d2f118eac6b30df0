package content

import (
	"errors"
	"testing"

	"github.com/condyl/ruby/internal/domain"
)

func TestRankByTier(t *testing.T) {
	tables := New()

	rank, err := tables.RankByTier(14)
	if err != nil {
		t.Fatalf("RankByTier(14): %v", err)
	}
	if rank.Name != "Gold 3" {
		t.Fatalf("rank=%q, want Gold 3", rank.Name)
	}

	if _, err := tables.RankByTier(99); !errors.Is(err, domain.ErrUnknownTier) {
		t.Fatalf("err=%v, want ErrUnknownTier", err)
	}
	// Tiers 1 and 2 are unused by the game and absent from the table.
	if _, err := tables.RankByTier(1); !errors.Is(err, domain.ErrUnknownTier) {
		t.Fatalf("err=%v, want ErrUnknownTier", err)
	}
}

func TestAgentByName(t *testing.T) {
	tables := New()

	agent, err := tables.AgentByName("Jett")
	if err != nil {
		t.Fatalf("AgentByName(Jett): %v", err)
	}
	if agent.Emoji == "" || agent.Icon == "" {
		t.Fatalf("agent display metadata incomplete: %+v", agent)
	}

	if _, err := tables.AgentByName("NotAnAgent"); !errors.Is(err, domain.ErrUnknownAgent) {
		t.Fatalf("err=%v, want ErrUnknownAgent", err)
	}
}

func TestPartyEmoji(t *testing.T) {
	tables := New()

	if tables.PartyPaletteSize() != 12 {
		t.Fatalf("palette size=%d, want 12", tables.PartyPaletteSize())
	}

	seen := make(map[string]bool)
	for i := 0; i < tables.PartyPaletteSize(); i++ {
		emoji := tables.PartyEmoji(i)
		if seen[emoji] {
			t.Fatalf("palette symbol %q repeats within the first 12", emoji)
		}
		seen[emoji] = true
	}

	// A 13th distinct party wraps to the start of the palette.
	if tables.PartyEmoji(12) != tables.PartyEmoji(0) {
		t.Fatalf("palette should wrap after 12 parties")
	}
}
