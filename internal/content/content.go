package content

import (
	"fmt"

	"github.com/condyl/ruby/internal/domain"
	"go.uber.org/fx"
)

// Content holds the static game reference tables: competitive tiers, agents
// and the party marker palette. Loaded once at startup and passed into the
// shaping pipeline; lookups against it never touch the network.
type Content struct {
	ranks        []domain.Rank
	agentsByName map[string]domain.Agent
	partyEmojis  []string
}

func New() *Content {
	agents := make(map[string]domain.Agent, len(agentIDs))
	for name, id := range agentIDs {
		agents[name] = domain.Agent{
			Name:  name,
			Emoji: agentEmojis[name],
			Icon:  fmt.Sprintf("https://media.valorant-api.com/agents/%s/displayicon.png", id),
		}
	}
	return &Content{
		ranks:        ranks,
		agentsByName: agents,
		partyEmojis:  partyEmojis,
	}
}

// RankByTier resolves a competitive tier id to its display metadata. A miss
// is a hard error, never a blank rank.
func (c *Content) RankByTier(tier int) (domain.Rank, error) {
	for _, r := range c.ranks {
		if r.ID == tier {
			return r, nil
		}
	}
	return domain.Rank{}, fmt.Errorf("%w: tier %d", domain.ErrUnknownTier, tier)
}

// AgentByName resolves an agent's display metadata by character name.
func (c *Content) AgentByName(name string) (domain.Agent, error) {
	agent, ok := c.agentsByName[name]
	if !ok {
		return domain.Agent{}, fmt.Errorf("%w: %q", domain.ErrUnknownAgent, name)
	}
	return agent, nil
}

// PartyEmoji returns the marker for the nth distinct party in a match. The
// palette holds twelve symbols, one per party of a full custom lobby; indexes
// past the palette wrap around.
func (c *Content) PartyEmoji(index int) string {
	return c.partyEmojis[index%len(c.partyEmojis)]
}

// PartyPaletteSize reports how many distinct party markers exist before the
// palette wraps.
func (c *Content) PartyPaletteSize() int {
	return len(c.partyEmojis)
}

var partyEmojis = []string{"🔵", "🟢", "🟡", "🟣", "🔴", "🟠", "🟤", "⚪", "⚫", "⭕", "🟥", "🟦"}

var ranks = []domain.Rank{
	{ID: 0, Name: "Unranked", Emoji: "<:unranked:1089342900001112064>"},
	{ID: 3, Name: "Iron 1", Emoji: "<:iron_1:1089342900001112065>"},
	{ID: 4, Name: "Iron 2", Emoji: "<:iron_2:1089342900001112066>"},
	{ID: 5, Name: "Iron 3", Emoji: "<:iron_3:1089342900001112067>"},
	{ID: 6, Name: "Bronze 1", Emoji: "<:bronze_1:1089342900001112068>"},
	{ID: 7, Name: "Bronze 2", Emoji: "<:bronze_2:1089342900001112069>"},
	{ID: 8, Name: "Bronze 3", Emoji: "<:bronze_3:1089342900001112070>"},
	{ID: 9, Name: "Silver 1", Emoji: "<:silver_1:1089342900001112071>"},
	{ID: 10, Name: "Silver 2", Emoji: "<:silver_2:1089342900001112072>"},
	{ID: 11, Name: "Silver 3", Emoji: "<:silver_3:1089342900001112073>"},
	{ID: 12, Name: "Gold 1", Emoji: "<:gold_1:1089342900001112074>"},
	{ID: 13, Name: "Gold 2", Emoji: "<:gold_2:1089342900001112075>"},
	{ID: 14, Name: "Gold 3", Emoji: "<:gold_3:1089342900001112076>"},
	{ID: 15, Name: "Platinum 1", Emoji: "<:platinum_1:1089342900001112077>"},
	{ID: 16, Name: "Platinum 2", Emoji: "<:platinum_2:1089342900001112078>"},
	{ID: 17, Name: "Platinum 3", Emoji: "<:platinum_3:1089342900001112079>"},
	{ID: 18, Name: "Diamond 1", Emoji: "<:diamond_1:1089342900001112080>"},
	{ID: 19, Name: "Diamond 2", Emoji: "<:diamond_2:1089342900001112081>"},
	{ID: 20, Name: "Diamond 3", Emoji: "<:diamond_3:1089342900001112082>"},
	{ID: 21, Name: "Ascendant 1", Emoji: "<:ascendant_1:1089342900001112083>"},
	{ID: 22, Name: "Ascendant 2", Emoji: "<:ascendant_2:1089342900001112084>"},
	{ID: 23, Name: "Ascendant 3", Emoji: "<:ascendant_3:1089342900001112085>"},
	{ID: 24, Name: "Immortal 1", Emoji: "<:immortal_1:1089342900001112086>"},
	{ID: 25, Name: "Immortal 2", Emoji: "<:immortal_2:1089342900001112087>"},
	{ID: 26, Name: "Immortal 3", Emoji: "<:immortal_3:1089342900001112088>"},
	{ID: 27, Name: "Radiant", Emoji: "<:radiant:1089342900001112089>"},
}

var agentIDs = map[string]string{
	"Gekko":     "e370fa57-4757-3604-3648-499e1f642d3f",
	"Fade":      "dade69b4-4f5a-8528-247b-219e5a1facd6",
	"Breach":    "5f8d3a7f-467b-97f3-062c-13acf203c006",
	"Deadlock":  "cc8b64c8-4b25-4ff9-6e7f-37b4da43d235",
	"Tejo":      "b444168c-4e35-8076-db47-ef9bf368f384",
	"Raze":      "f94c3b30-42be-e959-889c-5aa313dba261",
	"Chamber":   "22697a3d-45bf-8dd7-4fec-84a9e28c69d7",
	"KAY/O":     "601dbbe7-43ce-be57-2a40-4abd24953621",
	"Skye":      "6f2a04ca-43e0-be17-7f36-b3908627744d",
	"Cypher":    "117ed9e3-49f3-6512-3ccf-0cada7e3823b",
	"Sova":      "320b2a48-4d9b-a075-30f1-1f93a9b638fa",
	"Killjoy":   "1e58de9c-4950-5125-93e9-a0aee9f98746",
	"Harbor":    "95b78ed7-4637-86d9-7e41-71ba8c293152",
	"Vyse":      "efba5359-4016-a1e5-7626-b1ae76895940",
	"Viper":     "707eab51-4836-f488-046a-cda6bf494859",
	"Phoenix":   "eb93336a-449b-9c1b-0a54-a891f7921d69",
	"Veto":      "92eeef5d-43b5-1d4a-8d03-b3927a09034b",
	"Astra":     "41fb69c1-4189-7b37-f117-bcaf1e96f1bf",
	"Brimstone": "9f0d8ba9-4140-b941-57d3-a7ad57c6b417",
	"Iso":       "0e38b510-41a8-5780-5e8f-568b2a4f2d6c",
	"Clove":     "1dbf2edd-4729-0984-3115-daa5eed44993",
	"Neon":      "bb2a4828-46eb-8cd1-e765-15848195d751",
	"Yoru":      "7f94d92c-4234-0a36-9646-3a87eb8b5c89",
	"Waylay":    "df1cb487-4902-002e-5c17-d28e83e78588",
	"Sage":      "569fdd95-4d10-43ab-ca70-79becc718b46",
	"Reyna":     "a3bfb853-43b2-7238-a4f1-ad90e9e46bcc",
	"Omen":      "8e253930-4c05-31dd-1b6c-968525494517",
	"Jett":      "add6443a-41bd-e414-f6ad-e58d267f4e95",
}

var agentEmojis = map[string]string{
	"Gekko":     "<:gekko:1089342910001112001>",
	"Fade":      "<:fade:1089342910001112002>",
	"Breach":    "<:breach:1089342910001112003>",
	"Deadlock":  "<:deadlock:1089342910001112004>",
	"Tejo":      "<:tejo:1089342910001112005>",
	"Raze":      "<:raze:1089342910001112006>",
	"Chamber":   "<:chamber:1089342910001112007>",
	"KAY/O":     "<:kayo:1089342910001112008>",
	"Skye":      "<:skye:1089342910001112009>",
	"Cypher":    "<:cypher:1089342910001112010>",
	"Sova":      "<:sova:1089342910001112011>",
	"Killjoy":   "<:killjoy:1089342910001112012>",
	"Harbor":    "<:harbor:1089342910001112013>",
	"Vyse":      "<:vyse:1089342910001112014>",
	"Viper":     "<:viper:1089342910001112015>",
	"Phoenix":   "<:phoenix:1089342910001112016>",
	"Veto":      "<:veto:1089342910001112017>",
	"Astra":     "<:astra:1089342910001112018>",
	"Brimstone": "<:brimstone:1089342910001112019>",
	"Iso":       "<:iso:1089342910001112020>",
	"Clove":     "<:clove:1089342910001112021>",
	"Neon":      "<:neon:1089342910001112022>",
	"Yoru":      "<:yoru:1089342910001112023>",
	"Waylay":    "<:waylay:1089342910001112024>",
	"Sage":      "<:sage:1089342910001112025>",
	"Reyna":     "<:reyna:1089342910001112026>",
	"Omen":      "<:omen:1089342910001112027>",
	"Jett":      "<:jett:1089342910001112028>",
}

var Module = fx.Provide(New)
