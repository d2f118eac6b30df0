package domain

import (
	"time"
)

// Account links a Discord user to a Riot account. Rows live in the local
// SQLite store and are written by /login, read by /recent, removed by /logout.
type Account struct {
	ID            string // nanoid
	DiscordUserID string
	Puuid         string
	Region        string
	RiotName      string
	RiotTag       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RiotID renders the composite "Name#Tag" identity.
func (a *Account) RiotID() string {
	return a.RiotName + "#" + a.RiotTag
}

type Outcome string

const (
	OutcomeVictory Outcome = "Victory"
	OutcomeDefeat  Outcome = "Defeat"
	OutcomeDraw    Outcome = "Draw"
)

type Shots struct {
	Head  int
	Body  int
	Leg   int
	Total int
}

type Rank struct {
	ID    int
	Name  string
	Emoji string
}

type Agent struct {
	Name  string
	Emoji string
	Icon  string
}

// PlayerView is one participant's derived line in the report.
type PlayerView struct {
	Name       string
	Tag        string
	Puuid      string
	Region     string
	TrackerURL string
	IsAuthor   bool

	Kills   int
	Deaths  int
	Assists int
	Score   int

	// ACS is the per-round-averaged combat score, rounded.
	ACS int
	Hot bool // ACS at or above the hot threshold

	Team       string // empty in deathmatch
	PartyEmoji string

	Shots           Shots
	HeadshotPercent float64
	Rank            Rank
	Agent           Agent
}

// MatchView is the match-level summary shown in the embed.
type MatchView struct {
	ID         string
	Gamemode   string
	Map        string
	MapImage   string
	StartedAt  int64 // unix seconds
	Length     int   // seconds
	Outcome    Outcome
	TeamScore  int // team mode only
	EnemyScore int
}

// MMRView carries the ranked progress line, present only for competitive
// matches where the rank-history fetch succeeded.
type MMRView struct {
	RankingInTier int
	LastChange    int
}

// RecentMatch is the fully shaped result of the /recent pipeline, ready for
// rendering. Team/Enemy are populated in team modes, Columns in deathmatch.
type RecentMatch struct {
	Match   MatchView
	Author  *PlayerView
	Team    []PlayerView
	Enemy   []PlayerView
	Columns [][]PlayerView
	MMR     *MMRView
}
