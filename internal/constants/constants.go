package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// HotACSThreshold marks a standout performance in the report.
	HotACSThreshold = 300

	// DeathmatchColumnSize splits the flat deathmatch scoreboard into two
	// embed fields.
	DeathmatchColumnSize = 6
)

const (
	GamemodeDeathmatch  = "Deathmatch"
	GamemodeCompetitive = "Competitive"
)
