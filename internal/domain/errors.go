package domain

import "errors"

var (
	// ErrAccountNotFound means the Discord user has no linked Riot account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountStore means the account lookup itself failed.
	ErrAccountStore = errors.New("account store error")

	// ErrProviderUnavailable covers transport failures, timeouts and error
	// statuses from the stats provider.
	ErrProviderUnavailable = errors.New("stats provider unavailable")

	// ErrRiotAccountNotFound means the riot id given to /login does not
	// exist upstream.
	ErrRiotAccountNotFound = errors.New("riot account not found")

	// ErrAuthorNotFound means the linked account did not appear among the
	// match participants.
	ErrAuthorNotFound = errors.New("author not found in match")

	// ErrUnknownTier and ErrUnknownAgent are reference-table lookup misses.
	ErrUnknownTier  = errors.New("unknown competitive tier")
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrMapNotFound means the match's map name has no catalog entry.
	ErrMapNotFound = errors.New("map not found in catalog")
)
