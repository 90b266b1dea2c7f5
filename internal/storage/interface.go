package storage

import "github.com/taskquest/taskquest/internal/models"

// Provider persists per-user state snapshots. Writes are full-snapshot,
// last-write-wins: the provider never merges, so a later save from any
// session overwrites an earlier one wholesale.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// User state
	// GetUserState returns the stored snapshot for the user. found is
	// false when no record exists; that is fresh-defaults territory, not
	// an error.
	GetUserState(userID string) (state models.UserState, found bool, err error)
	SaveUserState(userID string, state models.UserState) error

	// Utils
	GetConfigPath() string
}

// Watcher is implemented by providers that can push remote snapshot
// updates (another device writing the same user). onUpdate always receives
// a full snapshot; the engine re-applies its normalization to each one.
type Watcher interface {
	Subscribe(userID string, onUpdate func(models.UserState)) (cancel func(), err error)
}
