package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "taskquest"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/taskquest/taskquest.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultUserID is the user identity used by CLI sessions when no --user flag is given
	DefaultUserID = "local"

	// SyncDebounce is the window during which successive mutations coalesce into one remote write
	SyncDebounce = 500 * time.Millisecond

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "taskquest-"
	BackupFileSuffix = ".db"
)

// Session States
const (
	StateBoard SessionState = iota
	StateHabits
	StateArtifacts
	StateAddTask
	StateAddChecklistItem
	StateAddHabit
	StateLevelUp
	StateConfirmDelete
)
