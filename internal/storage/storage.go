package storage

import (
	"strings"

	"github.com/taskquest/taskquest/internal/storage/postgres"
	"github.com/taskquest/taskquest/internal/storage/sqlite"
)

// NewSQLiteStore returns the default local backend.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore returns the remote backend. It also satisfies Watcher.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnString reports whether the config value selects the
// postgres backend.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string embeds a
// password; such strings are refused at startup.
func HasEmbeddedCredentials(connStr string) bool {
	return postgres.HasEmbeddedCredentials(connStr)
}
