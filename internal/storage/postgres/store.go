// Package postgres is the remote storage backend. Besides snapshot
// persistence it implements the push channel: every save NOTIFYs the
// user's channel so other live sessions receive the new snapshot.
package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/taskquest/taskquest/internal/logger"
	"github.com/taskquest/taskquest/internal/models"
)

const (
	schema = `
CREATE TABLE IF NOT EXISTS user_state (
	user_id    TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`
	// notifyChannel carries the user id of every saved snapshot.
	notifyChannel = "taskquest_user_state"

	listenerMinReconnect = 2 * time.Second
	listenerMaxReconnect = time.Minute
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{connStr: connStr}
}

// HasEmbeddedCredentials reports whether a URL-style connection string
// carries a password. Credentials belong in the keyring, environment or
// .pgpass, never on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}

	if !strings.HasPrefix(s.connStr, "postgres://") && !strings.HasPrefix(s.connStr, "postgresql://") {
		return fmt.Errorf("%w: %s", ErrInvalidConnectionString, s.connStr)
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db

	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetUserState(userID string) (models.UserState, bool, error) {
	row := s.db.QueryRow(`SELECT data FROM user_state WHERE user_id = $1`, userID)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return models.UserState{}, false, nil
		}
		return models.UserState{}, false, fmt.Errorf("failed to read user state: %w", err)
	}

	var state models.UserState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.UserState{}, false, fmt.Errorf("failed to parse user state: %w", err)
	}

	return state, true, nil
}

func (s *Store) SaveUserState(userID string, state models.UserState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize user state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO user_state (user_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID, data)
	if err != nil {
		return fmt.Errorf("failed to save user state: %w", err)
	}

	// Push the change to any listening session. A failed notify is not a
	// failed save.
	if _, err := s.db.Exec(`SELECT pg_notify($1, $2)`, notifyChannel, userID); err != nil {
		logger.Warn("Failed to notify user state change", "user", userID, "error", err)
	}

	return nil
}

// Subscribe delivers a fresh full snapshot whenever any session saves the
// given user's state. The returned cancel func stops the listener.
func (s *Store) Subscribe(userID string, onUpdate func(models.UserState)) (func(), error) {
	listener := pq.NewListener(s.connStr, listenerMinReconnect, listenerMaxReconnect,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("Postgres listener event", "event", ev, "error", err)
			}
		})

	if err := listener.Listen(notifyChannel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", notifyChannel, err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case n, ok := <-listener.Notify:
				if !ok {
					return
				}
				// nil notifications signal a reconnect; re-read to catch
				// anything missed while disconnected.
				if n != nil && n.Extra != userID {
					continue
				}
				state, found, err := s.GetUserState(userID)
				if err != nil {
					logger.Warn("Failed to fetch pushed user state", "user", userID, "error", err)
					continue
				}
				if found {
					onUpdate(state)
				}
			}
		}
	}()

	cancel := func() {
		close(done)
		_ = listener.Close()
	}

	return cancel, nil
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}
