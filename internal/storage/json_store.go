package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskquest/taskquest/internal/models"
)

// jsonFile is the on-disk shape of the JSON backend.
type jsonFile struct {
	Version int                         `json:"version"`
	Users   map[string]models.UserState `json:"users"`
}

// JSONStore keeps all user snapshots in a single JSON file. It is the
// zero-setup backend and the fixture backend for engine tests.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Users:   make(map[string]models.UserState),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'taskquest init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Users == nil {
		s.file.Users = make(map[string]models.UserState)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetUserState(userID string) (models.UserState, bool, error) {
	if s.file == nil {
		return models.UserState{}, false, fmt.Errorf("storage not loaded")
	}
	state, ok := s.file.Users[userID]
	return state, ok, nil
}

func (s *JSONStore) SaveUserState(userID string, state models.UserState) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.file.Users[userID] = state
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
