// Package localstore persists the player's daily session on disk, one JSON
// file per key, standing in for the browser's localStorage. Records are only
// trusted for resume when both the schema version and the day key still
// match; anything else reads as absent and the caller starts fresh.
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atteraisanen/MovieGuessr/internal/game"
)

// SchemaVersion tags every persisted record. Bump it on any incompatible
// change to the session shape: mismatched stores are wiped, never migrated.
const SchemaVersion = "1"

const (
	sessionKeyPrefix = "movieGame_"
	versionKey       = "dataVersion"
)

// SessionRecord is the persisted form of a session
type SessionRecord struct {
	SchemaVersion string       `json:"schemaVersion"`
	DayKey        string       `json:"dayKey"`
	Session       game.Session `json:"session"`
}

// Store is a file-backed session store rooted at a single directory
type Store struct {
	dir     string
	version string
}

// New opens (creating if needed) a store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, version: SchemaVersion}, nil
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the record for dayKey, or nil when there is nothing usable:
// no file, unreadable JSON, a different day, or a different schema version.
// A schema version mismatch wipes the whole store before returning, so a
// stale shape can never be resumed under any key.
func (s *Store) Load(dayKey string) (*SessionRecord, error) {
	if !s.versionMatches() {
		if err := s.purge(); err != nil {
			return nil, err
		}
		if err := s.writeVersion(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	data, err := os.ReadFile(s.keyPath(sessionKeyPrefix + dayKey))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt state is not worth failing over; play a fresh round.
		return nil, nil
	}
	if rec.DayKey != dayKey || rec.SchemaVersion != s.version {
		return nil, nil
	}
	return &rec, nil
}

// Save overwrite-persists the session for dayKey. The write is atomic with
// respect to a concurrent reader of the same file.
func (s *Store) Save(dayKey string, session game.Session) error {
	rec := SessionRecord{
		SchemaVersion: s.version,
		DayKey:        dayKey,
		Session:       session,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := s.writeVersion(); err != nil {
		return err
	}

	path := s.keyPath(sessionKeyPrefix + dayKey)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// EvictStale deletes every stored session that does not belong to
// currentDayKey. Yesterday's round is dead weight once the day rolls over.
func (s *Store) EvictStale(currentDayKey string) error {
	keep := sessionKeyPrefix + currentDayKey + ".json"
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, sessionKeyPrefix) || name == keep {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) versionMatches() bool {
	data, err := os.ReadFile(s.keyPath(versionKey))
	if err != nil {
		// Missing on first run; Load writes it after the (empty) purge.
		return false
	}
	return strings.TrimSpace(string(data)) == s.version
}

func (s *Store) writeVersion() error {
	return os.WriteFile(s.keyPath(versionKey), []byte(s.version), 0o644)
}

func (s *Store) purge() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
