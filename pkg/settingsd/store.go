// Package settingsd implements the host side of the settings contract:
// a file-backed store for the overlay settings record and the websocket
// endpoint the panel's bridge talks to.
package settingsd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wavebar/pkg/schema"
)

// Store owns the persisted settings record. All reads and writes go
// through it; the panel never holds a durable copy.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings schema.Settings
}

// Open reads the settings file at path. When the file is missing or
// cannot be parsed, the default record is used instead so the daemon
// can continue running; the repaired record is written back on the
// first change.
func Open(path string) *Store {
	s := &Store{path: path, settings: schema.Default()}

	data, err := os.ReadFile(path)
	if err != nil {
		// No existing file – keep defaults.
		return s
	}

	var loaded schema.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Malformed file – keep defaults.
		return s
	}

	// Ensure zero-values are replaced by defaults so that partially
	// written configuration files do not break behaviour when new
	// fields are added.
	loaded.Normalize()
	s.settings = loaded
	return s
}

// Settings returns a copy of the current record.
func (s *Store) Settings() schema.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Apply persists a single-field change and returns the updated record.
func (s *Store) Apply(update schema.FieldUpdate) (schema.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	update.Apply(&s.settings)
	s.settings.Normalize()
	if err := s.saveLocked(); err != nil {
		return s.settings, fmt.Errorf("save settings: %w", err)
	}
	return s.settings, nil
}

// Replace persists a full record, normalizing it first.
func (s *Store) Replace(next schema.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next.Normalize()
	s.settings = next
	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// saveLocked writes the current record to disk, creating the parent
// directory when necessary. Callers hold s.mu.
func (s *Store) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s.settings)
}
