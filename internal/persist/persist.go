// Package persist reads and writes the full snapshot as a versioned JSON
// file. Timestamps round-trip through RFC 3339 strings.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rlankford/crewboard/internal/domain"
)

// CurrentVersion is the current snapshot schema version
const CurrentVersion = 1

type envelope struct {
	Version   int               `json:"version"`
	Employees []domain.Employee `json:"employees"`
	Tasks     []domain.Task     `json:"tasks"`
	Products  []domain.Product  `json:"products"`
}

// Migration represents a snapshot schema migration
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: add the version field, no structural changes
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			data["version"] = 1
			return data, nil
		},
	},
}

// File persists snapshots at a fixed path.
type File struct {
	path   string
	logger *slog.Logger
}

// NewFile creates a file-backed snapshot persister.
func NewFile(path string, logger *slog.Logger) *File {
	if logger == nil {
		logger = slog.Default()
	}
	return &File{path: path, logger: logger}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the persisted snapshot. The second return is false when no
// snapshot file exists yet; a file that exists but cannot be decoded is an
// error, and callers are expected to fall back to the seed dataset.
func (f *File) Load() (domain.Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, &domain.StateError{Op: "load", Path: f.path, Err: err}
	}

	snap, err := ParseSnapshot(data)
	if err != nil {
		return domain.Snapshot{}, false, &domain.StateError{Op: "load", Path: f.path, Err: err}
	}

	f.logger.Debug("snapshot loaded", "path", f.path,
		"employees", len(snap.Employees), "tasks", len(snap.Tasks), "products", len(snap.Products))
	return snap, true, nil
}

// Save atomically writes the snapshot to disk via a temp file and rename.
func (f *File) Save(snap domain.Snapshot) error {
	data, err := MarshalSnapshot(snap)
	if err != nil {
		return &domain.StateError{Op: "save", Path: f.path, Err: err}
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &domain.StateError{Op: "save", Path: f.path, Err: err}
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return &domain.StateError{Op: "save", Path: f.path, Err: err}
	}
	return nil
}

// Remove deletes the persisted snapshot, if any.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return &domain.StateError{Op: "remove", Path: f.path, Err: err}
	}
	return nil
}

// ParseSnapshot decodes snapshot data with version migration support.
func ParseSnapshot(data []byte) (domain.Snapshot, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Snapshot{}, fmt.Errorf("parse snapshot JSON: %w", err)
	}

	// Version 0 = legacy data without a version field.
	version := 0
	if v, ok := raw["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return domain.Snapshot{}, fmt.Errorf("snapshot version %d is newer than supported version %d", version, CurrentVersion)
	}

	if version < CurrentVersion {
		var err error
		raw, err = applyMigrations(raw, version)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("migrate snapshot: %w", err)
		}
	}

	migrated, err := json.Marshal(raw)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("re-marshal migrated snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(migrated, &env); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	return domain.Snapshot{
		Employees: env.Employees,
		Tasks:     env.Tasks,
		Products:  env.Products,
	}, nil
}

// MarshalSnapshot encodes a snapshot with version information.
func MarshalSnapshot(snap domain.Snapshot) ([]byte, error) {
	env := envelope{
		Version:   CurrentVersion,
		Employees: snap.Employees,
		Tasks:     snap.Tasks,
		Products:  snap.Products,
	}
	return json.MarshalIndent(env, "", "  ")
}

func applyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, m := range migrations {
		if m.FromVersion == fromVersion {
			var err error
			data, err = m.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w", m.FromVersion, m.ToVersion, err)
			}
			fromVersion = m.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}
