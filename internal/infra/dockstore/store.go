// Package dockstore provides dock preference persistence.
package dockstore

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/loomos/loomshell/internal/domain"
)

// ErrNoHomeDir is returned when the global directory is missing or relative.
var ErrNoHomeDir = errors.New("dock store requires an absolute global directory")

// Ensure Store implements domain.DockRepository.
var _ domain.DockRepository = (*Store)(nil)

// Store implements DockRepository for file-based persistence.
type Store struct {
	filePath string
}

// NewStore creates a new dock store.
// globalDir is typically ~/.config/loomshell.
func NewStore(globalDir string) (*Store, error) {
	if globalDir == "" || !filepath.IsAbs(globalDir) {
		return nil, ErrNoHomeDir
	}
	return &Store{
		filePath: domain.DockFilePath(globalDir),
	}, nil
}

// Load reads the dock file.
// Returns an empty file with version 1 if the file doesn't exist.
func (s *Store) Load() (*domain.DockFile, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.DockFile{
				Version: 1,
				Pinned:  []string{},
			}, nil
		}
		return nil, err
	}

	var file domain.DockFile
	if err := toml.Unmarshal(data, &file); err != nil {
		// Return error but allow caller to handle it gracefully
		return nil, domain.ErrDockFileCorrupted
	}
	if file.Version == 0 {
		file.Version = 1
	}

	// Deduplicate pinned ids (keep first occurrence)
	file.Pinned = deduplicate(file.Pinned)

	return &file, nil
}

// Save writes the dock file.
func (s *Store) Save(file *domain.DockFile) error {
	// Ensure directory exists with proper permissions (0700)
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	if file.Version == 0 {
		file.Version = 1
	}
	file.Pinned = deduplicate(file.Pinned)

	data, err := toml.Marshal(file)
	if err != nil {
		return err
	}

	// Write to a temp file then rename so a crash never leaves a truncated file
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

// deduplicate removes duplicate ids, keeping the first occurrence.
func deduplicate(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
