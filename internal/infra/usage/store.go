// Package usage provides a JSON file-based implementation of UsageRepository.
package usage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/loomos/loomshell/internal/domain"
)

// storeData represents the JSON file structure.
type storeData struct {
	Apps    domain.UsageMap `json:"apps"`
	Version int             `json:"version"`
}

// Store implements domain.UsageRepository using a JSON file.
// Several loomshell processes may share the file; access is serialized
// with flock on a sibling .lock file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load returns all recorded usage. A missing file yields an empty map.
func (s *Store) Load() (domain.UsageMap, error) {
	var apps domain.UsageMap
	err := s.withLock(func(data *storeData) error {
		apps = data.Apps
		return nil
	})
	return apps, err
}

// Record adds one launch of appID at t.
func (s *Store) Record(appID string, t time.Time) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Apps.Record(appID, t)
		return nil
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(unix.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(unix.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := unix.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = unix.Flock(int(lock.Fd()), unix.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeData{Version: 1, Apps: make(domain.UsageMap)}, nil
		}
		return nil, fmt.Errorf("read usage file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse usage file: %w", err)
	}

	// Ensure map is initialized
	if data.Apps == nil {
		data.Apps = make(domain.UsageMap)
	}
	if data.Version == 0 {
		data.Version = 1
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal usage data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements UsageRepository.
var _ domain.UsageRepository = (*Store)(nil)
