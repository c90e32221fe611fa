// Package tokens persists the session credential token between runs.
// It is the storefront's stand-in for browser-scoped key/value storage:
// one string value under a fixed location, whose presence is the sole
// session-resume signal.
package tokens

import (
	"errors"
	"os"
	"strings"
	"sync"
)

type Storage interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStorage keeps the token in a single file, created with owner-only
// permissions.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (string, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *FileStorage) Save(token string) error {
	return os.WriteFile(f.path, []byte(token+"\n"), 0o600)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is the in-process variant used by tests.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStorage) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
