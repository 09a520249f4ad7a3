// Package storage provides the key-value persistence port game state is
// saved through. It mirrors browser local storage: string keys, opaque
// payloads, best-effort durability, no transactions across keys.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the persistence capability injected into the game layer.
// Writes are best-effort; callers keep state authoritative in memory and
// swallow storage errors.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Memory is a map-backed Store, safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// FS stores one file per key under a directory. Keys like
// "missing11:easy:2026-06-15" become "missing11_easy_2026-06-15.json".
type FS struct {
	dir string
}

// NewFS creates a filesystem store rooted at dir. The directory is
// created lazily on first write.
func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(key string) string {
	safe := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FS) Get(key string) ([]byte, bool) {
	b, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *FS) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.pathFor(key), value, 0o644)
}
