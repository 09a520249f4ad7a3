package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	require.NoError(t, m.Set("k", []byte(`{"a":1}`)))
	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	in := []byte("abc")
	require.NoError(t, m.Set("k", in))
	in[0] = 'X'

	got, _ := m.Get("k")
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'Y'
	again, _ := m.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryConcurrent(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set("shared", []byte("v"))
			_, _ = m.Get("shared")
		}()
	}
	wg.Wait()
}

func TestFSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFS(dir)

	_, ok := fs.Get("missing11:easy:2026-06-15")
	assert.False(t, ok)

	require.NoError(t, fs.Set("missing11:easy:2026-06-15", []byte(`{"players":{}}`)))
	got, ok := fs.Get("missing11:easy:2026-06-15")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"players":{}}`), got)

	// Colons are not filename-safe everywhere; keys are sanitized.
	_, err := os.Stat(filepath.Join(dir, "missing11_easy_2026-06-15.json"))
	assert.NoError(t, err)
}

func TestFSCreatesDirLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	fs := NewFS(dir)

	_, ok := fs.Get("k")
	assert.False(t, ok)
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Set("k", []byte("v")))
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestFSOverwrites(t *testing.T) {
	fs := NewFS(t.TempDir())
	require.NoError(t, fs.Set("k", []byte("one")))
	require.NoError(t, fs.Set("k", []byte("two")))
	got, ok := fs.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got)
}
