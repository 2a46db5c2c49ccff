package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(filepath.Join(dir, "exports"))
	require.NoError(t, err)

	path, err := store.Save("run-1/roster.csv", []byte("role\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exports", "run-1", "roster.csv"), path)
	assert.Equal(t, path, store.Path("run-1/roster.csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "role\n", string(data))
}

func TestLocalStorageRejectsEscapes(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../outside.csv", []byte("x"))
	require.Error(t, err)
	_, err = store.Save("/etc/roster.csv", []byte("x"))
	require.Error(t, err)
	assert.Empty(t, store.Path("../outside.csv"))
}
