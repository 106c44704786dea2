// SPDX-License-Identifier: Apache-2.0
package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileUsesDefaults(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, store.GetInt(KeyWelcomeStep, 1))
	assert.Equal(t, 0, store.GetInt(KeyExecuted, 0))
}

func TestFileStore_SetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyWelcomeStep, 3))
	require.NoError(t, store.Set(KeyExecuted, 1700000000))

	// overwrite goes through the existing-file path
	require.NoError(t, store.Set(KeyWelcomeStep, 4))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, 4, reopened.GetInt(KeyWelcomeStep, 1))
	assert.Equal(t, 1700000000, reopened.GetInt(KeyExecuted, 0))
}

func TestFileStore_NonNumericReadsAsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("welcome-step: abc\n"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, 0, store.GetInt(KeyWelcomeStep, 1))
}

func TestFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	store, err := Open(context.Background(), Options{Path: filepath.Join(t.TempDir(), "s.yaml")})
	require.NoError(t, err)
	_, ok := store.(*FileStore)
	assert.True(t, ok, "empty backend should open a file store")
	assert.NoError(t, store.Close())

	_, err = Open(context.Background(), Options{Backend: "etcd"})
	assert.Error(t, err)

	_, err = Open(context.Background(), Options{Backend: BackendRedis})
	assert.Error(t, err, "redis backend without URL should fail")
}
