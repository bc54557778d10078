package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuningWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 1400\n"), 0o644))

	w, err := NewTuningWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, w.Path())
	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 900\n"), 0o644))
	require.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
}

func TestTuningWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w, err := NewTuningWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.False(t, w.Changed())
}

func TestTuningWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w, err := NewTuningWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestNewTuningWatcherMissingDirectory(t *testing.T) {
	_, err := NewTuningWatcher(filepath.Join(t.TempDir(), "missing", "tuning.yaml"))
	assert.Error(t, err)
}
