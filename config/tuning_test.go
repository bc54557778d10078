package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTuningOverridesOnlyPresentKeys(t *testing.T) {
	t.Cleanup(ResetTuning)

	doc := []byte(`
physics:
  gravity: 1000
megaphone:
  max_charge: 2.5
`)
	require.NoError(t, ApplyTuning(doc))

	assert.Equal(t, 1000.0, Physics.Gravity)
	assert.Equal(t, 1.0, Physics.FeetProbe)
	assert.Equal(t, 2.5, Megaphone.MaxCharge)
	assert.Equal(t, 120.0, Megaphone.RadiusBase)
	assert.Equal(t, 220.0, Player.MaxSpeed)
}

func TestApplyTuningStartsFromDefaults(t *testing.T) {
	t.Cleanup(ResetTuning)

	require.NoError(t, ApplyTuning([]byte("player:\n  max_speed: 300\n")))
	require.NoError(t, ApplyTuning([]byte("physics:\n  gravity: 900\n")))

	// The second document does not mention max_speed, so it reverts.
	assert.Equal(t, 220.0, Player.MaxSpeed)
	assert.Equal(t, 900.0, Physics.Gravity)
}

func TestApplyTuningInvalidKeepsValues(t *testing.T) {
	t.Cleanup(ResetTuning)

	require.NoError(t, ApplyTuning([]byte("treadmill:\n  speed: 90\n")))
	err := ApplyTuning([]byte("treadmill: [not, a, map"))
	require.Error(t, err)
	assert.Equal(t, 90.0, Treadmill.Speed)
}

func TestLoadTuningFile(t *testing.T) {
	t.Cleanup(ResetTuning)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  patrol_speed: 75\n"), 0o644))

	require.NoError(t, LoadTuningFile(path))
	assert.Equal(t, 75.0, Enemy.PatrolSpeed)

	err := LoadTuningFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
