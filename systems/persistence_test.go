package systems

import (
	"testing"

	cfg "github.com/automoto/megaphone/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *SavedSettings
	}{
		{"empty", "", nil},
		{"full", "sfx_volume: 0.4\nmuted: true\n", &SavedSettings{SFXVolume: 0.4, Muted: true}},
		{"missing volume keeps default", "muted: true\n", &SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol, Muted: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSettings([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSettingsRejectsGarbage(t *testing.T) {
	_, err := decodeSettings([]byte("sfx_volume: [loud"))
	assert.Error(t, err)
}

func TestApplySavedSettings(t *testing.T) {
	vol, muted := GetSFXVolume(), IsMuted()
	t.Cleanup(func() {
		SetSFXVolume(vol)
		SetMuted(muted)
	})

	ApplySavedSettings(&SavedSettings{SFXVolume: 3, Muted: true})
	assert.Equal(t, 1.0, GetSFXVolume())
	assert.True(t, IsMuted())
	assert.Zero(t, effectiveVolume())

	ApplySavedSettings(nil)
	assert.True(t, IsMuted())
}
