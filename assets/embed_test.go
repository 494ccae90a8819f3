package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundsEmbedded(t *testing.T) {
	names := SoundNames()
	for _, want := range []string{"coin.wav", "disappear.wav", "hit.wav", "level_clear.wav", "music.wav", "star.wav"} {
		assert.Contains(t, names, want)
	}
}

func TestLoadAudioPaths(t *testing.T) {
	for _, path := range []string{"coin.wav", "sounds/coin.wav", "assets/sounds/coin.wav", "/tmp/game/assets/sounds/coin.wav"} {
		b, err := LoadAudio(path)
		require.NoError(t, err, path)
		assert.Equal(t, "RIFF", string(b[:4]), path)
	}

	_, err := LoadAudio("nope.wav")
	assert.Error(t, err)
}
