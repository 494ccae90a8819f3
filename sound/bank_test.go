package sound

import (
	"testing"

	"github.com/milk9111/brickfall/ecs/system"
	"github.com/milk9111/brickfall/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ system.Audio = (*Bank)(nil)

func TestEveryCueHasAnEmbeddedFile(t *testing.T) {
	spec, err := prefabs.LoadCombatSpec()
	require.NoError(t, err)

	b := NewBank(nil, spec.Sounds.Files)
	for _, key := range []string{spec.Sounds.Defeat, spec.Sounds.Hit, spec.Sounds.Coin, spec.Sounds.Star, spec.Sounds.Clear, spec.Sounds.Music} {
		file, ok := b.resolve(key)
		require.True(t, ok, key)
		data, err := b.load(file)
		require.NoError(t, err, key)
		assert.NotEmpty(t, data)
	}
	assert.Empty(t, b.warned)
}

func TestUnknownKeyWarnsOnce(t *testing.T) {
	b := NewBank(nil, map[string]string{"coin": "coin.wav"})

	b.PlayOneShot("boing")
	b.PlayOneShot("boing")
	b.PlayLoop("boing")
	b.Stop()

	assert.Equal(t, map[string]bool{"boing": true}, b.warned)
	assert.Empty(t, b.players)
}

func TestMutedBankIgnoresLoop(t *testing.T) {
	b := NewBank(nil, map[string]string{"music": "music.wav"})
	b.SetMuted(true)
	b.PlayLoop("music")
	assert.True(t, b.Muted())
	assert.Nil(t, b.music)
}

func TestMuteKeepsRequestedLoop(t *testing.T) {
	cases := []struct {
		name        string
		run         func(b *Bank)
		wantLoop    string
		wantLooping bool
	}{
		{"requested_while_muted", func(b *Bank) {
			b.SetMuted(true)
			b.PlayLoop("music")
			b.SetMuted(false)
		}, "music", true},
		{"muted_while_playing", func(b *Bank) {
			b.PlayLoop("music")
			b.SetMuted(true)
			b.SetMuted(false)
		}, "music", true},
		{"stopped_while_muted", func(b *Bank) {
			b.SetMuted(true)
			b.PlayLoop("music")
			b.Stop()
			b.SetMuted(false)
		}, "music", false},
		{"replaced_while_muted", func(b *Bank) {
			b.PlayLoop("music")
			b.SetMuted(true)
			b.PlayLoop("clear")
			b.SetMuted(false)
		}, "clear", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBank(nil, map[string]string{"music": "music.wav", "clear": "level_clear.wav"})
			c.run(b)
			assert.False(t, b.Muted())
			assert.Equal(t, c.wantLoop, b.loop)
			assert.Equal(t, c.wantLooping, b.looping)
			assert.Empty(t, b.warned)
		})
	}
}
