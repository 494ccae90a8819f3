package hud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTallies(t *testing.T) {
	h := New(3, time.Second)
	h.AddScore(100)
	h.AddScore(1000)
	h.AddStar()

	assert.Equal(t, 1100, h.Score())
	assert.Equal(t, 1, h.Stars())

	for i := 0; i < 5; i++ {
		h.LoseHeart()
	}
	assert.Equal(t, 0, h.Hearts(), "hearts clamp at zero")
	assert.Equal(t, 3, h.MaxHearts())
}

func TestHintExpires(t *testing.T) {
	h := New(3, 2500*time.Millisecond)
	_, ok := h.Hint()
	assert.False(t, ok)

	h.ShowHint("Press SPACE to throw the brick")
	h.Update(2 * time.Second)
	msg, ok := h.Hint()
	assert.True(t, ok)
	assert.Equal(t, "Press SPACE to throw the brick", msg)

	h.Update(time.Second)
	_, ok = h.Hint()
	assert.False(t, ok)
}
