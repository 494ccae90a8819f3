package system_test

import (
	"testing"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweenSystem(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(system.NewTweenSystem())

	e := ecs.CreateEntity(w)
	tr := &component.Transform{Y: 100, ScaleX: 1, ScaleY: 1}
	sp := &component.Sprite{Alpha: 1}
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), tr))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), sp))

	completed := 0
	require.NoError(t, ecs.Add(w, e, component.TweensComponent.Kind(), &component.Tweens{Items: []component.Tween{
		{Property: component.TweenY, To: 0, Duration: 100 * time.Millisecond, Ease: "Linear", OnComplete: func() { completed++ }},
		{Property: component.TweenAlpha, To: 0, Delay: 100 * time.Millisecond, Duration: 100 * time.Millisecond, Ease: "Linear"},
	}}))

	w.Update(50 * time.Millisecond)
	assert.InDelta(t, 50, tr.Y, 1e-9)
	assert.Equal(t, 1.0, sp.Alpha, "delayed tween has not started")
	sp.Alpha = 0.8

	w.Update(50 * time.Millisecond)
	assert.InDelta(t, 0, tr.Y, 1e-9)
	assert.Equal(t, 1, completed)

	assert.InDelta(t, 0.8, sp.Alpha, 1e-9)

	w.Update(50 * time.Millisecond)
	assert.InDelta(t, 0.4, sp.Alpha, 1e-9, "start value is captured after the delay")

	w.Update(50 * time.Millisecond)
	assert.InDelta(t, 0, sp.Alpha, 1e-9)
	assert.Equal(t, 1, completed)
	assert.False(t, ecs.Has(w, e, component.TweensComponent.Kind()))
}
