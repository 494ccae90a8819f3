package system

import (
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// CharacterSystem counts invincibility down by the frame delta and clears
// the damage tint when it runs out.
type CharacterSystem struct{}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{}
}

func (cs *CharacterSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if !c.Invincible {
			return
		}
		c.InvincibleRemaining -= dt
		if c.InvincibleRemaining > 0 {
			return
		}
		c.InvincibleRemaining = 0
		c.Invincible = false
		if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sp.Tinted = false
			sp.Alpha = 1
		}
	})
}
