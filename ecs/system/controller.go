package system

import (
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// ControllerSystem turns the character's Input into motion and throws.
// Disabled controls and hit-stun both swallow input.
type ControllerSystem struct {
	s *Session
}

func NewControllerSystem(s *Session) *ControllerSystem {
	return &ControllerSystem{s: s}
}

func (cs *ControllerSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, c *component.Character, in *component.Input) {
		jump, throw := in.JumpPressed, in.ThrowPressed
		in.JumpPressed, in.ThrowPressed = false, false

		if c.ControlsDisabled || c.HitStunned {
			return
		}

		v := cs.s.velocity(e)
		v.X = in.MoveX * c.MoveSpeed
		switch {
		case in.MoveX < 0:
			c.FacingLeft = true
		case in.MoveX > 0:
			c.FacingLeft = false
		}

		if jump {
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Grounded {
				v.Y = -c.JumpSpeed
			}
		}
		if throw {
			cs.s.Throw(e)
		}
	})
}
