package entity

import (
	"fmt"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/prefabs"
)

// NewCharacterAt spawns the player character from a preset with its feet
// box anchored at the top-left x, y.
func NewCharacterAt(w *ecs.World, spec prefabs.CharacterSpec, x, y float64) (ecs.Entity, error) {
	hearts := spec.Hearts
	if hearts <= 0 {
		hearts = 3
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		Health:     hearts,
		MaxHealth:  hearts,
		MoveSpeed:  spec.MoveSpeed,
		JumpSpeed:  spec.JumpSpeed,
		StompBoost: spec.StompBoost,
		ThrowBoost: spec.ThrowBoost,
	}); err != nil {
		return ecs.Null, fmt.Errorf("player: add character: %w", err)
	}

	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return ecs.Null, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return ecs.Null, fmt.Errorf("player: add velocity: %w", err)
	}

	cx, cy, width, height := centre(x, y, 0, 0, spec.Width, spec.Height)
	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Color:  spec.Color.NRGBA,
		Body: component.PhysicsBody{
			Category:     component.CategoryCharacter,
			Mass:         1,
			GravityScale: spec.GravityScale,
		},
	}); err != nil {
		return ecs.Null, fmt.Errorf("player: %w", err)
	}

	return e, nil
}
