package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/prefabs"
)

// enemyOverrides are the per-object properties a level may set on an enemy.
type enemyOverrides struct {
	Range float64 `yaml:"range"`
	Speed float64 `yaml:"speed"`
}

// NewHostileAt spawns one enemy variant. Squashing variants are flattened
// for squashDelay before they disappear; the rest vanish on defeat.
func NewHostileAt(w *ecs.World, variant string, spec prefabs.EnemySpec, obj Placement, squashDelay time.Duration) (ecs.Entity, error) {
	over, err := prefabs.DecodeComponentSpec[enemyOverrides](obj.Props)
	if err != nil {
		return ecs.Null, fmt.Errorf("enemy %s: decode props: %w", variant, err)
	}
	speed := spec.Speed
	if over.Speed > 0 {
		speed = over.Speed
	}
	patrol := spec.Range
	if over.Range > 0 {
		patrol = over.Range
	}

	e := ecs.CreateEntity(w)

	var defeat component.Defeatable = component.RemoveDefeat{}
	if spec.Squash {
		defeat = component.SquashDefeat{Delay: squashDelay}
	}
	if err := ecs.Add(w, e, component.HostileComponent.Kind(), &component.Hostile{
		Variant: variant,
		Alive:   true,
		Defeat:  defeat,
	}); err != nil {
		return ecs.Null, fmt.Errorf("enemy %s: add hostile: %w", variant, err)
	}

	cx, cy, width, height := centre(obj.X, obj.Y, obj.Width, obj.Height, spec.Width, spec.Height)

	if spec.Script != "" {
		if err := ecs.Add(w, e, component.ActorScriptComponent.Kind(), &component.ActorScript{
			Script: spec.Script,
			Speed:  speed,
			MinX:   cx - patrol/2,
			MaxX:   cx + patrol/2,
			Dir:    1,
		}); err != nil {
			return ecs.Null, fmt.Errorf("enemy %s: add script: %w", variant, err)
		}
	}

	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return ecs.Null, fmt.Errorf("enemy %s: add velocity: %w", variant, err)
	}

	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Color:  spec.Color.NRGBA,
		Body: component.PhysicsBody{
			Category:        component.CategoryHostile,
			Mass:            1,
			GravityDisabled: spec.Flying,
		},
	}); err != nil {
		return ecs.Null, fmt.Errorf("enemy %s: %w", variant, err)
	}

	return e, nil
}
