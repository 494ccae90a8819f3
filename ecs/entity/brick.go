package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/prefabs"
)

type brickProps struct {
	Color string `yaml:"color"`
}

var brickColors = map[string]color.NRGBA{
	"brown": {R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
	"grey":  {R: 0x80, G: 0x80, B: 0x88, A: 0xff},
}

// NewBrickAt spawns a throwable brick. Its durability comes from the colour.
func NewBrickAt(w *ecs.World, spec prefabs.PropSpec, obj Placement) (ecs.Entity, error) {
	props, err := prefabs.DecodeComponentSpec[brickProps](obj.Props)
	if err != nil {
		return ecs.Null, fmt.Errorf("brick: decode props: %w", err)
	}
	if props.Color == "" {
		props.Color = "brown"
	}
	tint, ok := brickColors[props.Color]
	if !ok {
		tint = brickColors["brown"]
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PropComponent.Kind(), &component.Prop{
		Color:      props.Color,
		Durability: spec.DurabilityFor(props.Color),
	}); err != nil {
		return ecs.Null, fmt.Errorf("brick: add prop: %w", err)
	}

	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return ecs.Null, fmt.Errorf("brick: add velocity: %w", err)
	}

	cx, cy, width, height := centre(obj.X, obj.Y, obj.Width, obj.Height, spec.Width, spec.Height)
	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Color:  tint,
		Body: component.PhysicsBody{
			Category: component.CategoryProp,
			Mass:     1,
			Friction: 0.6,
		},
	}); err != nil {
		return ecs.Null, fmt.Errorf("brick: %w", err)
	}

	return e, nil
}
