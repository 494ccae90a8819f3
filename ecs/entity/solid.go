package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

var groundColor = color.NRGBA{R: 0x4a, G: 0x7a, B: 0x3a, A: 0xff}

// NewSolidAt adds static level geometry with its top-left corner at x, y.
func NewSolidAt(w *ecs.World, x, y, width, height float64) (ecs.Entity, error) {
	if width <= 0 || height <= 0 {
		return ecs.Null, fmt.Errorf("solid: invalid size %.0fx%.0f", width, height)
	}
	e := ecs.CreateEntity(w)
	cx, cy, _, _ := centre(x, y, width, height, width, height)
	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Color:  groundColor,
		Body: component.PhysicsBody{
			Category: component.CategorySolid,
			Static:   true,
			Friction: 0.9,
		},
	}); err != nil {
		return ecs.Null, fmt.Errorf("solid: %w", err)
	}
	return e, nil
}
