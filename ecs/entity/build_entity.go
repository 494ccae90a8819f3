package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// box is the shared shape of every spawned entity: a centred transform, a
// collider of the same size and a placeholder sprite.
type box struct {
	X, Y          float64
	Width, Height float64
	Color         color.NRGBA
	Body          component.PhysicsBody
}

func addBox(w *ecs.World, e ecs.Entity, b box) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      b.X,
		Y:      b.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}

	body := b.Body
	body.Width = b.Width
	body.Height = b.Height
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}

	if b.Color.A == 0 {
		return nil
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color: b.Color,
		Alpha: 1,
	}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}

// staticSensor builds a non-moving trigger of the given category.
func staticSensor(category component.Category) component.PhysicsBody {
	return component.PhysicsBody{
		Category: category,
		Static:   true,
		Sensor:   true,
	}
}

// centre converts a top-left anchored rectangle to its centre, substituting
// defW and defH for missing sizes.
func centre(x, y, width, height, defW, defH float64) (cx, cy, w, h float64) {
	w, h = width, height
	if w <= 0 {
		w = defW
	}
	if h <= 0 {
		h = defH
	}
	return x + w/2, y + h/2, w, h
}
