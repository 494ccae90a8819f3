package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

var (
	coinColor = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	starColor = color.NRGBA{R: 0xff, G: 0xf4, B: 0x9c, A: 0xff}
)

const (
	coinSize = 16
	starSize = 20
)

// NewCollectibleAt spawns a coin or star trigger worth value points.
func NewCollectibleAt(w *ecs.World, kind component.CollectibleKind, value int, obj Placement) (ecs.Entity, error) {
	size := float64(coinSize)
	tint := coinColor
	if kind == component.CollectibleStar {
		size = starSize
		tint = starColor
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.CollectibleComponent.Kind(), &component.Collectible{
		Kind:  kind,
		Value: value,
	}); err != nil {
		return ecs.Null, fmt.Errorf("%s: add collectible: %w", kind, err)
	}

	cx, cy, width, height := centre(obj.X, obj.Y, obj.Width, obj.Height, size, size)
	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Color:  tint,
		Body:   staticSensor(component.CategoryCollectible),
	}); err != nil {
		return ecs.Null, fmt.Errorf("%s: %w", kind, err)
	}

	return e, nil
}
