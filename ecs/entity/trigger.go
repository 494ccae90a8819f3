package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

var flagColor = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// NewVoidAt spawns an invisible hazard zone.
func NewVoidAt(w *ecs.World, obj Placement) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return ecs.Null, fmt.Errorf("void: add hazard: %w", err)
	}
	cx, cy, width, height := centre(obj.X, obj.Y, obj.Width, obj.Height, 32, 32)
	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Body:   staticSensor(component.CategoryHazard),
	}); err != nil {
		return ecs.Null, fmt.Errorf("void: %w", err)
	}
	return e, nil
}

// NewFlagAt spawns the level's end trigger.
func NewFlagAt(w *ecs.World, obj Placement) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EndTriggerComponent.Kind(), &component.EndTrigger{}); err != nil {
		return ecs.Null, fmt.Errorf("flag: add end trigger: %w", err)
	}
	cx, cy, width, height := centre(obj.X, obj.Y, obj.Width, obj.Height, 20, 100)
	if err := addBox(w, e, box{
		X:      cx,
		Y:      cy,
		Width:  width,
		Height: height,
		Color:  flagColor,
		Body:   staticSensor(component.CategoryEndTrigger),
	}); err != nil {
		return ecs.Null, fmt.Errorf("flag: %w", err)
	}
	return e, nil
}
