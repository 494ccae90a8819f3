package system

import (
	"github.com/milk9111/brickfall/common"
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// TweenSystem advances every running tween by the frame delta.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (ts *TweenSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.TweensComponent.Kind(), func(e ecs.Entity, tw *component.Tweens) {
		var done []func()
		kept := tw.Items[:0]
		for i := range tw.Items {
			item := tw.Items[i]
			item.Elapsed += dt
			if item.Elapsed < item.Delay {
				kept = append(kept, item)
				continue
			}
			if !item.Started {
				item.From = tweenValue(w, e, item.Property)
				item.Started = true
			}
			progress := 1.0
			if item.Duration > 0 {
				progress = common.Clamp(float64(item.Elapsed-item.Delay)/float64(item.Duration), 0, 1)
			}
			setTweenValue(w, e, item.Property, common.Lerp(item.From, item.To, common.Ease(item.Ease)(progress)))
			if progress < 1 {
				kept = append(kept, item)
				continue
			}
			if item.OnComplete != nil {
				done = append(done, item.OnComplete)
			}
		}
		tw.Items = kept
		if len(tw.Items) == 0 {
			ecs.Remove(w, e, component.TweensComponent.Kind())
		}
		for _, fn := range done {
			fn()
		}
	})
}

func tweenValue(w *ecs.World, e ecs.Entity, prop component.TweenProperty) float64 {
	switch prop {
	case component.TweenAlpha:
		if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			return sp.Alpha
		}
	default:
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			if prop == component.TweenRotation {
				return t.Rotation
			}
			return t.Y
		}
	}
	return 0
}

func setTweenValue(w *ecs.World, e ecs.Entity, prop component.TweenProperty, v float64) {
	switch prop {
	case component.TweenAlpha:
		if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sp.Alpha = v
		}
	case component.TweenRotation:
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Rotation = v
		}
	default:
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Y = v
		}
	}
}
