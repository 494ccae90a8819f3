package system

import (
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// ArmDeath starts the hazard death timeline: a short hop, a spinning fall
// and a fade, then music stops and the level restarts. Only the first
// terminal path of a level runs; later calls return false.
func (s *Session) ArmDeath(ch ecs.Entity) bool {
	if !s.claimEnding(OutcomeDeath) {
		return false
	}
	spec := s.tuning.Termination.Death
	s.freeze(ch)

	if t, ok := ecs.Get(s.world, ch, component.TransformComponent.Kind()); ok {
		s.addTweens(ch,
			component.Tween{
				Property: component.TweenY,
				To:       t.Y - spec.HopHeight,
				Duration: spec.HopDuration,
				Ease:     "QuadOut",
				OnComplete: func() {
					if body, ok := ecs.Get(s.world, ch, component.PhysicsBodyComponent.Kind()); ok {
						body.Driven = false
						body.GravityDisabled = false
					}
					s.velocity(ch).Y = spec.FallSpeed
				},
			},
			component.Tween{Property: component.TweenRotation, To: t.Rotation + spec.SpinAngle, Duration: spec.SpinTime, Ease: "CubicIn"},
			component.Tween{Property: component.TweenAlpha, To: 0, Delay: spec.FadeDelay, Duration: spec.FadeTime, Ease: "Linear"},
		)
	}
	s.audio.PlayOneShot(s.tuning.Sounds.Defeat)

	s.after(spec.Delay, func() {
		s.audio.Stop()
		if s.scenes != nil {
			s.scenes.Restart()
		}
	})
	return true
}

// ArmClear starts the level-clear timeline: the character floats up and
// fades, then the final stats are handed to the victory scene.
func (s *Session) ArmClear(ch ecs.Entity) bool {
	if !s.claimEnding(OutcomeClear) {
		return false
	}
	spec := s.tuning.Termination.Clear
	s.freeze(ch)

	s.audio.Stop()
	s.audio.PlayOneShot(s.tuning.Sounds.Clear)

	if t, ok := ecs.Get(s.world, ch, component.TransformComponent.Kind()); ok {
		s.addTweens(ch,
			component.Tween{Property: component.TweenY, To: t.Y - spec.FloatHeight, Duration: spec.FloatDuration, Ease: "SineOut"},
			component.Tween{Property: component.TweenAlpha, To: 0, Delay: spec.FadeDelay, Duration: spec.FadeTime, Ease: "QuadIn"},
		)
	}

	s.after(spec.Delay, func() {
		stats := Stats{Elapsed: s.world.Timeline().Now() - s.startedAt}
		if s.ui != nil {
			stats.Score = s.ui.Score()
			stats.Stars = s.ui.Stars()
		}
		if s.scenes != nil {
			s.scenes.TransitionTo(spec.Scene, stats)
		}
	})
	return true
}

// freeze takes the character out of play: no input, no motion, no gravity,
// no pushing against the level.
func (s *Session) freeze(ch ecs.Entity) {
	if c, ok := s.character(ch); ok {
		c.ControlsDisabled = true
	}
	v := s.velocity(ch)
	v.X, v.Y = 0, 0
	if body, ok := ecs.Get(s.world, ch, component.PhysicsBodyComponent.Kind()); ok {
		body.GravityDisabled = true
		body.CollisionDisabled = true
		body.Driven = true
	}
}

func (s *Session) addTweens(e ecs.Entity, tweens ...component.Tween) {
	tw, ok := ecs.Get(s.world, e, component.TweensComponent.Kind())
	if !ok {
		tw = &component.Tweens{}
		if err := ecs.Add(s.world, e, component.TweensComponent.Kind(), tw); err != nil {
			return
		}
	}
	tw.Items = append(tw.Items, tweens...)
}
