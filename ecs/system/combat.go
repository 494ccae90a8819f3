package system

import (
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// Stomp defeats the actor, bounces the character and briefly ignores
// further character/hostile contacts so the remnant cannot land a side hit.
func (s *Session) Stomp(ch, actor ecs.Entity) {
	c, ok := s.character(ch)
	if !ok {
		return
	}
	if !s.Defeat(actor) {
		return
	}
	s.audio.PlayOneShot(s.tuning.Sounds.Defeat)

	boost := c.StompBoost
	if boost <= 0 {
		boost = 1
	}
	s.velocity(ch).Y = -s.tuning.Stomp.Rebound * boost

	c.ActorContactsDisabled = true
	s.after(s.tuning.Stomp.ContactSuppression, func() {
		if c, ok := s.character(ch); ok {
			c.ActorContactsDisabled = false
		}
	})

	if s.ui != nil && s.tuning.Stomp.Score > 0 {
		s.ui.AddScore(s.tuning.Stomp.Score)
	}
}

// SideHit damages the character by one heart unless it is invincible.
func (s *Session) SideHit(ch ecs.Entity) {
	c, ok := s.character(ch)
	if !ok || c.Invincible {
		return
	}
	spec := s.tuning.Damage

	s.audio.PlayOneShot(s.tuning.Sounds.Hit)
	c.HitStunned = true
	s.after(spec.HitStun, func() {
		c, ok := s.character(ch)
		if !ok || c.Health <= 0 || s.ending {
			return
		}
		c.HitStunned = false
	})

	c.Invincible = true
	c.InvincibleRemaining = spec.Invincibility
	if sp, ok := s.sprite(ch); ok {
		sp.Tint = spec.Tint.NRGBA
		sp.Tinted = true
		sp.Alpha = spec.Alpha
	}

	if c.Health > 0 {
		c.Health--
	}
	if s.ui != nil {
		s.ui.LoseHeart()
	}
	if c.Health <= 0 {
		s.defeated(ch)
	}
}

// defeated ends the level immediately when the character runs out of health.
func (s *Session) defeated(ch ecs.Entity) {
	if !s.claimEnding(OutcomeDefeated) {
		return
	}
	if c, ok := s.character(ch); ok {
		c.ControlsDisabled = true
	}
	s.audio.Stop()
	if s.scenes != nil {
		s.scenes.Restart()
	}
}

// Collect awards a collectible once. Repeat calls for the same item, or for
// an item already removed, do nothing.
func (s *Session) Collect(ch, item ecs.Entity) {
	col, ok := ecs.Get(s.world, item, component.CollectibleComponent.Kind())
	if !ok || col.Collected {
		return
	}
	col.Collected = true

	switch col.Kind {
	case component.CollectibleStar:
		if s.ui != nil {
			s.ui.AddStar()
			s.ui.AddScore(col.Value)
		}
		s.audio.PlayOneShot(s.tuning.Sounds.Star)
	default:
		if s.ui != nil {
			s.ui.AddScore(col.Value)
		}
		s.audio.PlayOneShot(s.tuning.Sounds.Coin)
	}
	s.removeEntity(item)
}

// PropImpact resolves a prop striking a hostile. Held or slow props do nothing.
func (s *Session) PropImpact(prop, actor ecs.Entity) {
	p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
	if !ok || !PropHasImpact(*p, *s.velocity(prop), s.tuning.Prop.MinImpactSpeed) {
		return
	}
	if !s.Defeat(actor) {
		return
	}
	s.audio.PlayOneShot(s.tuning.Sounds.Defeat)
	if s.ui != nil {
		s.ui.AddScore(s.tuning.Prop.KillScore)
	}
	s.damageProp(prop)
}

// Defeat applies the actor's defeat behaviour. It reports false when the
// actor was missing or already defeated.
func (s *Session) Defeat(actor ecs.Entity) bool {
	h, ok := ecs.Get(s.world, actor, component.HostileComponent.Kind())
	if !ok || !h.Alive {
		return false
	}
	h.Alive = false

	d := h.Defeat
	if d == nil {
		d = component.RemoveDefeat{}
	}
	d.Defeat(&component.DefeatContext{
		Remove: func() { s.removeEntity(actor) },
		Freeze: func() {
			v := s.velocity(actor)
			v.X, v.Y = 0, 0
			if body, ok := ecs.Get(s.world, actor, component.PhysicsBodyComponent.Kind()); ok {
				body.CollisionDisabled = true
				body.GravityDisabled = true
			}
			ecs.Remove(s.world, actor, component.ActorScriptComponent.Kind())
		},
		Flatten: func() {
			if t, ok := ecs.Get(s.world, actor, component.TransformComponent.Kind()); ok {
				t.ScaleX = 1.2
				t.ScaleY = 0.5
			}
		},
		After: s.after,
	})
	return true
}
