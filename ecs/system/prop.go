package system

import (
	"github.com/milk9111/brickfall/common"
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// TryPickup attaches prop to ch when eligible. The first pickup of the level
// also shows the throw hint.
func (s *Session) TryPickup(ch, prop ecs.Entity) bool {
	c, ok := s.character(ch)
	if !ok || c.ControlsDisabled {
		return false
	}
	p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
	if !ok || !CanPickup(c.Held != 0, *p) {
		return false
	}
	assertf(p.HeldBy == 0, "prop %v has holder %v but is not held", prop, fromRef(p.HeldBy))

	p.Held = true
	p.HeldBy = toRef(ch)
	p.State = component.PropHeld
	c.Held = toRef(prop)

	if body, ok := ecs.Get(s.world, prop, component.PhysicsBodyComponent.Kind()); ok {
		body.GravityDisabled = true
		body.CollisionDisabled = true
		body.Driven = true
	}
	v := s.velocity(prop)
	v.X, v.Y = 0, 0
	s.carry(ch, prop)

	if !s.hintShown {
		s.hintShown = true
		if s.ui != nil && s.tuning.Hint.Pickup != "" {
			s.ui.ShowHint(s.tuning.Hint.Pickup)
		}
	}
	return true
}

// Throw launches the held prop in the holder's facing direction and locks
// it against pickup until the cooldown passes.
func (s *Session) Throw(ch ecs.Entity) bool {
	c, ok := s.character(ch)
	if !ok || c.Held == 0 {
		return false
	}
	prop := fromRef(c.Held)
	p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
	if !ok {
		c.Held = 0
		return false
	}
	assertf(p.HeldBy == toRef(ch), "character %v holds %v but prop points at %v", ch, prop, fromRef(p.HeldBy))

	p.Held = false
	p.HeldBy = 0
	p.PickupLocked = true
	p.State = component.PropInFlight
	c.Held = 0

	if body, ok := ecs.Get(s.world, prop, component.PhysicsBodyComponent.Kind()); ok {
		body.GravityDisabled = false
		body.CollisionDisabled = false
		body.Driven = false
	}

	boost := c.ThrowBoost
	if boost <= 0 {
		boost = 1
	}
	v := s.velocity(prop)
	v.X = common.Facing(c.FacingLeft) * s.tuning.Prop.ThrowX * boost
	v.Y = -s.tuning.Prop.ThrowY * boost

	s.after(s.tuning.Prop.PickupCooldown, func() {
		p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
		if !ok {
			return
		}
		p.PickupLocked = false
		if p.State == component.PropInFlight {
			p.State = component.PropIdle
		}
	})
	return true
}

// damageProp spends one point of durability, destroying the prop at zero and
// flashing it otherwise.
func (s *Session) damageProp(prop ecs.Entity) {
	p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
	if !ok {
		return
	}
	p.Durability--
	if p.Durability <= 0 {
		p.State = component.PropDestroyed
		s.removeEntity(prop)
		return
	}

	sp, ok := s.sprite(prop)
	if !ok {
		return
	}
	sp.Tint = s.tuning.Prop.FlashTint.NRGBA
	sp.Tinted = true
	s.after(s.tuning.Prop.HitFlash, func() {
		if sp, ok := s.sprite(prop); ok {
			sp.Tinted = false
		}
	})
}

// destroyProp removes a prop outright, as when it falls into the void.
func (s *Session) destroyProp(prop ecs.Entity) {
	if p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind()); ok {
		p.State = component.PropDestroyed
	}
	s.removeEntity(prop)
}

// carry snaps a held prop to its holder's hand.
func (s *Session) carry(ch, prop ecs.Entity) {
	c, ok := s.character(ch)
	if !ok {
		return
	}
	ht, ok := ecs.Get(s.world, ch, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(s.world, prop, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pt.X = ht.X + common.Facing(c.FacingLeft)*s.tuning.Prop.HoldOffsetX
	pt.Y = ht.Y + s.tuning.Prop.HoldOffsetY
}

// releaseLinks clears the held relation on both sides when either end is
// about to be destroyed, so neither side keeps a dangling reference.
func (s *Session) releaseLinks(e ecs.Entity) {
	if c, ok := s.character(e); ok && c.Held != 0 {
		prop := fromRef(c.Held)
		c.Held = 0
		s.dropProp(prop)
	}
	if p, ok := ecs.Get(s.world, e, component.PropComponent.Kind()); ok && p.HeldBy != 0 {
		if c, ok := s.character(fromRef(p.HeldBy)); ok && c.Held == toRef(e) {
			c.Held = 0
		}
		s.dropProp(e)
	}
}

// dropProp lets go of a prop without throwing it.
func (s *Session) dropProp(prop ecs.Entity) {
	p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
	if !ok {
		return
	}
	p.Held = false
	p.HeldBy = 0
	if p.State == component.PropHeld {
		p.State = component.PropIdle
	}
	if body, ok := ecs.Get(s.world, prop, component.PhysicsBodyComponent.Kind()); ok {
		body.GravityDisabled = false
		body.CollisionDisabled = false
		body.Driven = false
	}
}

// PropCarrySystem keeps held props in their holder's hand each frame.
type PropCarrySystem struct {
	s *Session
}

func NewPropCarrySystem(s *Session) *PropCarrySystem {
	return &PropCarrySystem{s: s}
}

func (ps *PropCarrySystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.PropComponent.Kind(), func(e ecs.Entity, p *component.Prop) {
		if !p.Held {
			return
		}
		holder := fromRef(p.HeldBy)
		if !ecs.IsAlive(w, holder) {
			ps.s.releaseLinks(e)
			return
		}
		ps.s.carry(holder, e)
	})
}
