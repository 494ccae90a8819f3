package system

import (
	"math"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/prefabs"
)

// Verdict is the outcome of classifying a character/hostile contact.
type Verdict uint8

const (
	VerdictNone Verdict = iota
	VerdictStomp
	VerdictSideHit
)

func (v Verdict) String() string {
	switch v {
	case VerdictStomp:
		return "stomp"
	case VerdictSideHit:
		return "side_hit"
	default:
		return "none"
	}
}

// ActorContact is the snapshot the stomp test reads. Y grows downward, so a
// falling character has VY > 0.
type ActorContact struct {
	VX              float64
	VY              float64
	CharacterBottom float64
	ActorTop        float64
	ActorAlive      bool
	ContactsOpen    bool
}

// IsStomp reports whether a contact is a stomp: falling faster than the
// minimum, bottom edge within the speed-scaled band around the actor's top
// edge, and vertical speed dominating horizontal speed.
func IsStomp(c ActorContact, spec prefabs.StompSpec) bool {
	if c.VY <= spec.MinFallSpeed {
		return false
	}
	if math.Abs(c.CharacterBottom-c.ActorTop) > spec.ToleranceFor(c.VX) {
		return false
	}
	return math.Abs(c.VY) > math.Abs(c.VX)*spec.DominanceRatio
}

// ClassifyActorContact returns exactly one verdict for a contact.
func ClassifyActorContact(c ActorContact, spec prefabs.StompSpec) Verdict {
	if !c.ActorAlive || !c.ContactsOpen {
		return VerdictNone
	}
	if IsStomp(c, spec) {
		return VerdictStomp
	}
	return VerdictSideHit
}

// PropHasImpact reports whether a prop moving at v can defeat what it hits.
func PropHasImpact(p component.Prop, v component.Velocity, minSpeed float64) bool {
	if p.Held || p.State == component.PropDestroyed {
		return false
	}
	return v.Speed() > minSpeed
}

// CanPickup reports whether a holder may pick up p.
func CanPickup(holderHasProp bool, p component.Prop) bool {
	return !holderHasProp && !p.Held && !p.PickupLocked && p.State != component.PropDestroyed
}

// actorContact snapshots the character/hostile pair for classification.
func (s *Session) actorContact(ch, actor ecs.Entity) (ActorContact, bool) {
	c, ok := s.character(ch)
	if !ok {
		return ActorContact{}, false
	}
	h, ok := ecs.Get(s.world, actor, component.HostileComponent.Kind())
	if !ok {
		return ActorContact{}, false
	}
	_, _, _, bottom, ok := s.bounds(ch)
	if !ok {
		return ActorContact{}, false
	}
	_, top, _, _, ok := s.bounds(actor)
	if !ok {
		return ActorContact{}, false
	}
	gap := bottom - top
	// Wired pairs pass through each other, so a landing is only seen after
	// the step has pushed the feet into the actor. A bottom edge that was at
	// or above the top edge before the step landed on it.
	if prev, ok := s.stepStartGap(ch, actor); ok && prev <= 0 && gap >= 0 {
		gap = 0
	}
	v := s.velocity(ch)
	return ActorContact{
		VX:              v.X,
		VY:              v.Y,
		CharacterBottom: top + gap,
		ActorTop:        top,
		ActorAlive:      h.Alive,
		ContactsOpen:    !c.ActorContactsDisabled,
	}, true
}

// stepStartGap returns the character's bottom edge minus the actor's top
// edge as they were before the last physics step.
func (s *Session) stepStartGap(ch, actor ecs.Entity) (float64, bool) {
	chBody, ok := ecs.Get(s.world, ch, component.PhysicsBodyComponent.Kind())
	if !ok {
		return 0, false
	}
	actorBody, ok := ecs.Get(s.world, actor, component.PhysicsBodyComponent.Kind())
	if !ok || (!chBody.Stepped && !actorBody.Stepped) {
		return 0, false
	}
	_, _, _, bottom, _ := s.bounds(ch)
	_, top, _, _, _ := s.bounds(actor)
	if chBody.Stepped {
		bottom = chBody.PrevY + chBody.Height/2
	}
	if actorBody.Stepped {
		top = actorBody.PrevY - actorBody.Height/2
	}
	return bottom - top, true
}

func (s *Session) bounds(e ecs.Entity) (left, top, right, bottom float64, ok bool) {
	t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, false
	}
	body, ok := ecs.Get(s.world, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, false
	}
	left, top, right, bottom = body.Bounds(*t)
	return left, top, right, bottom, true
}

// ClassifyContact classifies a live character/hostile pair.
func (s *Session) ClassifyContact(ch, actor ecs.Entity) Verdict {
	c, ok := s.actorContact(ch, actor)
	if !ok {
		return VerdictNone
	}
	return ClassifyActorContact(c, s.tuning.Stomp)
}
