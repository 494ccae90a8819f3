package system

import (
	"sort"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

// ContactPair is an unordered pair of categories, stored with A <= B.
type ContactPair struct {
	A component.Category
	B component.Category
}

func (p ContactPair) normalized() (ContactPair, bool) {
	if p.A > p.B {
		return ContactPair{A: p.B, B: p.A}, true
	}
	return p, false
}

func (p ContactPair) involves(c component.Category) bool {
	return p.A == c || p.B == c
}

// ContactRule pairs an optional process predicate with a resolver. Both
// receive entities in the order of the binding's declared categories.
type ContactRule struct {
	Name    string
	Process func(s *Session, a, b ecs.Entity) bool
	Resolve func(s *Session, a, b ecs.Entity)
}

// ContactBinding is the wiring for one category pair. Guard, when set, must
// pass before any rule is considered; the first rule whose Process passes
// (or has none) resolves the contact.
type ContactBinding struct {
	A     component.Category
	B     component.Category
	Guard func(s *Session, a, b ecs.Entity) bool
	Rules []ContactRule
}

// ContactTable maps category pairs to bindings. It is built once per level.
type ContactTable struct {
	bindings map[ContactPair]*ContactBinding
}

func NewContactTable() *ContactTable {
	return &ContactTable{bindings: make(map[ContactPair]*ContactBinding)}
}

// Register adds or replaces the binding for its category pair.
func (t *ContactTable) Register(b ContactBinding) {
	key, _ := ContactPair{A: b.A, B: b.B}.normalized()
	binding := b
	t.bindings[key] = &binding
}

// Lookup finds the binding for two categories. swap reports that the
// caller's entities must be exchanged to match the binding's order.
func (t *ContactTable) Lookup(a, b component.Category) (binding *ContactBinding, swap bool, ok bool) {
	key, _ := ContactPair{A: a, B: b}.normalized()
	binding, ok = t.bindings[key]
	if !ok {
		return nil, false, false
	}
	return binding, binding.A != a, true
}

// Pairs lists the registered pairs in a stable order.
func (t *ContactTable) Pairs() []ContactPair {
	out := make([]ContactPair, 0, len(t.bindings))
	for key := range t.bindings {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// DefaultContactTable wires every gameplay pair.
func DefaultContactTable() *ContactTable {
	t := NewContactTable()

	t.Register(ContactBinding{
		A: component.CategoryCharacter, B: component.CategoryHostile,
		Guard: func(s *Session, ch, actor ecs.Entity) bool {
			return s.ClassifyContact(ch, actor) != VerdictNone
		},
		Rules: []ContactRule{
			{
				Name: "stomp",
				Process: func(s *Session, ch, actor ecs.Entity) bool {
					return s.ClassifyContact(ch, actor) == VerdictStomp
				},
				Resolve: func(s *Session, ch, actor ecs.Entity) { s.Stomp(ch, actor) },
			},
			{
				Name:    "side_hit",
				Resolve: func(s *Session, ch, _ ecs.Entity) { s.SideHit(ch) },
			},
		},
	})

	t.Register(ContactBinding{
		A: component.CategoryCharacter, B: component.CategoryCollectible,
		Rules: []ContactRule{{Name: "collect", Resolve: func(s *Session, ch, item ecs.Entity) { s.Collect(ch, item) }}},
	})

	t.Register(ContactBinding{
		A: component.CategoryCharacter, B: component.CategoryProp,
		Rules: []ContactRule{{
			Name: "pickup",
			Process: func(s *Session, ch, prop ecs.Entity) bool {
				c, ok := s.character(ch)
				if !ok {
					return false
				}
				p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
				return ok && CanPickup(c.Held != 0, *p)
			},
			Resolve: func(s *Session, ch, prop ecs.Entity) { s.TryPickup(ch, prop) },
		}},
	})

	t.Register(ContactBinding{
		A: component.CategoryProp, B: component.CategoryHostile,
		Rules: []ContactRule{{
			Name: "prop_impact",
			Process: func(s *Session, prop, _ ecs.Entity) bool {
				p, ok := ecs.Get(s.world, prop, component.PropComponent.Kind())
				return ok && PropHasImpact(*p, *s.velocity(prop), s.tuning.Prop.MinImpactSpeed)
			},
			Resolve: func(s *Session, prop, actor ecs.Entity) { s.PropImpact(prop, actor) },
		}},
	})

	t.Register(ContactBinding{
		A: component.CategoryCharacter, B: component.CategoryHazard,
		Rules: []ContactRule{{Name: "fall_death", Resolve: func(s *Session, ch, _ ecs.Entity) { s.ArmDeath(ch) }}},
	})

	t.Register(ContactBinding{
		A: component.CategoryHostile, B: component.CategoryHazard,
		Rules: []ContactRule{{Name: "actor_fall", Resolve: func(s *Session, actor, _ ecs.Entity) { s.Defeat(actor) }}},
	})

	t.Register(ContactBinding{
		A: component.CategoryProp, B: component.CategoryHazard,
		Rules: []ContactRule{{Name: "prop_fall", Resolve: func(s *Session, prop, _ ecs.Entity) { s.destroyProp(prop) }}},
	})

	t.Register(ContactBinding{
		A: component.CategoryCharacter, B: component.CategoryEndTrigger,
		Rules: []ContactRule{{Name: "level_clear", Resolve: func(s *Session, ch, _ ecs.Entity) { s.ArmClear(ch) }}},
	})

	return t
}

// HandleContact classifies and resolves one contact between a and b. It
// returns the name of the rule that fired, or "" when nothing applied.
// Contacts involving the character are ignored once the level is ending.
func (s *Session) HandleContact(a, b ecs.Entity) string {
	if a == b || !ecs.IsAlive(s.world, a) || !ecs.IsAlive(s.world, b) {
		return ""
	}
	binding, swap, ok := s.contacts.Lookup(s.category(a), s.category(b))
	if !ok {
		return ""
	}
	if swap {
		a, b = b, a
	}
	if s.ending && (binding.A == component.CategoryCharacter || binding.B == component.CategoryCharacter) {
		return ""
	}
	if binding.Guard != nil && !binding.Guard(s, a, b) {
		return ""
	}
	for _, rule := range binding.Rules {
		if rule.Process != nil && !rule.Process(s, a, b) {
			continue
		}
		rule.Resolve(s, a, b)
		return rule.Name
	}
	return ""
}

// ContactSystem drains the frame's contact events and resolves each
// unordered entity pair at most once.
type ContactSystem struct {
	s *Session
}

func NewContactSystem(s *Session) *ContactSystem {
	return &ContactSystem{s: s}
}

type entityPair struct {
	lo ecs.Entity
	hi ecs.Entity
}

func makeEntityPair(a, b ecs.Entity) entityPair {
	if a > b {
		a, b = b, a
	}
	return entityPair{lo: a, hi: b}
}

func (cs *ContactSystem) Update(w *ecs.World) {
	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}
	seen := make(map[entityPair]struct{}, len(events))
	for _, evt := range events {
		if evt.Type != ecs.EventContact {
			continue
		}
		c, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		key := makeEntityPair(c.A, c.B)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cs.s.HandleContact(c.A, c.B)
	}
}
