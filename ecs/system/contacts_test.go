package system_test

import (
	"testing"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContactTablePairs(t *testing.T) {
	table := system.DefaultContactTable()
	want := []system.ContactPair{
		{A: component.CategoryCharacter, B: component.CategoryHostile},
		{A: component.CategoryCharacter, B: component.CategoryCollectible},
		{A: component.CategoryCharacter, B: component.CategoryProp},
		{A: component.CategoryCharacter, B: component.CategoryHazard},
		{A: component.CategoryCharacter, B: component.CategoryEndTrigger},
		{A: component.CategoryHostile, B: component.CategoryProp},
		{A: component.CategoryHostile, B: component.CategoryHazard},
		{A: component.CategoryProp, B: component.CategoryHazard},
	}
	assert.Equal(t, want, table.Pairs())
}

func TestContactTableLookupSwap(t *testing.T) {
	table := system.DefaultContactTable()

	b, swap, ok := table.Lookup(component.CategoryCharacter, component.CategoryHostile)
	require.True(t, ok)
	assert.False(t, swap)
	assert.Equal(t, component.CategoryCharacter, b.A)

	b, swap, ok = table.Lookup(component.CategoryHostile, component.CategoryProp)
	require.True(t, ok)
	assert.True(t, swap, "binding is declared prop first")
	assert.Equal(t, component.CategoryProp, b.A)

	_, _, ok = table.Lookup(component.CategoryHostile, component.CategorySolid)
	assert.False(t, ok)
}

func TestUnwiredContactIgnored(t *testing.T) {
	h := newHarness(t)
	actor := h.hostile(0, 0, nil)
	ground := h.solid(0, 20, 100, 20)

	assert.Empty(t, h.s.HandleContact(actor, ground))
	assert.Empty(t, h.s.HandleContact(actor, actor))
}

func TestContactSystemResolvesEachPairOncePerFrame(t *testing.T) {
	h := newHarness(t)
	h.w.AddSystem(system.NewContactSystem(h.s))

	var calls []ecs.Entity
	h.s.Contacts().Register(system.ContactBinding{
		A: component.CategorySolid, B: component.CategoryProp,
		Rules: []system.ContactRule{{
			Name:    "count",
			Resolve: func(_ *system.Session, solid, prop ecs.Entity) { calls = append(calls, prop) },
		}},
	})

	ground := h.solid(0, 20, 100, 20)
	a := h.prop(0, 0, 1)
	b := h.prop(10, 0, 1)

	events := h.w.Events()
	events.PushContact(a, ground)
	events.PushContact(ground, a)
	events.PushContact(a, ground)
	events.PushContact(b, ground)
	h.w.Update(frame)
	assert.ElementsMatch(t, []ecs.Entity{a, b}, calls)

	events.PushContact(ground, a)
	h.w.Update(frame)
	assert.Len(t, calls, 3)

	h.w.Update(frame)
	assert.Len(t, calls, 3, "queue is empty after a frame")
}

func TestSimultaneousActorsResolveIndependently(t *testing.T) {
	h := newHarness(t).quiet()
	h.w.AddSystem(system.NewContactSystem(h.s))

	ch := h.character(100, aboveActor(500, 1))
	h.setVelocity(ch, 0, 300)
	left := h.hostile(90, 500, nil)
	right := h.hostile(110, 500, nil)

	h.w.Events().PushContact(ch, left)
	h.w.Events().PushContact(right, ch)
	h.w.Update(frame)

	assert.False(t, ecs.IsAlive(h.w, left))
	c, _ := h.get(ch)
	assert.Equal(t, 3, c.Health)
	// The first stomp closes actor contacts, so the second hostile survives.
	assert.True(t, ecs.IsAlive(h.w, right))
}
