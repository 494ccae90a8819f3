package system_test

import (
	"testing"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/ecs/system"
	"github.com/milk9111/brickfall/ecs/system/mock"
	"github.com/milk9111/brickfall/hud"
	"github.com/milk9111/brickfall/prefabs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const frame = 16 * time.Millisecond

type harness struct {
	t      *testing.T
	w      *ecs.World
	s      *system.Session
	tuning prefabs.CombatSpec
	ui     *hud.HUD
	audio  *mock.MockAudio
	scenes *mock.MockScenes
}

func loadTuning(t *testing.T) prefabs.CombatSpec {
	t.Helper()
	spec, err := prefabs.LoadCombatSpec()
	require.NoError(t, err)
	return *spec
}

// newHarness builds a session over an empty world with a real HUD and mocked
// audio and scenes. The mocks start with no expectations.
func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, nil)
}

func newHarnessWith(t *testing.T, ui system.Scoreboard) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		t:      t,
		w:      ecs.NewWorld(),
		tuning: loadTuning(t),
		audio:  mock.NewMockAudio(ctrl),
		scenes: mock.NewMockScenes(ctrl),
	}
	if ui == nil {
		h.ui = hud.New(3, h.tuning.Hint.Duration)
		ui = h.ui
	}
	h.s = system.NewSession(h.w, h.tuning, system.Sinks{UI: ui, Audio: h.audio, Scenes: h.scenes})
	return h
}

// quiet accepts any audio cue.
func (h *harness) quiet() *harness {
	h.audio.EXPECT().PlayOneShot(gomock.Any()).AnyTimes()
	h.audio.EXPECT().PlayLoop(gomock.Any()).AnyTimes()
	h.audio.EXPECT().Stop().AnyTimes()
	return h
}

func (h *harness) must(err error) {
	h.t.Helper()
	require.NoError(h.t, err)
}

func (h *harness) character(x, y float64) ecs.Entity {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	h.must(ecs.Add(h.w, e, component.CharacterComponent.Kind(), &component.Character{
		Health:    3,
		MaxHealth: 3,
		MoveSpeed: 200,
		JumpSpeed: 500,
	}))
	h.must(ecs.Add(h.w, e, component.InputComponent.Kind(), &component.Input{}))
	h.must(ecs.Add(h.w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	h.must(ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	h.must(ecs.Add(h.w, e, component.SpriteComponent.Kind(), &component.Sprite{Alpha: 1}))
	h.must(ecs.Add(h.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    28,
		Height:   40,
		Mass:     1,
		Category: component.CategoryCharacter,
	}))
	return e
}

func (h *harness) hostile(x, y float64, defeat component.Defeatable) ecs.Entity {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	h.must(ecs.Add(h.w, e, component.HostileComponent.Kind(), &component.Hostile{Variant: "blob", Alive: true, Defeat: defeat}))
	h.must(ecs.Add(h.w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	h.must(ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	h.must(ecs.Add(h.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    32,
		Height:   24,
		Mass:     1,
		Category: component.CategoryHostile,
	}))
	return e
}

func (h *harness) prop(x, y float64, durability int) ecs.Entity {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	h.must(ecs.Add(h.w, e, component.PropComponent.Kind(), &component.Prop{Color: "grey", Durability: durability}))
	h.must(ecs.Add(h.w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	h.must(ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	h.must(ecs.Add(h.w, e, component.SpriteComponent.Kind(), &component.Sprite{Alpha: 1}))
	h.must(ecs.Add(h.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    24,
		Height:   24,
		Mass:     1,
		Category: component.CategoryProp,
	}))
	return e
}

func (h *harness) collectible(kind component.CollectibleKind, value int, x, y float64) ecs.Entity {
	h.t.Helper()
	return h.trigger(component.CategoryCollectible, x, y, 16, 16, func(e ecs.Entity) error {
		return ecs.Add(h.w, e, component.CollectibleComponent.Kind(), &component.Collectible{Kind: kind, Value: value})
	})
}

func (h *harness) hazard(x, y float64) ecs.Entity {
	h.t.Helper()
	return h.trigger(component.CategoryHazard, x, y, 200, 20, func(e ecs.Entity) error {
		return ecs.Add(h.w, e, component.HazardComponent.Kind(), &component.Hazard{})
	})
}

func (h *harness) flag(x, y float64) ecs.Entity {
	h.t.Helper()
	return h.trigger(component.CategoryEndTrigger, x, y, 20, 100, func(e ecs.Entity) error {
		return ecs.Add(h.w, e, component.EndTriggerComponent.Kind(), &component.EndTrigger{})
	})
}

func (h *harness) solid(x, y, width, height float64) ecs.Entity {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	h.must(ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	h.must(ecs.Add(h.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    width,
		Height:   height,
		Friction: 0.9,
		Static:   true,
		Category: component.CategorySolid,
	}))
	return e
}

func (h *harness) trigger(cat component.Category, x, y, width, height float64, tag func(ecs.Entity) error) ecs.Entity {
	h.t.Helper()
	e := ecs.CreateEntity(h.w)
	h.must(tag(e))
	h.must(ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	h.must(ecs.Add(h.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    width,
		Height:   height,
		Static:   true,
		Sensor:   true,
		Category: cat,
	}))
	return e
}

func (h *harness) get(e ecs.Entity) (*component.Character, *component.Velocity) {
	h.t.Helper()
	c, ok := ecs.Get(h.w, e, component.CharacterComponent.Kind())
	require.True(h.t, ok)
	v, ok := ecs.Get(h.w, e, component.VelocityComponent.Kind())
	require.True(h.t, ok)
	return c, v
}

func (h *harness) propState(e ecs.Entity) *component.Prop {
	h.t.Helper()
	p, ok := ecs.Get(h.w, e, component.PropComponent.Kind())
	require.True(h.t, ok)
	return p
}

func (h *harness) setVelocity(e ecs.Entity, vx, vy float64) {
	h.t.Helper()
	v, ok := ecs.Get(h.w, e, component.VelocityComponent.Kind())
	require.True(h.t, ok)
	v.X, v.Y = vx, vy
}

// advance runs whole frames until d has elapsed.
func (h *harness) advance(d time.Duration) {
	for d > 0 {
		step := frame
		if d < step {
			step = d
		}
		h.w.Update(step)
		d -= step
	}
}

// aboveActor returns the character centre y that leaves its bottom edge gap
// pixels above the top of a hostile centred at actorY.
func aboveActor(actorY, gap float64) float64 {
	return actorY - 12 - gap - 20
}
