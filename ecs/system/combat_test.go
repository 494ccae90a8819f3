package system_test

import (
	"testing"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStompDefeatsAndRebounds(t *testing.T) {
	h := newHarness(t)
	h.audio.EXPECT().PlayOneShot(h.tuning.Sounds.Defeat).Times(1)

	actor := h.hostile(100, 500, nil)
	ch := h.character(100, aboveActor(500, 2))
	h.setVelocity(ch, 0, 300)

	assert.Equal(t, "stomp", h.s.HandleContact(actor, ch))
	assert.False(t, ecs.IsAlive(h.w, actor))

	c, v := h.get(ch)
	assert.Equal(t, -h.tuning.Stomp.Rebound, v.Y)
	assert.Equal(t, 3, c.Health)
	assert.Equal(t, h.tuning.Stomp.Score, h.ui.Score())
	assert.True(t, c.ActorContactsDisabled)

	other := h.hostile(100, 500, nil)
	assert.Empty(t, h.s.HandleContact(ch, other), "contacts are suppressed right after a stomp")

	h.advance(h.tuning.Stomp.ContactSuppression)
	assert.False(t, c.ActorContactsDisabled)
}

func TestStompBoostScalesRebound(t *testing.T) {
	h := newHarness(t).quiet()
	actor := h.hostile(100, 500, nil)
	ch := h.character(100, aboveActor(500, 0))
	c, v := h.get(ch)
	c.StompBoost = 1.5
	v.Y = 300

	h.s.Stomp(ch, actor)
	assert.InDelta(t, -h.tuning.Stomp.Rebound*1.5, v.Y, 1e-9)
}

func TestSquashDefeatDelaysRemoval(t *testing.T) {
	h := newHarness(t).quiet()
	delay := h.tuning.Defeat.SquashDelay
	actor := h.hostile(100, 500, component.SquashDefeat{Delay: delay})
	require.NoError(t, ecs.Add(h.w, actor, component.ActorScriptComponent.Kind(), &component.ActorScript{Script: "patrol.tengo"}))
	ch := h.character(100, aboveActor(500, 1))
	h.setVelocity(ch, 0, 300)

	require.Equal(t, "stomp", h.s.HandleContact(ch, actor))

	require.True(t, ecs.IsAlive(h.w, actor))
	hostile, _ := ecs.Get(h.w, actor, component.HostileComponent.Kind())
	assert.False(t, hostile.Alive)
	tr, _ := ecs.Get(h.w, actor, component.TransformComponent.Kind())
	assert.Equal(t, 0.5, tr.ScaleY)
	body, _ := ecs.Get(h.w, actor, component.PhysicsBodyComponent.Kind())
	assert.True(t, body.CollisionDisabled)
	assert.False(t, ecs.Has(h.w, actor, component.ActorScriptComponent.Kind()))

	assert.False(t, h.s.Defeat(actor), "already defeated")

	h.w.Update(delay - time.Millisecond)
	assert.True(t, ecs.IsAlive(h.w, actor))
	h.w.Update(time.Millisecond)
	assert.False(t, ecs.IsAlive(h.w, actor))
}

func TestSideHitInvincibility(t *testing.T) {
	h := newHarness(t)
	h.audio.EXPECT().PlayOneShot(h.tuning.Sounds.Hit).Times(2)
	h.w.AddSystem(system.NewCharacterSystem())

	actor := h.hostile(100, 500, nil)
	ch := h.character(90, 500)
	c, _ := h.get(ch)

	for i := 0; i < 5; i++ {
		h.s.HandleContact(ch, actor)
	}
	assert.Equal(t, 2, c.Health)
	assert.Equal(t, 2, h.ui.Hearts())
	assert.True(t, c.Invincible)
	assert.True(t, c.HitStunned)

	sp, _ := ecs.Get(h.w, ch, component.SpriteComponent.Kind())
	assert.True(t, sp.Tinted)
	assert.Equal(t, h.tuning.Damage.Alpha, sp.Alpha)

	h.advance(h.tuning.Damage.HitStun)
	assert.False(t, c.HitStunned)
	assert.True(t, c.Invincible)

	for i := 0; i < 3; i++ {
		h.s.SideHit(ch)
	}
	assert.Equal(t, 2, c.Health)

	h.advance(h.tuning.Damage.Invincibility)
	assert.False(t, c.Invincible)
	assert.False(t, sp.Tinted)
	assert.Equal(t, 1.0, sp.Alpha)

	h.s.SideHit(ch)
	assert.Equal(t, 1, c.Health)
}

func TestLastHeartRestartsOnce(t *testing.T) {
	h := newHarness(t)
	h.audio.EXPECT().PlayOneShot(h.tuning.Sounds.Hit).Times(1)
	h.audio.EXPECT().Stop().Times(1)
	h.scenes.EXPECT().Restart().Times(1)

	ch := h.character(90, 500)
	c, _ := h.get(ch)
	c.Health = 1

	h.s.SideHit(ch)
	assert.Equal(t, 0, c.Health)
	assert.True(t, h.s.Ending())
	assert.Equal(t, system.OutcomeDefeated, h.s.Outcome())
	assert.True(t, c.ControlsDisabled)

	h.s.SideHit(ch)
	assert.False(t, h.s.ArmDeath(ch))

	h.advance(2 * time.Second)
	assert.True(t, c.HitStunned, "a dead character stays stunned")
}

func TestCollectAtMostOnce(t *testing.T) {
	h := newHarness(t)
	h.audio.EXPECT().PlayOneShot(h.tuning.Sounds.Coin).Times(1)

	ch := h.character(0, 0)
	coin := h.collectible(component.CollectibleCoin, 100, 0, 0)

	h.s.Collect(ch, coin)
	h.s.Collect(ch, coin)
	assert.Empty(t, h.s.HandleContact(ch, coin))

	assert.Equal(t, 100, h.ui.Score())
	assert.False(t, ecs.IsAlive(h.w, coin))
}

func TestCollectStar(t *testing.T) {
	h := newHarness(t)
	h.audio.EXPECT().PlayOneShot(h.tuning.Sounds.Star).Times(1)

	ch := h.character(0, 0)
	star := h.collectible(component.CollectibleStar, 1000, 0, 0)

	assert.Equal(t, "collect", h.s.HandleContact(star, ch))
	assert.Equal(t, 1, h.ui.Stars())
	assert.Equal(t, 1000, h.ui.Score())
}

func TestPropImpactThreshold(t *testing.T) {
	t.Run("fast prop defeats once and chips durability", func(t *testing.T) {
		h := newHarness(t)
		h.audio.EXPECT().PlayOneShot(h.tuning.Sounds.Defeat).Times(1)

		actor := h.hostile(100, 500, nil)
		prop := h.prop(100, 500, 2)
		h.setVelocity(prop, 60, 30)

		assert.Equal(t, "prop_impact", h.s.HandleContact(actor, prop))
		assert.False(t, ecs.IsAlive(h.w, actor))
		assert.True(t, ecs.IsAlive(h.w, prop))
		p := h.propState(prop)
		assert.Equal(t, 1, p.Durability)
		assert.NotEqual(t, component.PropDestroyed, p.State)
		assert.Equal(t, 200, h.ui.Score())
	})

	t.Run("slow prop passes through", func(t *testing.T) {
		h := newHarness(t)
		actor := h.hostile(100, 500, nil)
		prop := h.prop(100, 500, 2)
		h.setVelocity(prop, 50, 30)

		assert.Empty(t, h.s.HandleContact(prop, actor))
		assert.True(t, ecs.IsAlive(h.w, actor))
		assert.Equal(t, 2, h.propState(prop).Durability)
		assert.Zero(t, h.ui.Score())
	})

	t.Run("defeated actor costs no durability", func(t *testing.T) {
		h := newHarness(t).quiet()
		actor := h.hostile(100, 500, component.SquashDefeat{Delay: time.Second})
		prop := h.prop(100, 500, 2)
		h.setVelocity(prop, 200, 0)

		h.s.PropImpact(prop, actor)
		h.s.PropImpact(prop, actor)
		assert.Equal(t, 1, h.propState(prop).Durability)
		assert.Equal(t, 200, h.ui.Score())
	})

	t.Run("last durability destroys prop", func(t *testing.T) {
		h := newHarness(t).quiet()
		actor := h.hostile(100, 500, nil)
		prop := h.prop(100, 500, 1)
		h.setVelocity(prop, 200, 0)

		h.s.PropImpact(prop, actor)
		assert.False(t, ecs.IsAlive(h.w, prop))
	})

	t.Run("surviving prop flashes", func(t *testing.T) {
		h := newHarness(t).quiet()
		actor := h.hostile(100, 500, nil)
		prop := h.prop(100, 500, 2)
		h.setVelocity(prop, 200, 0)

		h.s.PropImpact(prop, actor)
		sp, _ := ecs.Get(h.w, prop, component.SpriteComponent.Kind())
		assert.True(t, sp.Tinted)
		h.advance(h.tuning.Prop.HitFlash)
		assert.False(t, sp.Tinted)
	})
}

func TestActorAndPropFallIntoVoid(t *testing.T) {
	h := newHarness(t)
	void := h.hazard(0, 600)
	actor := h.hostile(0, 600, component.SquashDefeat{Delay: time.Second})
	prop := h.prop(0, 600, 2)

	assert.Equal(t, "actor_fall", h.s.HandleContact(actor, void))
	hostile, _ := ecs.Get(h.w, actor, component.HostileComponent.Kind())
	assert.False(t, hostile.Alive)

	assert.Equal(t, "prop_fall", h.s.HandleContact(void, prop))
	assert.False(t, ecs.IsAlive(h.w, prop))
	assert.False(t, h.s.Ending())
}
