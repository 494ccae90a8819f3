package entity

import (
	"testing"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/levels"
	"github.com/milk9111/brickfall/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	combat, err := prefabs.LoadCombatSpec()
	require.NoError(t, err)
	roster, err := prefabs.LoadCharacterRoster()
	require.NoError(t, err)
	character, err := roster.Character("")
	require.NoError(t, err)
	enemies, err := prefabs.LoadEnemyRoster()
	require.NoError(t, err)
	return Catalog{Combat: *combat, Character: character, Enemies: *enemies}
}

func countWith[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}

func TestLoadForestLevel(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("forest")
	require.NoError(t, err)

	w := ecs.NewWorld()
	spawned, err := LoadLevelToWorld(w, lvl, testCatalog(t))
	require.NoError(t, err)

	assert.True(t, ecs.IsAlive(w, spawned.Player))
	assert.Empty(t, spawned.Skipped)
	assert.Equal(t, spawned.Hostiles, countWith(w, component.HostileComponent.Kind()))
	assert.Equal(t, spawned.Props, countWith(w, component.PropComponent.Kind()))
	assert.Equal(t, spawned.Collectibles, countWith(w, component.CollectibleComponent.Kind()))
	assert.Equal(t, 1, countWith(w, component.EndTriggerComponent.Kind()))
	assert.Equal(t, 1, countWith(w, component.HazardComponent.Kind()))
	assert.Equal(t, 1, countWith(w, component.CharacterComponent.Kind()))
}

func TestPlayerFromPreset(t *testing.T) {
	cat := testCatalog(t)
	lvl := &levels.Level{
		Name:   "t",
		Layers: []levels.ObjectLayer{{Name: LayerPlayer, Objects: []levels.Object{{X: 100, Y: 200}}}},
	}
	w := ecs.NewWorld()
	spawned, err := LoadLevelToWorld(w, lvl, cat)
	require.NoError(t, err)

	ch, ok := ecs.Get(w, spawned.Player, component.CharacterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cat.Character.Hearts, ch.Health)
	assert.Equal(t, ch.Health, ch.MaxHealth)
	assert.Equal(t, cat.Character.StompBoost, ch.StompBoost)

	body, ok := ecs.Get(w, spawned.Player, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.CategoryCharacter, body.Category)

	tr, ok := ecs.Get(w, spawned.Player, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 100+cat.Character.Width/2, tr.X, 1e-9)
	assert.InDelta(t, 200+cat.Character.Height/2, tr.Y, 1e-9)
	assert.True(t, ecs.Has(w, spawned.Player, component.InputComponent.Kind()))
}

func TestMissingPlayer(t *testing.T) {
	_, err := LoadLevelToWorld(ecs.NewWorld(), &levels.Level{Name: "empty"}, testCatalog(t))
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestUnknownEnemySkipped(t *testing.T) {
	lvl := &levels.Level{
		Name: "t",
		Layers: []levels.ObjectLayer{
			{Name: LayerPlayer, Objects: []levels.Object{{X: 0, Y: 0}}},
			{Name: LayerEnemies, Objects: []levels.Object{{Type: "dragon", X: 10, Y: 10}, {Type: "Blob", X: 50, Y: 10}}},
		},
	}
	w := ecs.NewWorld()
	spawned, err := LoadLevelToWorld(w, lvl, testCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"dragon"}, spawned.Skipped)
	assert.Equal(t, 1, spawned.Hostiles)
}

func TestEnemyDefeatStyles(t *testing.T) {
	cat := testCatalog(t)
	w := ecs.NewWorld()

	blob, err := NewHostileAt(w, "blob", cat.Enemies.Enemies["blob"], Placement{X: 0, Y: 0}, 250*time.Millisecond)
	require.NoError(t, err)
	h, _ := ecs.Get(w, blob, component.HostileComponent.Kind())
	assert.Equal(t, component.SquashDefeat{Delay: 250 * time.Millisecond}, h.Defeat)
	assert.True(t, h.Alive)

	bee, err := NewHostileAt(w, "bee", cat.Enemies.Enemies["bee"], Placement{X: 0, Y: 0, Props: map[string]interface{}{"range": 40}}, 0)
	require.NoError(t, err)
	h, _ = ecs.Get(w, bee, component.HostileComponent.Kind())
	assert.Equal(t, component.RemoveDefeat{}, h.Defeat)

	body, _ := ecs.Get(w, bee, component.PhysicsBodyComponent.Kind())
	assert.True(t, body.GravityDisabled)

	sc, ok := ecs.Get(w, bee, component.ActorScriptComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 40.0, sc.MaxX-sc.MinX, 1e-9)
}

func TestBrickDurabilityByColour(t *testing.T) {
	cat := testCatalog(t)
	w := ecs.NewWorld()

	for colour, want := range map[string]int{"brown": 1, "grey": 2, "": 1} {
		e, err := NewBrickAt(w, cat.Combat.Prop, Placement{Props: map[string]interface{}{"color": colour}})
		require.NoError(t, err)
		p, ok := ecs.Get(w, e, component.PropComponent.Kind())
		require.True(t, ok)
		assert.Equal(t, want, p.Durability, colour)
		assert.Equal(t, component.PropIdle, p.State)
	}
}

func TestCollectiblesAreStaticSensors(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCollectibleAt(w, component.CollectibleStar, 1000, Placement{X: 10, Y: 10})
	require.NoError(t, err)

	c, _ := ecs.Get(w, e, component.CollectibleComponent.Kind())
	assert.Equal(t, 1000, c.Value)
	assert.False(t, c.Collected)

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	assert.True(t, body.Static)
	assert.True(t, body.Sensor)
	assert.Equal(t, component.CategoryCollectible, body.Category)
	assert.Equal(t, float64(starSize), body.Width)
}
