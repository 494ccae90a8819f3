package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/ecs/entity"
	"github.com/milk9111/brickfall/ecs/system"
	"github.com/milk9111/brickfall/hud"
	"github.com/milk9111/brickfall/levels"
	"github.com/milk9111/brickfall/prefabs"
)

// Config selects a level and the tuning it runs with.
type Config struct {
	Level     *levels.Level
	Combat    prefabs.CombatSpec
	Character prefabs.CharacterSpec
	Enemies   prefabs.EnemyRoster
}

// Run is one live level instance. A restart discards it and builds a new one.
type Run struct {
	World   *ecs.World
	Session *system.Session
	HUD     *hud.HUD
	Player  ecs.Entity
	Spawned entity.Spawned
	Frames  int
}

// Start spawns cfg.Level into a fresh world and starts its session.
func Start(cfg Config, audio system.Audio, scenes system.Scenes) (*Run, error) {
	if cfg.Level == nil {
		return nil, errors.New("scene: no level")
	}
	w := ecs.NewWorld()
	spawned, err := entity.LoadLevelToWorld(w, cfg.Level, entity.Catalog{
		Combat:    cfg.Combat,
		Character: cfg.Character,
		Enemies:   cfg.Enemies,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: start %s: %w", cfg.Level.Name, err)
	}

	hearts := 0
	if c, ok := ecs.Get(w, spawned.Player, component.CharacterComponent.Kind()); ok {
		hearts = c.MaxHealth
	}
	ui := hud.New(hearts, cfg.Combat.Hint.Duration)

	s := system.NewSession(w, cfg.Combat, system.Sinks{UI: ui, Audio: audio, Scenes: scenes})
	s.InstallSystems()
	s.Start()

	return &Run{
		World:   w,
		Session: s,
		HUD:     ui,
		Player:  spawned.Player,
		Spawned: spawned,
	}, nil
}

// Step advances the level by one frame.
func (r *Run) Step(dt time.Duration) {
	r.Frames++
	r.World.Update(dt)
	r.HUD.Update(dt)
}

// Input returns the player's input component for the frame about to run.
func (r *Run) Input() *component.Input {
	in, ok := ecs.Get(r.World, r.Player, component.InputComponent.Kind())
	if !ok {
		return &component.Input{}
	}
	return in
}

// PlayerPosition returns the player's centre, if the player still exists.
func (r *Run) PlayerPosition() (x, y float64, ok bool) {
	t, ok := ecs.Get(r.World, r.Player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return t.X, t.Y, true
}
