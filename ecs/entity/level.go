package entity

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/levels"
	"github.com/milk9111/brickfall/prefabs"
)

var ErrNoPlayer = errors.New("entity: level has no player spawn")

// Placement is one object from a level layer.
type Placement = levels.Object

// Layer names understood by LoadLevelToWorld. Other layers are ignored.
const (
	LayerPlayer  = "Player"
	LayerBricks  = "Bricks"
	LayerCoins   = "Coins"
	LayerStars   = "Stars"
	LayerEnemies = "Enemies"
	LayerVoid    = "Void"
	LayerFlag    = "Flag"
)

// Catalog is everything the spawner needs besides the level itself.
type Catalog struct {
	Combat    prefabs.CombatSpec
	Character prefabs.CharacterSpec
	Enemies   prefabs.EnemyRoster
}

// Spawned summarises a loaded level.
type Spawned struct {
	Player       ecs.Entity
	Hostiles     int
	Props        int
	Collectibles int
	// Skipped lists enemy objects whose type has no roster entry.
	Skipped []string
}

// LoadLevelToWorld creates solids, triggers, pickups, props, enemies and the
// player for lvl.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, cat Catalog) (Spawned, error) {
	var out Spawned
	if lvl == nil {
		return out, errors.New("entity: nil level")
	}

	for _, r := range lvl.Solids {
		if _, err := NewSolidAt(w, r.X, r.Y, r.W, r.H); err != nil {
			return out, err
		}
	}

	for _, layer := range lvl.Layers {
		for _, obj := range layer.Objects {
			var err error
			switch layer.Name {
			case LayerBricks:
				_, err = NewBrickAt(w, cat.Combat.Prop, obj)
				out.Props++
			case LayerCoins:
				_, err = NewCollectibleAt(w, component.CollectibleCoin, cat.Combat.Collectibles.CoinValue, obj)
				out.Collectibles++
			case LayerStars:
				_, err = NewCollectibleAt(w, component.CollectibleStar, cat.Combat.Collectibles.StarValue, obj)
				out.Collectibles++
			case LayerEnemies:
				variant := strings.ToLower(obj.Type)
				spec, ok := cat.Enemies.Enemies[variant]
				if !ok {
					log.Printf("entity: %s: unknown enemy type %q at (%.0f, %.0f), skipping", lvl.Name, obj.Type, obj.X, obj.Y)
					out.Skipped = append(out.Skipped, obj.Type)
					continue
				}
				_, err = NewHostileAt(w, variant, spec, obj, cat.Combat.Defeat.SquashDelay)
				out.Hostiles++
			case LayerVoid:
				_, err = NewVoidAt(w, obj)
			case LayerFlag:
				_, err = NewFlagAt(w, obj)
			case LayerPlayer:
				if out.Player != ecs.Null {
					log.Printf("entity: %s: extra player spawn at (%.0f, %.0f) ignored", lvl.Name, obj.X, obj.Y)
					continue
				}
				out.Player, err = NewCharacterAt(w, cat.Character, obj.X, obj.Y)
			}
			if err != nil {
				return out, fmt.Errorf("entity: %s layer %s: %w", lvl.Name, layer.Name, err)
			}
		}
	}

	if out.Player == ecs.Null {
		return out, fmt.Errorf("%w: %s", ErrNoPlayer, lvl.Name)
	}
	return out, nil
}
