package main

import (
	"fmt"

	"github.com/milk9111/brickfall/levels"
	"github.com/milk9111/brickfall/prefabs"
	"github.com/milk9111/brickfall/scene"
)

func loadConfig(levelName, character string) (scene.Config, error) {
	combat, err := prefabs.LoadCombatSpec()
	if err != nil {
		return scene.Config{}, err
	}
	roster, err := prefabs.LoadCharacterRoster()
	if err != nil {
		return scene.Config{}, err
	}
	preset, err := roster.Character(character)
	if err != nil {
		return scene.Config{}, err
	}
	enemies, err := prefabs.LoadEnemyRoster()
	if err != nil {
		return scene.Config{}, err
	}
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return scene.Config{}, fmt.Errorf("load level %s: %w", levelName, err)
	}
	return scene.Config{Level: lvl, Combat: *combat, Character: preset, Enemies: *enemies}, nil
}
