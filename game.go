package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/brickfall/common"
	"github.com/milk9111/brickfall/levels"
	"github.com/milk9111/brickfall/prefabs"
	"github.com/milk9111/brickfall/scene"
	"github.com/milk9111/brickfall/sound"
)

const frameTime = time.Second / 60

type Options struct {
	Level     string
	Character string
	Debug     bool
	Mute      bool
	Watch     bool
}

type mode uint8

const (
	modePlaying mode = iota
	modeVictory
)

type Game struct {
	opts Options

	tuning    *prefabs.Tuning
	level     *levels.Level
	character prefabs.CharacterSpec
	enemies   prefabs.EnemyRoster

	bank     *sound.Bank
	director *scene.Director
	run      *scene.Run

	mode     mode
	camX     float64
	restarts int
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.NewTuning()
	if err != nil {
		return nil, fmt.Errorf("game: load tuning: %w", err)
	}
	if opts.Watch {
		if err := tuning.Watch(prefabs.Dir); err != nil {
			log.Printf("game: watch %s: %v", prefabs.Dir, err)
		}
	}

	roster, err := prefabs.LoadCharacterRoster()
	if err != nil {
		return nil, fmt.Errorf("game: load characters: %w", err)
	}
	character, err := roster.Character(opts.Character)
	if err != nil {
		return nil, err
	}
	enemies, err := prefabs.LoadEnemyRoster()
	if err != nil {
		return nil, fmt.Errorf("game: load enemies: %w", err)
	}
	lvl, err := levels.LoadLevelFromFS(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("game: load level %s: %w", opts.Level, err)
	}

	bank := sound.NewBank(audio.NewContext(sound.SampleRate), tuning.Combat().Sounds.Files)
	bank.SetMuted(opts.Mute)

	g := &Game{
		opts:      opts,
		tuning:    tuning,
		level:     lvl,
		character: character,
		enemies:   *enemies,
		bank:      bank,
		director:  scene.NewDirector(),
	}
	if err := g.startLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

// startLevel throws away the current world and spawns the level again with
// the latest tuning.
func (g *Game) startLevel() error {
	run, err := scene.Start(scene.Config{
		Level:     g.level,
		Combat:    g.tuning.Combat(),
		Character: g.character,
		Enemies:   g.enemies,
	}, g.bank, g.director)
	if err != nil {
		return err
	}
	g.run = run
	g.mode = modePlaying
	g.camX = 0
	return nil
}

func (g *Game) Update() error {
	if g.mode == modeVictory {
		if victoryConfirmed() {
			return g.startLevel()
		}
		return nil
	}

	if toggleMute() {
		g.bank.SetMuted(!g.bank.Muted())
	}
	readInput(g.run.Input())
	g.run.Step(frameTime)
	g.followPlayer()

	change, ok := g.director.Take()
	if !ok {
		return nil
	}
	switch change.Kind {
	case scene.Restart:
		g.restarts++
		return g.startLevel()
	case scene.Transition:
		log.Printf("game: %s cleared, moving to %s", g.level.Name, change.Scene)
		g.mode = modeVictory
	}
	return nil
}

func (g *Game) followPlayer() {
	x, _, ok := g.run.PlayerPosition()
	if !ok {
		return
	}
	target := x - common.BaseWidth/3
	maxX := g.level.Width - common.BaseWidth
	g.camX = common.Clamp(common.Lerp(g.camX, target, 0.15), 0, max(maxX, 0))
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.mode == modeVictory {
		drawVictory(screen, g.director)
		return
	}
	drawWorld(screen, g.run.World, g.camX, g.opts.Debug)
	drawHUD(screen, g.run.HUD)
	if g.opts.Debug {
		drawDebug(screen, g.run, g.restarts)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if err := g.tuning.Close(); err != nil {
		log.Printf("game: close tuning: %v", err)
	}
}
