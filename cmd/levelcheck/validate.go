package main

import (
	"fmt"
	"sort"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/entity"
	"github.com/milk9111/brickfall/ecs/system"
	"github.com/milk9111/brickfall/levels"
	"github.com/milk9111/brickfall/scene"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [level...]",
	Short: "Check levels for spawn problems",
	Long:  `Spawn each level into an empty world and report unknown enemy types, missing spawns, out-of-bounds objects and broken movement scripts. With no arguments every embedded level is checked.`,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = levels.Names()
	}

	failed := 0
	for _, name := range names {
		cfg, err := loadConfig(name, "")
		if err != nil {
			return err
		}
		problems := validateLevel(cfg)
		if len(problems) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", name)
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s\n", name)
		for _, p := range problems {
			fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", p)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(names))
	}
	return nil
}

// validateLevel returns a human readable list of problems, empty when the
// level is playable.
func validateLevel(cfg scene.Config) []string {
	var problems []string
	lvl := cfg.Level

	spawned, err := entity.LoadLevelToWorld(ecs.NewWorld(), lvl, entity.Catalog{
		Combat:    cfg.Combat,
		Character: cfg.Character,
		Enemies:   cfg.Enemies,
	})
	if err != nil {
		problems = append(problems, err.Error())
	}
	for _, kind := range spawned.Skipped {
		problems = append(problems, fmt.Sprintf("unknown enemy type %q", kind))
	}

	for _, layer := range []string{entity.LayerFlag, entity.LayerVoid} {
		if l, err := lvl.Layer(layer); err != nil || len(l.Objects) == 0 {
			problems = append(problems, fmt.Sprintf("no %s object", layer))
		}
	}

	for _, layer := range lvl.Layers {
		for _, obj := range layer.Objects {
			if lvl.Width > 0 && (obj.X < 0 || obj.X > lvl.Width) {
				problems = append(problems, fmt.Sprintf("%s object at x=%.0f outside level width %.0f", layer.Name, obj.X, lvl.Width))
			}
			if lvl.Height > 0 && (obj.Y < 0 || obj.Y > lvl.Height) {
				problems = append(problems, fmt.Sprintf("%s object at y=%.0f outside level height %.0f", layer.Name, obj.Y, lvl.Height))
			}
		}
	}

	scripts := make(map[string]bool)
	for _, spec := range cfg.Enemies.Enemies {
		if spec.Script != "" {
			scripts[spec.Script] = true
		}
	}
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := system.CheckActorScript(name); err != nil {
			problems = append(problems, err.Error())
		}
	}

	return problems
}
