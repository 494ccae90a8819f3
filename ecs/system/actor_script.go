package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/prefabs"
)

// scriptGlobals are the variables every movement script can read. Scripts
// write back vx, vy and dir.
var scriptGlobals = []string{"x", "y", "vx", "vy", "speed", "min_x", "max_x", "dir", "elapsed", "dt"}

// ActorScriptSystem runs each live hostile's tengo movement policy once per
// frame. Scripts are compiled once per name; a script that fails to load or
// run is logged and disabled.
type ActorScriptSystem struct {
	programs map[string]*tengo.Compiled
	broken   map[string]bool
	load     func(name string) ([]byte, error)
}

func NewActorScriptSystem() *ActorScriptSystem {
	return &ActorScriptSystem{
		programs: make(map[string]*tengo.Compiled),
		broken:   make(map[string]bool),
		load:     prefabs.LoadScript,
	}
}

func (as *ActorScriptSystem) Update(w *ecs.World) {
	dt := w.Delta().Seconds()
	ecs.ForEach3(w, component.ActorScriptComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, sc *component.ActorScript, t *component.Transform, v *component.Velocity) {
			if h, ok := ecs.Get(w, e, component.HostileComponent.Kind()); ok && !h.Alive {
				return
			}
			prog := as.program(sc.Script)
			if prog == nil {
				return
			}
			sc.Elapsed += dt
			if sc.Dir == 0 {
				sc.Dir = 1
			}
			if err := as.step(prog, sc, t, v, dt); err != nil {
				log.Printf("system: actor script %s: %v", sc.Script, err)
				as.broken[sc.Script] = true
			}
		})
}

func (as *ActorScriptSystem) step(prog *tengo.Compiled, sc *component.ActorScript, t *component.Transform, v *component.Velocity, dt float64) error {
	inputs := map[string]float64{
		"x":       t.X,
		"y":       t.Y,
		"vx":      v.X,
		"vy":      v.Y,
		"speed":   sc.Speed,
		"min_x":   sc.MinX,
		"max_x":   sc.MaxX,
		"dir":     sc.Dir,
		"elapsed": sc.Elapsed,
		"dt":      dt,
	}
	for name, value := range inputs {
		if err := prog.Set(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := prog.Run(); err != nil {
		return err
	}
	v.X = prog.Get("vx").Float()
	v.Y = prog.Get("vy").Float()
	sc.Dir = prog.Get("dir").Float()
	return nil
}

func (as *ActorScriptSystem) program(name string) *tengo.Compiled {
	if name == "" || as.broken[name] {
		return nil
	}
	if prog, ok := as.programs[name]; ok {
		return prog
	}
	src, err := as.load(name)
	if err != nil {
		log.Printf("system: load actor script %s: %v", name, err)
		as.broken[name] = true
		return nil
	}
	prog, err := compileActorScript(src)
	if err != nil {
		log.Printf("system: compile actor script %s: %v", name, err)
		as.broken[name] = true
		return nil
	}
	as.programs[name] = prog
	return prog
}

func compileActorScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, g := range scriptGlobals {
		if err := script.Add(g, 0.0); err != nil {
			return nil, err
		}
	}
	return script.Compile()
}

// CheckActorScript loads and compiles the named movement script.
func CheckActorScript(name string) error {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return fmt.Errorf("load actor script %s: %w", name, err)
	}
	if _, err := compileActorScript(src); err != nil {
		return fmt.Errorf("compile actor script %s: %w", name, err)
	}
	return nil
}
