// Package scene runs one level at a time and carries results between scenes.
package scene

import (
	"log"

	"github.com/milk9111/brickfall/ecs/system"
)

// Registry keys written on every transition.
const (
	KeyLastScore = "lastScore"
	KeyLastStars = "lastStars"
	KeyLastTime  = "lastTime"
)

// Kind is the scene change a Director has queued.
type Kind uint8

const (
	None Kind = iota
	Restart
	Transition
)

// Change is a queued scene change.
type Change struct {
	Kind  Kind
	Scene string
	Stats system.Stats
}

// Director implements system.Scenes. Requests are queued and applied by the
// game between frames, so a level is never torn down mid-update.
type Director struct {
	pending  Change
	registry map[string]int
}

func NewDirector() *Director {
	return &Director{registry: make(map[string]int)}
}

func (d *Director) Restart() {
	if d.pending.Kind != None {
		log.Printf("scene: restart requested with %v already pending", d.pending.Kind)
		return
	}
	d.pending = Change{Kind: Restart}
}

func (d *Director) TransitionTo(name string, stats system.Stats) {
	if d.pending.Kind != None {
		log.Printf("scene: transition to %s requested with %v already pending", name, d.pending.Kind)
		return
	}
	d.registry[KeyLastScore] = stats.Score
	d.registry[KeyLastStars] = stats.Stars
	d.registry[KeyLastTime] = stats.Seconds()
	d.pending = Change{Kind: Transition, Scene: name, Stats: stats}
}

// Take returns and clears the queued change.
func (d *Director) Take() (Change, bool) {
	c := d.pending
	d.pending = Change{}
	return c, c.Kind != None
}

// Get reads a registry value.
func (d *Director) Get(key string) (int, bool) {
	v, ok := d.registry[key]
	return v, ok
}

func (k Kind) String() string {
	switch k {
	case Restart:
		return "restart"
	case Transition:
		return "transition"
	default:
		return "none"
	}
}
