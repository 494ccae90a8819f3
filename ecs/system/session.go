package system

import (
	"log"
	"time"

	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/prefabs"
)

// Outcome records which terminal path claimed the level.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	// OutcomeDeath is the hazard fall timeline.
	OutcomeDeath
	// OutcomeDefeated is health running out; the restart is immediate.
	OutcomeDefeated
	OutcomeClear
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDeath:
		return "death"
	case OutcomeDefeated:
		return "defeated"
	case OutcomeClear:
		return "clear"
	default:
		return "none"
	}
}

// Sinks bundles the collaborators a Session reports to.
type Sinks struct {
	UI     Scoreboard
	Audio  Audio
	Scenes Scenes
}

// Session is one level instance. It owns the ending guard, the hint flag
// and the contact table, and is torn down with the world on restart.
type Session struct {
	world    *ecs.World
	tuning   prefabs.CombatSpec
	ui       Scoreboard
	audio    Audio
	scenes   Scenes
	contacts *ContactTable

	ending    bool
	outcome   Outcome
	hintShown bool
	startedAt time.Duration
}

func NewSession(w *ecs.World, tuning prefabs.CombatSpec, sinks Sinks) *Session {
	s := &Session{
		world:    w,
		tuning:   tuning,
		ui:       sinks.UI,
		audio:    sinks.Audio,
		scenes:   sinks.Scenes,
		contacts: DefaultContactTable(),
	}
	if s.audio == nil {
		s.audio = NopAudio{}
	}
	return s
}

// Start records the level start time and begins the music loop.
func (s *Session) Start() {
	s.startedAt = s.world.Timeline().Now()
	if s.tuning.Sounds.Music != "" {
		s.audio.PlayLoop(s.tuning.Sounds.Music)
	}
}

// InstallSystems registers the per-frame systems in update order.
func (s *Session) InstallSystems() {
	s.world.AddSystem(NewCharacterSystem())
	s.world.AddSystem(NewControllerSystem(s))
	s.world.AddSystem(NewActorScriptSystem())
	s.world.AddSystem(NewPropCarrySystem(s))
	s.world.AddSystem(NewPhysicsSystem(s))
	s.world.AddSystem(NewContactSystem(s))
	s.world.AddSystem(NewTweenSystem())
}

func (s *Session) World() *ecs.World { return s.world }
func (s *Session) Tuning() prefabs.CombatSpec { return s.tuning }
func (s *Session) Contacts() *ContactTable { return s.contacts }
func (s *Session) Ending() bool { return s.ending }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) HintShown() bool { return s.hintShown }

// claimEnding sets the ending guard. Only the first caller gets true.
func (s *Session) claimEnding(o Outcome) bool {
	if s.ending {
		return false
	}
	s.ending = true
	s.outcome = o
	return true
}

func (s *Session) after(d time.Duration, fn func()) {
	s.world.Timeline().After(d, fn)
}

func (s *Session) character(e ecs.Entity) (*component.Character, bool) {
	return ecs.Get(s.world, e, component.CharacterComponent.Kind())
}

func (s *Session) category(e ecs.Entity) component.Category {
	body, ok := ecs.Get(s.world, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return component.CategoryNone
	}
	return body.Category
}

func (s *Session) velocity(e ecs.Entity) *component.Velocity {
	v, ok := ecs.Get(s.world, e, component.VelocityComponent.Kind())
	if !ok {
		v = &component.Velocity{}
		if err := ecs.Add(s.world, e, component.VelocityComponent.Kind(), v); err != nil {
			log.Printf("system: attach velocity to %v: %v", e, err)
		}
	}
	return v
}

func (s *Session) sprite(e ecs.Entity) (*component.Sprite, bool) {
	return ecs.Get(s.world, e, component.SpriteComponent.Kind())
}

// removeEntity destroys e after unlinking any held-prop relation through it.
func (s *Session) removeEntity(e ecs.Entity) {
	s.releaseLinks(e)
	ecs.DestroyEntity(s.world, e)
}

func toRef(e ecs.Entity) uint64 { return uint64(e) }

func fromRef(ref uint64) ecs.Entity { return ecs.Entity(ref) }
