package system

//go:generate mockgen -destination=mock/mock_sinks.go -package=mock github.com/milk9111/brickfall/ecs/system Scoreboard,Audio,Scenes

import "time"

// Scoreboard is the HUD's narrow mutation interface. The core never reads
// tallies back for decisions, only for the final stats capture.
type Scoreboard interface {
	AddScore(amount int)
	LoseHeart()
	Hearts() int
	AddStar()
	Stars() int
	Score() int
	ShowHint(message string)
}

// Audio is a fire-and-forget sound sink.
type Audio interface {
	PlayOneShot(key string)
	PlayLoop(key string)
	Stop()
}

// Scenes performs scene changes on behalf of the level.
type Scenes interface {
	Restart()
	TransitionTo(scene string, stats Stats)
}

// Stats is the payload carried into the victory scene.
type Stats struct {
	Score   int
	Stars   int
	Elapsed time.Duration
}

// Seconds returns elapsed play time truncated to whole seconds.
func (s Stats) Seconds() int {
	return int(s.Elapsed / time.Second)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) PlayOneShot(string) {}
func (NopAudio) PlayLoop(string)    {}
func (NopAudio) Stop()              {}
