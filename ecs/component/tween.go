package component

import "time"

type TweenProperty uint8

const (
	TweenY TweenProperty = iota
	TweenRotation
	TweenAlpha
)

// Tween animates one property from its value at start toward To. From is
// captured when Delay has elapsed.
type Tween struct {
	Property TweenProperty
	To       float64
	Delay    time.Duration
	Duration time.Duration
	Ease     string

	Elapsed time.Duration
	From    float64
	Started bool
	// OnComplete runs once when the tween reaches To.
	OnComplete func()
}

// Tweens holds every running tween on an entity.
type Tweens struct {
	Items []Tween
}

var TweensComponent = NewComponent[Tweens]()
