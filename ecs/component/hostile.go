package component

import "time"

// Hostile is any enemy variant. Variants differ in movement script and in
// how they are defeated.
type Hostile struct {
	Variant string
	Alive   bool
	// Defeat is nil for the default unconditional removal.
	Defeat Defeatable
}

var HostileComponent = NewComponent[Hostile]()

// Defeatable is the capability every hostile exposes once its defeat has
// been decided. Implementations act only through the context callbacks.
type Defeatable interface {
	Defeat(ctx *DefeatContext)
}

// DefeatContext gives a Defeatable narrow access to the world.
type DefeatContext struct {
	// Remove destroys the entity and its body.
	Remove func()
	// Freeze zeroes velocity and stops the body from pushing anything.
	Freeze func()
	// Flatten applies the squashed look.
	Flatten func()
	// After schedules fn on the level timeline.
	After func(d time.Duration, fn func())
}

// RemoveDefeat is the default: the entity disappears immediately.
type RemoveDefeat struct{}

func (RemoveDefeat) Defeat(ctx *DefeatContext) {
	if ctx != nil && ctx.Remove != nil {
		ctx.Remove()
	}
}

// SquashDefeat flattens and freezes the entity, then removes it after Delay.
type SquashDefeat struct {
	Delay time.Duration
}

func (s SquashDefeat) Defeat(ctx *DefeatContext) {
	if ctx == nil {
		return
	}
	if ctx.Freeze != nil {
		ctx.Freeze()
	}
	if ctx.Flatten != nil {
		ctx.Flatten()
	}
	if ctx.After == nil || s.Delay <= 0 {
		if ctx.Remove != nil {
			ctx.Remove()
		}
		return
	}
	ctx.After(s.Delay, ctx.Remove)
}
