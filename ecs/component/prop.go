package component

type PropState uint8

const (
	PropIdle PropState = iota
	PropHeld
	PropInFlight
	PropDestroyed
)

func (s PropState) String() string {
	switch s {
	case PropHeld:
		return "held"
	case PropInFlight:
		return "in_flight"
	case PropDestroyed:
		return "destroyed"
	default:
		return "idle"
	}
}

// Prop is the throwable brick.
type Prop struct {
	Color      string
	Durability int
	State      PropState
	Held       bool
	// HeldBy is the holder's ecs.Entity, or 0.
	HeldBy       uint64
	PickupLocked bool
}

var PropComponent = NewComponent[Prop]()
