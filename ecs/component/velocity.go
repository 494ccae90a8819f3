package component

import "math"

// Velocity in pixels per second. The physics system pushes it into the body
// before each step and reads it back afterwards.
type Velocity struct {
	X float64
	Y float64
}

// Speed is the combined horizontal and vertical magnitude used for impact checks.
func (v Velocity) Speed() float64 {
	return math.Abs(v.X) + math.Abs(v.Y)
}

var VelocityComponent = NewComponent[Velocity]()
