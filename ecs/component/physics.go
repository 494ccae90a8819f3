package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width and Height describe an axis-aligned box centred on the Transform.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Category Category

	// Static bodies hang off the space's static body and never move.
	Static bool
	// Sensor bodies report overlaps without a physical response.
	Sensor bool

	GravityDisabled bool
	// CollisionDisabled turns the shape into a sensor while set, so it
	// still reports overlaps but pushes nothing.
	CollisionDisabled bool
	// Driven bodies take their position from the Transform each step
	// instead of integrating it.
	Driven bool
	// GravityScale multiplies world gravity; zero means 1.
	GravityScale float64

	Grounded bool

	// PrevY is the Transform Y at the start of the last physics step.
	// Stepped is set once the body has been through a step.
	PrevY   float64
	Stepped bool
}

// Bounds returns the left, top, right and bottom edges around t.
func (b PhysicsBody) Bounds(t Transform) (left, top, right, bottom float64) {
	hw, hh := b.Width/2, b.Height/2
	return t.X - hw, t.Y - hh, t.X + hw, t.Y + hh
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
