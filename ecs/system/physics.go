package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
)

const defaultStep = time.Second / 60

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it and reports overlaps between wired category pairs as contact events.
// Wired pairs never push each other; only solid geometry does.
type PhysicsSystem struct {
	s             *Session
	space         *cp.Space
	world         *ecs.World
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body    *cp.Body
	shape   *cp.Shape
	static  bool
	gravity float64
}

func NewPhysicsSystem(s *Session) *PhysicsSystem {
	space := cp.NewSpace()
	iterations := s.tuning.Physics.Iterations
	if iterations <= 0 {
		iterations = 10
	}
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: s.tuning.Physics.Gravity})
	return &PhysicsSystem{
		s:        s,
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	ps.world = w
	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	dt := w.Delta()
	if dt <= 0 {
		dt = ps.s.tuning.Physics.Step
	}
	if dt <= 0 {
		dt = defaultStep
	}
	ps.space.Step(dt.Seconds())

	ps.syncTransforms(w)
}

func collisionType(c component.Category) cp.CollisionType {
	return cp.CollisionType(c) + 1
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}
	for _, pair := range ps.s.contacts.Pairs() {
		h := ps.space.NewCollisionHandler(collisionType(pair.A), collisionType(pair.B))
		h.UserData = ps
		h.PreSolveFunc = reportContact
	}

	ground := ps.space.NewCollisionHandler(collisionType(component.CategoryCharacter), collisionType(component.CategorySolid))
	ground.UserData = ps
	ground.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		n := arb.Normal()
		e, ok := sys.characterShape(shapeA)
		if !ok {
			if e, ok = sys.characterShape(shapeB); !ok {
				return true
			}
			n = n.Neg()
		}
		// The normal points from the character into the ground below it.
		if n.Y > 0.5 {
			if body, ok := ecs.Get(sys.world, e, component.PhysicsBodyComponent.Kind()); ok {
				body.Grounded = true
			}
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) characterShape(shape *cp.Shape) (ecs.Entity, bool) {
	e, ok := ps.shapes[shape]
	if !ok {
		return ecs.Null, false
	}
	body, ok := ecs.Get(ps.world, e, component.PhysicsBodyComponent.Kind())
	return e, ok && body.Category == component.CategoryCharacter
}

// reportContact queues the pair and ignores the collision response.
func reportContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	sys, ok := userData.(*PhysicsSystem)
	if !ok {
		return false
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := sys.shapes[shapeA]
	b, okB := sys.shapes[shapeB]
	if okA && okB {
		sys.world.Events().PushContact(a, b)
	}
	return false
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(*t, body)
			if info == nil {
				return
			}
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			body.Body = info.body
			body.Shape = info.shape
		}

		info.shape.SetSensor(body.Sensor || body.CollisionDisabled)
		body.Grounded = false
		body.PrevY = t.Y
		body.Stepped = true
		if info.static {
			return
		}

		info.gravity = body.GravityScale
		if info.gravity == 0 {
			info.gravity = 1
		}
		if body.GravityDisabled {
			info.gravity = 0
		}

		if body.Driven {
			info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
			info.body.SetVelocity(0, 0)
			return
		}
		v := ps.s.velocity(e)
		info.body.SetVelocity(v.X, v.Y)
	})
}

func (ps *PhysicsSystem) createBodyInfo(t component.Transform, body *component.PhysicsBody) *bodyInfo {
	if body.Width <= 0 || body.Height <= 0 {
		return nil
	}
	ct := collisionType(body.Category)

	if body.Static {
		left, top, right, bottom := body.Bounds(t)
		shape := cp.NewBox2(ps.space.StaticBody, cp.BB{L: left, B: top, R: right, T: bottom}, 0)
		shape.SetFriction(body.Friction)
		shape.SetCollisionType(ct)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	info := &bodyInfo{gravity: 1}
	// Infinite moment keeps boxes upright; rotation is purely visual.
	b := cp.NewBody(mass, math.Inf(1))
	b.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	b.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(info.gravity), damping, dt)
	})

	shape := cp.NewBox(b, body.Width, body.Height, 0)
	shape.SetFriction(body.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(ct)

	ps.space.AddBody(b)
	ps.space.AddShape(shape)

	info.body = b
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || body.Driven {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.X, t.Y = pos.X, pos.Y
		vel := info.body.Velocity()
		v := ps.s.velocity(e)
		v.X, v.Y = vel.X, vel.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
