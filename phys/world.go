package phys

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ContactHandler receives contact start/stop events for colliders that have
// event reporting enabled.
type ContactHandler struct {
	UserData interface{}
	// BeginFunc runs when a collider starts touching the ground or a platform.
	BeginFunc func(body *Body, userData interface{})
	// SeparateFunc runs when the last contact is lost.
	SeparateFunc func(body *Body, userData interface{})
}

// Box is an axis-aligned static collision box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// World steps dynamic bodies against a horizontal ground plane and a set of
// static boxes. Single-threaded; Step and all mutators must run from the same
// goroutine.
type World struct {
	gravity mgl64.Vec3

	groundY   float64
	hasGround bool
	platforms []Box

	bodies   []*Body
	handlers []*ContactHandler
}

func NewWorld(gravity mgl64.Vec3) *World {
	return &World{gravity: gravity}
}

// SetGroundPlane installs an infinite horizontal plane at the given height.
func (w *World) SetGroundPlane(y float64) {
	w.groundY = y
	w.hasGround = true
}

// SetPlatforms replaces the static box set. Used on level load and hot reload.
func (w *World) SetPlatforms(boxes []Box) {
	w.platforms = boxes
}

func (w *World) Platforms() []Box {
	return w.platforms
}

// NewContactHandler registers a handler for contact events.
func (w *World) NewContactHandler() *ContactHandler {
	h := &ContactHandler{}
	w.handlers = append(w.handlers, h)
	return h
}

// CreateBody adds a dynamic body at the given translation. The body has no
// collider until one is attached.
func (w *World) CreateBody(translation mgl64.Vec3) *Body {
	b := &Body{world: w, position: translation}
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody removes a body from the world. The body must have had its
// collider detached first; removing an unknown body is fatal.
func (w *World) RemoveBody(b *Body) {
	if b.collider != nil {
		panic("phys: RemoveBody with collider still attached")
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			b.world = nil
			return
		}
	}
	panic("phys: RemoveBody on unknown body")
}

// AttachCapsule creates a capsule collider and attaches it to the body. The
// body must not already have a collider.
func (w *World) AttachCapsule(b *Body, capsule Capsule, mass, friction float64, events bool) *Collider {
	if b.collider != nil {
		panic("phys: AttachCapsule on body with collider")
	}
	if mass <= 0 {
		panic("phys: AttachCapsule with non-positive mass")
	}
	c := &Collider{
		body:     b,
		capsule:  capsule,
		mass:     mass,
		friction: friction,
		events:   events,
	}
	b.collider = c
	return c
}

// RemoveCollider detaches the body's collider. Contact state carries over to
// the next attached collider so a same-call swap does not emit spurious
// start/stop events.
func (w *World) RemoveCollider(b *Body) (touching bool) {
	if b.collider == nil {
		panic("phys: RemoveCollider on body without collider")
	}
	touching = b.collider.touching
	b.collider.body = nil
	b.collider = nil
	return touching
}

// SwapCapsule replaces the body's collider within one call, carrying the
// contact state over so the swap never emits start/stop events of its own.
func (w *World) SwapCapsule(b *Body, capsule Capsule, mass, friction float64, events bool) *Collider {
	touching := w.RemoveCollider(b)
	c := w.AttachCapsule(b, capsule, mass, friction, events)
	c.touching = touching
	return c
}

// Step advances every body by dt seconds: gravity, linear damping, semi-
// implicit Euler integration, then contact resolution against the ground
// plane and platforms. Contact edges fire handler events after resolution.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.collider == nil {
			continue
		}

		b.velocity = b.velocity.Add(w.gravity.Mul(dt))
		if b.damping > 0 {
			b.velocity = b.velocity.Mul(1.0 / (1.0 + b.damping*dt))
		}
		b.position = b.position.Add(b.velocity.Mul(dt))

		touching := w.resolve(b)

		c := b.collider
		if c.events && touching != c.touching {
			c.touching = touching
			w.fireContact(b, touching)
		} else {
			c.touching = touching
		}
	}
}

func (w *World) resolve(b *Body) bool {
	touching := false
	c := b.collider

	if w.hasGround {
		if bottom := c.bottom(); bottom < w.groundY {
			b.position = b.position.Add(mgl64.Vec3{0, w.groundY - bottom, 0})
			if b.velocity.Y() < 0 {
				b.velocity = mgl64.Vec3{b.velocity.X(), 0, b.velocity.Z()}
			}
			touching = true
		} else if bottom <= w.groundY+contactSlop {
			touching = true
		}
	}

	for _, p := range w.platforms {
		if w.resolveBox(b, p) {
			touching = true
		}
	}
	return touching
}

const contactSlop = 1e-3

func (w *World) resolveBox(b *Body, box Box) bool {
	min, max := b.collider.aabb()
	if min.X() >= box.Max.X() || max.X() <= box.Min.X() ||
		min.Y() >= box.Max.Y()+contactSlop || max.Y() <= box.Min.Y() ||
		min.Z() >= box.Max.Z() || max.Z() <= box.Min.Z() {
		return false
	}

	if min.Y() >= box.Max.Y() {
		// resting on top within the contact slop; no correction needed
		return true
	}

	push := pushOut(min, max, box)
	b.position = b.position.Add(push)

	// kill velocity into the contact normal
	if push.Y() > 0 && b.velocity.Y() < 0 {
		b.velocity = mgl64.Vec3{b.velocity.X(), 0, b.velocity.Z()}
	} else if push.Y() < 0 && b.velocity.Y() > 0 {
		b.velocity = mgl64.Vec3{b.velocity.X(), 0, b.velocity.Z()}
	} else if push.X() != 0 {
		b.velocity = mgl64.Vec3{0, b.velocity.Y(), b.velocity.Z()}
	} else if push.Z() != 0 {
		b.velocity = mgl64.Vec3{b.velocity.X(), b.velocity.Y(), 0}
	}

	// only an upward push counts as standing contact
	return push.Y() > 0 || (push.Y() == 0 && math.Abs(min.Y()-box.Max.Y()) <= contactSlop)
}

// pushOut returns the minimum translation moving [min,max] out of box.
func pushOut(min, max mgl64.Vec3, box Box) mgl64.Vec3 {
	var push mgl64.Vec3
	best := math.MaxFloat64
	for axis := 0; axis < 3; axis++ {
		a := box.Max[axis] - min[axis] // push positive
		b := max[axis] - box.Min[axis] // push negative
		v := a
		if b < a {
			v = -b
		}
		if m := math.Abs(v); m < best {
			best = m
			push = mgl64.Vec3{}
			push[axis] = v
		}
	}
	return push
}

func (w *World) fireContact(b *Body, started bool) {
	for _, h := range w.handlers {
		if started {
			if h.BeginFunc != nil {
				h.BeginFunc(b, h.UserData)
			}
		} else if h.SeparateFunc != nil {
			h.SeparateFunc(b, h.UserData)
		}
	}
}
