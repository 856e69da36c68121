package phys

import "github.com/go-gl/mathgl/mgl64"

// Capsule describes capsule collider geometry: a cylinder of the given full
// height capped by hemispheres of the given radius, centered at the body
// origin plus Offset.
type Capsule struct {
	Height float64
	Radius float64
	Offset mgl64.Vec3
}

// Collider is a capsule shape attached to a body.
type Collider struct {
	body *Body

	capsule  Capsule
	mass     float64
	friction float64
	events   bool

	touching bool
}

func (c *Collider) Capsule() Capsule {
	return c.capsule
}

func (c *Collider) Mass() float64 {
	return c.mass
}

func (c *Collider) Friction() float64 {
	return c.friction
}

// EventsEnabled reports whether contact start/stop events are raised for this
// collider.
func (c *Collider) EventsEnabled() bool {
	return c.events
}

// bottom returns the lowest point of the capsule in world space.
func (c *Collider) bottom() float64 {
	center := c.body.position.Add(c.capsule.Offset)
	return center.Y() - c.capsule.Height/2.0 - c.capsule.Radius
}

// aabb returns a conservative world-space box around the capsule, used for
// platform resolution.
func (c *Collider) aabb() (mgl64.Vec3, mgl64.Vec3) {
	center := c.body.position.Add(c.capsule.Offset)
	half := mgl64.Vec3{
		c.capsule.Radius,
		c.capsule.Height/2.0 + c.capsule.Radius,
		c.capsule.Radius,
	}
	return center.Sub(half), center.Add(half)
}
