package phys

import "github.com/go-gl/mathgl/mgl64"

// Body is a dynamic rigid body. Exactly one collider is attached at a time;
// attaching and detaching go through the owning World.
type Body struct {
	world *World

	position mgl64.Vec3
	velocity mgl64.Vec3
	damping  float64

	collider *Collider
}

func (b *Body) Translation() mgl64.Vec3 {
	return b.position
}

func (b *Body) SetTranslation(p mgl64.Vec3) {
	b.position = p
}

func (b *Body) LinearVelocity() mgl64.Vec3 {
	return b.velocity
}

func (b *Body) SetLinearVelocity(v mgl64.Vec3) {
	b.velocity = v
}

func (b *Body) LinearDamping() float64 {
	return b.damping
}

func (b *Body) SetLinearDamping(d float64) {
	if d < 0 {
		d = 0
	}
	b.damping = d
}

// ApplyImpulse adds to the body's momentum. The resulting velocity change is
// impulse divided by the attached collider's mass.
func (b *Body) ApplyImpulse(impulse mgl64.Vec3) {
	if b.collider == nil {
		panic("phys: ApplyImpulse on body without collider")
	}
	b.velocity = b.velocity.Add(impulse.Mul(1.0 / b.collider.mass))
}

// Collider returns the currently attached collider, or nil if the body is
// mid-swap (never observable from outside a swap call).
func (b *Body) Collider() *Collider {
	return b.collider
}
