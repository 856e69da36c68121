package phys

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func standingCapsule() Capsule {
	return Capsule{Height: 1.0, Radius: 0.3}
}

func TestApplyImpulseDividesByMass(t *testing.T) {
	cases := []struct {
		name    string
		mass    float64
		impulse mgl64.Vec3
		want    mgl64.Vec3
	}{
		{"unit_mass", 1.0, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{2, 0, 0}},
		{"half_mass", 0.5, mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 10, 0}},
		{"double_mass", 2.0, mgl64.Vec3{4, 0, 4}, mgl64.Vec3{2, 0, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(mgl64.Vec3{})
			b := w.CreateBody(mgl64.Vec3{0, 1, 0})
			w.AttachCapsule(b, standingCapsule(), c.mass, 0, false)

			b.ApplyImpulse(c.impulse)
			if got := b.LinearVelocity(); got != c.want {
				t.Fatalf("velocity = %v, want %v", got, c.want)
			}

			// impulses accumulate
			b.ApplyImpulse(c.impulse)
			if got := b.LinearVelocity(); got != c.want.Mul(2) {
				t.Fatalf("velocity after second impulse = %v, want %v", got, c.want.Mul(2))
			}
		})
	}
}

func TestApplyImpulseWithoutColliderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for impulse on collider-less body")
		}
	}()
	w := NewWorld(mgl64.Vec3{})
	b := w.CreateBody(mgl64.Vec3{})
	b.ApplyImpulse(mgl64.Vec3{1, 0, 0})
}

func TestStepAppliesDampingFormula(t *testing.T) {
	w := NewWorld(mgl64.Vec3{})
	b := w.CreateBody(mgl64.Vec3{0, 5, 0})
	w.AttachCapsule(b, standingCapsule(), 1, 0, false)
	b.SetLinearVelocity(mgl64.Vec3{6, 0, 0})
	b.SetLinearDamping(10)

	dt := 1.0 / 60.0
	w.Step(dt)

	want := 6.0 / (1.0 + 10.0*dt)
	if got := b.LinearVelocity().X(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("damped velocity = %v, want %v", got, want)
	}
}

func TestStepGravityIntegration(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -9.81, 0})
	b := w.CreateBody(mgl64.Vec3{0, 10, 0})
	w.AttachCapsule(b, standingCapsule(), 1, 0, false)

	dt := 1.0 / 60.0
	w.Step(dt)

	wantVy := -9.81 * dt
	if got := b.LinearVelocity().Y(); math.Abs(got-wantVy) > 1e-12 {
		t.Fatalf("velocity.Y = %v, want %v", got, wantVy)
	}
	wantY := 10 + wantVy*dt
	if got := b.Translation().Y(); math.Abs(got-wantY) > 1e-12 {
		t.Fatalf("position.Y = %v, want %v", got, wantY)
	}
}

func TestGroundPlaneContactEvents(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -9.81, 0})
	w.SetGroundPlane(0)
	b := w.CreateBody(mgl64.Vec3{0, 3, 0})
	w.AttachCapsule(b, standingCapsule(), 1, 0, true)

	var begins, separates int
	h := w.NewContactHandler()
	h.BeginFunc = func(body *Body, _ interface{}) {
		if body == b {
			begins++
		}
	}
	h.SeparateFunc = func(body *Body, _ interface{}) {
		if body == b {
			separates++
		}
	}

	dt := 1.0 / 60.0
	for i := 0; i < 600 && begins == 0; i++ {
		w.Step(dt)
	}
	if begins != 1 {
		t.Fatalf("begin fired %d times while falling to ground, want 1", begins)
	}

	// resting frames must not re-fire the edge
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}
	if begins != 1 || separates != 0 {
		t.Fatalf("resting re-fired events: begins=%d separates=%d", begins, separates)
	}

	b.ApplyImpulse(mgl64.Vec3{0, 8, 0})
	for i := 0; i < 10 && separates == 0; i++ {
		w.Step(dt)
	}
	if separates != 1 {
		t.Fatalf("separate fired %d times after launch, want 1", separates)
	}
}

func TestEventsDisabledCollidersStaySilent(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -9.81, 0})
	w.SetGroundPlane(0)
	b := w.CreateBody(mgl64.Vec3{0, 2, 0})
	w.AttachCapsule(b, standingCapsule(), 1, 0, false)

	fired := 0
	h := w.NewContactHandler()
	h.BeginFunc = func(*Body, interface{}) { fired++ }

	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60.0)
	}
	if fired != 0 {
		t.Fatalf("events fired %d times for events-disabled collider", fired)
	}
}

func TestColliderSwapCarriesContactState(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -9.81, 0})
	w.SetGroundPlane(0)
	b := w.CreateBody(mgl64.Vec3{0, 2, 0})
	w.AttachCapsule(b, standingCapsule(), 1, 0, true)

	var begins int
	h := w.NewContactHandler()
	h.BeginFunc = func(*Body, interface{}) { begins++ }

	for i := 0; i < 600 && begins == 0; i++ {
		w.Step(1.0 / 60.0)
	}
	if begins != 1 {
		t.Fatalf("body never landed")
	}

	c := w.SwapCapsule(b, Capsule{Height: 0.4, Radius: 0.3, Offset: mgl64.Vec3{0, -0.3, 0}}, 0.5, 0, true)
	if !c.touching {
		t.Fatalf("swap dropped the contact state of a resting body")
	}

	w.Step(1.0 / 60.0)
	if begins != 1 {
		t.Fatalf("swap emitted a spurious begin event, total %d", begins)
	}
}

func TestPlatformRestAndPushOut(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -9.81, 0})
	w.SetPlatforms([]Box{{
		Min: mgl64.Vec3{-1, 0, -1},
		Max: mgl64.Vec3{1, 1, 1},
	}})

	b := w.CreateBody(mgl64.Vec3{0, 3, 0})
	w.AttachCapsule(b, standingCapsule(), 1, 0, false)

	dt := 1.0 / 60.0
	for i := 0; i < 600; i++ {
		w.Step(dt)
	}

	bottom := b.collider.bottom()
	if math.Abs(bottom-1) > contactSlop {
		t.Fatalf("capsule bottom = %v, want resting on platform top at 1", bottom)
	}
	if vy := b.LinearVelocity().Y(); vy < -1e-9 {
		t.Fatalf("resting body still falling, vy = %v", vy)
	}
}

func TestRemoveBodyWithColliderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic removing body with collider attached")
		}
	}()
	w := NewWorld(mgl64.Vec3{})
	b := w.CreateBody(mgl64.Vec3{})
	w.AttachCapsule(b, standingCapsule(), 1, 0, false)
	w.RemoveBody(b)
}

func TestCapsuleBottomAndAABB(t *testing.T) {
	w := NewWorld(mgl64.Vec3{})
	b := w.CreateBody(mgl64.Vec3{0, 1, 0})
	c := w.AttachCapsule(b, Capsule{Height: 1.0, Radius: 0.3, Offset: mgl64.Vec3{0, -0.1, 0}}, 1, 0, false)

	// center 0.9, half height 0.5, radius 0.3
	if got := c.bottom(); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("bottom = %v, want 0.1", got)
	}
	min, max := c.aabb()
	if math.Abs(min.Y()-0.1) > 1e-12 || math.Abs(max.Y()-1.7) > 1e-12 {
		t.Fatalf("aabb y range [%v, %v], want [0.1, 1.7]", min.Y(), max.Y())
	}
	if math.Abs(min.X()+0.3) > 1e-12 || math.Abs(max.X()-0.3) > 1e-12 {
		t.Fatalf("aabb x range [%v, %v], want [-0.3, 0.3]", min.X(), max.X())
	}
}
