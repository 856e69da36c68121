package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera is a third-person orbit rig. Pivot is the camera anchor the
// controller writes each frame; the eye orbits the pivot at a fixed
// distance by yaw/pitch.
type Camera struct {
	Pivot mgl64.Vec3

	yaw      float64
	pitch    float64
	distance float64
	fov      float64
	yawSpeed float64

	screenW int
	screenH int
}

func NewCamera(screenW, screenH int, distance, pitch, fov, yawSpeed float64) *Camera {
	return &Camera{
		distance: distance,
		pitch:    pitch,
		fov:      fov,
		yawSpeed: yawSpeed,
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Yaw returns the rig's current yaw in radians. Movement impulses are
// rotated by this value only; pitch never leaks into movement.
func (c *Camera) Yaw() float64 {
	return c.yaw
}

func (c *Camera) SetYaw(yaw float64) {
	c.yaw = yaw
}

// Update turns the rig from Q/E keys and adjusts distance from the wheel.
func (c *Camera) Update(delta float64) {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		c.yaw += c.yawSpeed * delta
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		c.yaw -= c.yawSpeed * delta
	}
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		c.distance -= wheelY * 0.5
		if c.distance < 2 {
			c.distance = 2
		}
		if c.distance > 20 {
			c.distance = 20
		}
	}
}

// Retune applies a reloaded camera spec without disturbing yaw or pivot.
func (c *Camera) Retune(distance, pitch, fov, yawSpeed float64) {
	c.distance = distance
	c.pitch = pitch
	c.fov = fov
	c.yawSpeed = yawSpeed
}

// Eye returns the camera position orbiting the pivot.
func (c *Camera) Eye() mgl64.Vec3 {
	horiz := c.distance * math.Cos(c.pitch)
	return c.Pivot.Add(mgl64.Vec3{
		horiz * math.Sin(c.yaw),
		c.distance * math.Sin(c.pitch),
		horiz * math.Cos(c.yaw),
	})
}

// Project maps a world point to screen coordinates. ok is false when the
// point is behind the eye.
func (c *Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	view := mgl64.LookAtV(c.Eye(), c.Pivot, mgl64.Vec3{0, 1, 0})
	aspect := float64(c.screenW) / float64(c.screenH)
	proj := mgl64.Perspective(c.fov, aspect, 0.1, 200)

	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * float64(c.screenW), (1 - ndcY) / 2 * float64(c.screenH), true
}
