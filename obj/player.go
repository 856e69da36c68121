package obj

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/phys"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/prefabs"
)

const (
	spawnMass = 1.0
	swapMass  = 0.5

	fallLimitY    = -3.0
	orientEpsilon = 1e-4
)

// ResetNotifier is told when the player fell out of bounds and was respawned.
type ResetNotifier interface {
	PlayerReset()
}

// CapsuleProfile names a collider geometry the controller can swap onto the
// body.
type CapsuleProfile struct {
	Height float64
	Radius float64
	Offset mgl64.Vec3
}

func (cp CapsuleProfile) capsule() phys.Capsule {
	return phys.Capsule{Height: cp.Height, Radius: cp.Radius, Offset: cp.Offset}
}

// Player owns the physics body and collider for the controllable entity and
// runs the per-frame bridge between input, physics, camera and avatar. All
// methods run on the frame-loop goroutine; the only asynchronous path is the
// avatar delivery channel drained at the top of Update.
type Player struct {
	world    *phys.World
	body     *phys.Body
	input    *Input
	camera   *Camera
	scene    *Node
	notifier ResetNotifier

	followTarget *Node

	standing   CapsuleProfile
	crouchJump CapsuleProfile
	spawn      mgl64.Vec3

	walkSpeed float64
	runSpeed  float64
	jumpSpeed float64
	accelRate float64
	maxAccel  float64
	cooldown  time.Duration

	groundedDamping float64
	airborneDamping float64

	cameraFollowRate float64
	avatarFollowRate float64
	turnRate         float64

	grounded       bool
	jumpCooldown   bool
	cooldownArmed  bool
	cooldownExpiry time.Time
	accel          float64

	avatar   *Avatar
	avatarCh chan *Avatar

	clock func() time.Time
}

// NewPlayer creates the body with the standing capsule at the spawn
// translation and parents the follow target under the scene root.
func NewPlayer(world *phys.World, scene *Node, camera *Camera, input *Input, notifier ResetNotifier, spec *prefabs.PlayerSpec) *Player {
	p := &Player{
		world:    world,
		input:    input,
		camera:   camera,
		scene:    scene,
		notifier: notifier,
		grounded: true,
		accel:    1.0,
		avatarCh: make(chan *Avatar, 1),
		clock:    time.Now,
	}
	p.applySpec(spec)

	p.body = world.CreateBody(p.spawn)
	world.AttachCapsule(p.body, p.standing.capsule(), spawnMass, 0, true)
	p.body.SetLinearDamping(p.groundedDamping)

	p.followTarget = NewNode()
	p.followTarget.Position = p.spawn
	scene.AddChild(p.followTarget)

	camera.Pivot = p.spawn
	return p
}

func (p *Player) applySpec(spec *prefabs.PlayerSpec) {
	p.walkSpeed = spec.WalkSpeed
	p.runSpeed = spec.RunSpeed
	p.jumpSpeed = spec.JumpSpeed
	p.accelRate = spec.AccelRate
	p.maxAccel = spec.MaxAccel
	p.cooldown = time.Duration(spec.JumpCooldownMS) * time.Millisecond
	p.groundedDamping = spec.GroundedDamping
	p.airborneDamping = spec.AirborneDamping
	p.cameraFollowRate = spec.CameraFollowRate
	p.avatarFollowRate = spec.AvatarFollowRate
	p.turnRate = spec.TurnRate
	p.spawn = mgl64.Vec3{spec.Spawn.X, spec.Spawn.Y, spec.Spawn.Z}
	p.standing = CapsuleProfile{spec.Standing.Height, spec.Standing.Radius, mgl64.Vec3{spec.Standing.Offset.X, spec.Standing.Offset.Y, spec.Standing.Offset.Z}}
	p.crouchJump = CapsuleProfile{spec.CrouchJump.Height, spec.CrouchJump.Radius, mgl64.Vec3{spec.CrouchJump.Offset.X, spec.CrouchJump.Offset.Y, spec.CrouchJump.Offset.Z}}
}

// Retune applies a reloaded spec. Speeds, rates and profiles change in
// place; the attached collider keeps its geometry until the next swap.
func (p *Player) Retune(spec *prefabs.PlayerSpec) {
	p.applySpec(spec)
}

// Init kicks off asynchronous construction of the animation collaborator.
// The built avatar is adopted at the next frame boundary; gameplay runs
// normally while it is absent.
func (p *Player) Init(load func() (*Avatar, error)) {
	if load == nil {
		return
	}
	go func() {
		avatar, err := load()
		if err != nil {
			fmt.Printf("player: avatar load failed: %v\n", err)
			return
		}
		p.avatarCh <- avatar
	}()
}

// Update runs once per frame, after the physics world has stepped:
// integrate input into an impulse, apply it, recover from falling out of
// bounds, smooth the camera anchor and avatar, then advance the animation.
func (p *Player) Update(delta float64) {
	select {
	case avatar := <-p.avatarCh:
		if avatar != nil {
			avatar.Transform.Position = p.body.Translation()
			p.avatar = avatar
		}
	default:
	}

	p.expireCooldown()

	p.body.ApplyImpulse(p.movementImpulse(delta))

	if p.body.Translation().Y() < fallLimitY {
		p.Reset()
	}

	p.follow(delta)

	if p.avatar != nil {
		p.avatar.Advance(delta, p.AnimationState())
	}
}

// movementImpulse turns the input snapshot, grounded state and camera yaw
// into the frame's world-space impulse.
func (p *Player) movementImpulse(delta float64) mgl64.Vec3 {
	var dir mgl64.Vec3
	if p.grounded {
		// fixed evaluation order; a later key overwrites its axis
		if p.input.Forward {
			dir[2] = -1
		}
		if p.input.Back {
			dir[2] = 1
		}
		if p.input.Left {
			dir[0] = -1
		}
		if p.input.Right {
			dir[0] = 1
		}
	}

	limit := p.walkSpeed
	if p.grounded && p.input.AnyDirection() {
		limit = p.runSpeed
	}

	if dir.LenSqr() > 0 {
		p.accel += delta * p.accelRate
		if p.accel > p.maxAccel {
			p.accel = p.maxAccel
		}
		dir = dir.Normalize().Mul(delta * limit * p.accel)
	} else {
		p.accel = 1.0
	}

	if p.grounded && !p.jumpCooldown && p.input.Jump {
		dir[1] = p.jumpSpeed
		p.jumpCooldown = true
		p.cooldownArmed = false
		// drop to the crouch-jump capsule before leaving the ground
		p.swapCollider(p.crouchJump, swapMass)
	}

	return rotateYaw(dir, p.camera.Yaw())
}

// rotateYaw rotates the horizontal components of v about the vertical axis;
// the vertical component passes through untouched.
func rotateYaw(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	return mgl64.Vec3{
		v.X()*cos + v.Z()*sin,
		v.Y(),
		-v.X()*sin + v.Z()*cos,
	}
}

// SetGrounded is driven by contact start/stop events. Same-value calls are
// rejected so transition side effects run at most once.
func (p *Player) SetGrounded(grounded bool) {
	if grounded == p.grounded {
		return
	}
	p.grounded = grounded

	if grounded {
		fmt.Println("player: grounded")
		p.body.SetLinearDamping(p.groundedDamping)
		p.swapCollider(p.standing, swapMass)
		p.cooldownExpiry = p.clock().Add(p.cooldown)
		p.cooldownArmed = true
	} else {
		fmt.Println("player: airborne")
		p.body.SetLinearDamping(p.airborneDamping)
	}
}

// expireCooldown clears the jump cooldown once the landing window has
// elapsed. Runs at the frame boundary so the flag change can never
// interleave with a collider swap.
func (p *Player) expireCooldown() {
	if p.jumpCooldown && p.cooldownArmed && !p.clock().Before(p.cooldownExpiry) {
		p.jumpCooldown = false
		p.cooldownArmed = false
	}
}

// swapCollider replaces the body's collider with the given profile within
// this call; the body is never observed without one.
func (p *Player) swapCollider(profile CapsuleProfile, mass float64) {
	p.world.SwapCapsule(p.body, profile.capsule(), mass, 0, true)
}

// UpdateCapsuleHeight forces a collider geometry swap outside the state
// machine paths.
func (p *Player) UpdateCapsuleHeight(height float64, offset mgl64.Vec3) {
	p.swapCollider(CapsuleProfile{Height: height, Radius: p.standing.Radius, Offset: offset}, swapMass)
}

// Reset recovers from falling out of bounds: zero velocity, respawn
// translation, and a UI notification.
func (p *Player) Reset() {
	p.body.SetLinearVelocity(mgl64.Vec3{})
	p.body.SetTranslation(mgl64.Vec3{0, 1, 0})
	if p.notifier != nil {
		p.notifier.PlayerReset()
	}
}

// follow runs the avatar-follower steps: mirror the body into the follow
// target, smooth the camera anchor and avatar toward its world position at
// independent rates, then correct the avatar's yaw.
func (p *Player) follow(delta float64) {
	p.followTarget.Position = p.body.Translation()
	target := p.followTarget.WorldPosition()

	p.camera.Pivot = lerpVec(p.camera.Pivot, target, delta*p.cameraFollowRate)

	if p.avatar == nil {
		return
	}
	t := &p.avatar.Transform
	t.Position = lerpVec(t.Position, target, delta*p.avatarFollowRate)

	want := yawConstrain(lookAtQuat(target, t.Position, t.Up))
	if target.Sub(t.Position).Len() > orientEpsilon && !quatEq(t.Rotation, want) {
		t.Rotation = rotateTowards(t.Rotation, want, delta*p.turnRate)
	}
}

// Teardown symmetrically releases everything created at construction.
func (p *Player) Teardown() {
	p.world.RemoveCollider(p.body)
	p.world.RemoveBody(p.body)
	p.scene.RemoveChild(p.followTarget)
}

// AnimationState names the clip the avatar should play this frame.
func (p *Player) AnimationState() string {
	if !p.grounded {
		return "jump"
	}
	if p.input.AnyDirection() {
		return "run"
	}
	return "idle"
}

func (p *Player) Grounded() bool              { return p.grounded }
func (p *Player) JumpCooldownActive() bool    { return p.jumpCooldown }
func (p *Player) AccelerationFactor() float64 { return p.accel }
func (p *Player) Avatar() *Avatar             { return p.avatar }
func (p *Player) Body() *phys.Body            { return p.body }
