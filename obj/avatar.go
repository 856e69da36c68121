package obj

import "github.com/go-gl/mathgl/mgl64"

// AvatarTransform is the rendered avatar's transform. The physics body is
// the source of truth for position; the follower mutates this copy so the
// avatar moves smoothly between physics steps.
type AvatarTransform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Up       mgl64.Vec3
}

// Animator advances whatever drives the avatar's animation clips. The clip
// selection itself lives with the renderer, not the controller.
type Animator interface {
	Advance(delta float64, state string)
}

// Avatar is the animation-driving collaborator. It is constructed
// asynchronously; until it arrives the controller treats it as absent and
// skips avatar smoothing.
type Avatar struct {
	Transform AvatarTransform
	Animator  Animator
}

func NewAvatar(animator Animator) *Avatar {
	return &Avatar{
		Transform: AvatarTransform{
			Rotation: mgl64.QuatIdent(),
			Up:       mgl64.Vec3{0, 1, 0},
		},
		Animator: animator,
	}
}

// Advance drives the animation collaborator by delta. No-op without an
// animator.
func (a *Avatar) Advance(delta float64, state string) {
	if a.Animator == nil {
		return
	}
	a.Animator.Advance(delta, state)
}
