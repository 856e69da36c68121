package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/component"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/obj"
)

// spriteAnimator picks and advances a clip per controller state. It is the
// renderer's side of the animation collaborator; the controller only names
// states.
type spriteAnimator struct {
	clips   map[string]*component.Animation
	current *component.Animation
	state   string
}

func newSpriteAnimator(sheet *ebiten.Image) *spriteAnimator {
	clips := map[string]*component.Animation{
		"idle": component.NewAnimationRow(sheet, 64, 64, 0, 4, 6, true),
		"run":  component.NewAnimationRow(sheet, 64, 64, 1, 6, 12, true),
		"jump": component.NewAnimationRow(sheet, 64, 64, 2, 1, 12, false),
	}
	return &spriteAnimator{clips: clips, current: clips["idle"], state: "idle"}
}

// Advance implements obj.Animator.
func (s *spriteAnimator) Advance(delta float64, state string) {
	if state != s.state {
		s.state = state
		if clip := s.clips[state]; clip != nil {
			s.current = clip
			s.current.Reset()
		}
	}
	if s.current != nil {
		s.current.Update(delta)
	}
}

func (s *spriteAnimator) Frame() *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.current.Frame()
}

// loadAvatar builds the animation collaborator. It runs on a goroutine
// started by the controller's Init; the decode cost stays off the frame
// loop.
func loadAvatar() (*obj.Avatar, error) {
	sheet, err := loadImageFromAssets("assets/avatar-Sheet.png")
	if err != nil {
		return nil, err
	}
	return obj.NewAvatar(newSpriteAnimator(sheet)), nil
}
