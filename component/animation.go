package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is a simple frame-based animator for a rectangular spritesheet.
// Frames are laid out left-to-right, top-to-bottom and advanced by wall-time
// deltas rather than fixed ticks.
type Animation struct {
	Sheet      *ebiten.Image
	FrameW     int
	FrameH     int
	FrameCount int
	Cols       int
	FPS        float64
	Loop       bool

	current    int
	elapsed    float64
	startIndex int
	frames     []*ebiten.Image
}

// NewAnimation slices `sheet` into frames of frameW x frameH. frameCount of
// 0 infers the count from the sheet size; fps defaults to 12 when <= 0.
func NewAnimation(sheet *ebiten.Image, frameW, frameH, frameCount int, fps float64, loop bool) *Animation {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return &Animation{}
	}
	if fps <= 0 {
		fps = 12
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	maxFrames := cols * rows
	if frameCount <= 0 || frameCount > maxFrames {
		frameCount = maxFrames
	}
	a := &Animation{
		Sheet:      sheet,
		FrameW:     frameW,
		FrameH:     frameH,
		FrameCount: frameCount,
		Cols:       cols,
		FPS:        fps,
		Loop:       loop,
	}
	a.buildFrames()
	return a
}

// NewAnimationRow reads frameCount frames starting at the given row
// (0-based), continuing onto subsequent rows if the row runs out.
func NewAnimationRow(sheet *ebiten.Image, frameW, frameH, row, frameCount int, fps float64, loop bool) *Animation {
	a := NewAnimation(sheet, frameW, frameH, frameCount, fps, loop)
	if a.Sheet == nil {
		return a
	}
	if row < 0 {
		row = 0
	}
	a.startIndex = row * (a.Sheet.Bounds().Dx() / a.FrameW)
	a.buildFrames()
	return a
}

func (a *Animation) buildFrames() {
	if a == nil || a.Sheet == nil || a.FrameCount <= 0 {
		return
	}
	a.frames = make([]*ebiten.Image, a.FrameCount)
	for i := 0; i < a.FrameCount; i++ {
		idx := a.startIndex + i
		col := idx % a.Cols
		row := idx / a.Cols
		sx := col * a.FrameW
		sy := row * a.FrameH
		r := image.Rect(sx, sy, sx+a.FrameW, sy+a.FrameH)
		a.frames[i] = ebiten.NewImageFromImage(a.Sheet.SubImage(r))
	}
}

// Update advances the animation by delta seconds.
func (a *Animation) Update(delta float64) {
	if a == nil || a.Sheet == nil || a.FrameCount <= 1 {
		return
	}
	a.elapsed += delta
	frameTime := 1.0 / a.FPS
	for a.elapsed >= frameTime {
		a.elapsed -= frameTime
		a.current++
		if a.current >= a.FrameCount {
			if a.Loop {
				a.current = 0
			} else {
				a.current = a.FrameCount - 1
			}
		}
	}
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.elapsed = 0
}

// Frame returns the current frame image, or nil for an empty animation.
func (a *Animation) Frame() *ebiten.Image {
	if a == nil || len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.current]
}

// Size returns the per-frame pixel size.
func (a *Animation) Size() (int, int) {
	return a.FrameW, a.FrameH
}
