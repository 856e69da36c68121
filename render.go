package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/obj"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/phys"
)

const gridExtent = 12

func drawLine3(screen *ebiten.Image, cam *obj.Camera, a, b mgl64.Vec3, clr color.Color) {
	ax, ay, ok := cam.Project(a)
	if !ok {
		return
	}
	bx, by, ok := cam.Project(b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, clr, false)
}

func drawGrid(screen *ebiten.Image, cam *obj.Camera, groundY float64) {
	for i := -gridExtent; i <= gridExtent; i += 2 {
		f := float64(i)
		drawLine3(screen, cam, mgl64.Vec3{f, groundY, -gridExtent}, mgl64.Vec3{f, groundY, gridExtent}, colornames.Darkslategray)
		drawLine3(screen, cam, mgl64.Vec3{-gridExtent, groundY, f}, mgl64.Vec3{gridExtent, groundY, f}, colornames.Darkslategray)
	}
}

func drawBox(screen *ebiten.Image, cam *obj.Camera, box phys.Box, clr color.Color) {
	min, max := box.Min, box.Max
	corners := [8]mgl64.Vec3{
		{min.X(), min.Y(), min.Z()}, {max.X(), min.Y(), min.Z()},
		{max.X(), min.Y(), max.Z()}, {min.X(), min.Y(), max.Z()},
		{min.X(), max.Y(), min.Z()}, {max.X(), max.Y(), min.Z()},
		{max.X(), max.Y(), max.Z()}, {min.X(), max.Y(), max.Z()},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		drawLine3(screen, cam, corners[e[0]], corners[e[1]], clr)
	}
}

// drawAvatar billboards the current animation frame at the avatar's smoothed
// position, scaled so one world unit spans its projected pixel height.
func drawAvatar(screen *ebiten.Image, cam *obj.Camera, avatar *obj.Avatar) {
	if avatar == nil {
		return
	}
	animator, ok := avatar.Animator.(*spriteAnimator)
	if !ok {
		return
	}
	frame := animator.Frame()
	if frame == nil {
		return
	}

	pos := avatar.Transform.Position
	x, y, ok := cam.Project(pos)
	if !ok {
		return
	}
	_, topY, ok := cam.Project(pos.Add(mgl64.Vec3{0, 1, 0}))
	if !ok {
		return
	}

	unitPixels := y - topY
	if unitPixels <= 1 {
		return
	}
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	scale := unitPixels * 1.6 / float64(fh)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-float64(fw)*scale/2, y-float64(fh)*scale)
	screen.DrawImage(frame, op)
}
