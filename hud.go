package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const resetBannerSeconds = 2.5

// HUD shows the out-of-bounds reset notification. It implements
// obj.ResetNotifier; the controller pings it whenever the player respawns.
type HUD struct {
	ui      *ebitenui.UI
	visible bool
	timer   float64
}

// NewHUD builds a centered banner using colored nine-slices and the built-in
// basic font so no theme assets are required.
func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	title := widget.NewText(
		widget.TextOpts.Text("You fell out of the world", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	sub := widget.NewText(
		widget.TextOpts.Text("Respawning at the platform", &face, color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(sub)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &HUD{ui: &ebitenui.UI{Container: root}}
}

// PlayerReset implements obj.ResetNotifier.
func (h *HUD) PlayerReset() {
	h.visible = true
	h.timer = resetBannerSeconds
}

func (h *HUD) Update(delta float64) {
	if !h.visible {
		return
	}
	h.timer -= delta
	if h.timer <= 0 {
		h.visible = false
		return
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	h.ui.Draw(screen)
}
