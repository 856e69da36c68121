package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame snapshot of held movement and jump keys. The
// controller only reads these booleans; device polling stays in Update so
// the core never touches ebiten directly.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and first gamepad into the snapshot fields.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.Forward = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	i.Back = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	if leftY < -0.3 {
		i.Forward = true
	} else if leftY > 0.3 {
		i.Back = true
	}
	if leftX < -0.3 {
		i.Left = true
	} else if leftX > 0.3 {
		i.Right = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.Jump = true
	}
}

// AnyDirection reports whether any directional key is held.
func (i *Input) AnyDirection() bool {
	return i.Forward || i.Back || i.Left || i.Right
}
