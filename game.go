package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/common"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/level"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/obj"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/phys"
	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/prefabs"
)

const physicsDelta = 1.0 / 60.0

const arenaScript = "arena.tengo"

type Game struct {
	frames int
	debug  bool

	input  *obj.Input
	camera *obj.Camera
	scene  *obj.Node
	world  *phys.World
	player *obj.Player
	arena  *level.Level
	hud    *HUD

	watcher *prefabs.Watcher
}

func NewGame(debug bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("load player spec: %w", err)
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("load camera spec: %w", err)
	}

	world := phys.NewWorld(mgl64.Vec3{0, -9.81, 0})
	arena, err := level.Load(arenaScript)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	arena.Install(world)

	scene := obj.NewNode()
	input := obj.NewInput()
	camera := obj.NewCamera(common.BaseWidth, common.BaseHeight,
		cameraSpec.Distance, cameraSpec.Pitch, cameraSpec.FOV, cameraSpec.YawSpeed)
	hud := NewHUD()

	player := obj.NewPlayer(world, scene, camera, input, hud, playerSpec)

	handler := world.NewContactHandler()
	handler.BeginFunc = func(b *phys.Body, _ interface{}) {
		if b == player.Body() {
			player.SetGrounded(true)
		}
	}
	handler.SeparateFunc = func(b *phys.Body, _ interface{}) {
		if b == player.Body() {
			player.SetGrounded(false)
		}
	}

	player.Init(loadAvatar)

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("prefab watcher disabled: %v", err)
		watcher = nil
	}

	return &Game{
		debug:   debug,
		input:   input,
		camera:  camera,
		scene:   scene,
		world:   world,
		player:  player,
		arena:   arena,
		hud:     hud,
		watcher: watcher,
	}, nil
}

func (g *Game) Update() error {
	g.frames++

	g.drainReloads()

	g.input.Update()
	g.camera.Update(physicsDelta)
	g.world.Step(physicsDelta)
	g.player.Update(physicsDelta)
	g.hud.Update(physicsDelta)

	return nil
}

// drainReloads applies any pending tuning or arena edits at the frame
// boundary. A failed reload keeps the running values.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	base := filepath.Base(name)
	switch {
	case strings.HasSuffix(base, ".tengo"):
		arena, err := level.Load(base)
		if err != nil {
			log.Printf("reload %s: %v", base, err)
			return
		}
		g.arena = arena
		g.arena.Install(g.world)
		fmt.Println("game: reloaded arena", base)
	case base == "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("reload %s: %v", base, err)
			return
		}
		g.player.Retune(spec)
		fmt.Println("game: retuned player")
	case base == "camera.yaml":
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("reload %s: %v", base, err)
			return
		}
		g.camera.Retune(spec.Distance, spec.Pitch, spec.FOV, spec.YawSpeed)
		fmt.Println("game: retuned camera")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	drawGrid(screen, g.camera, g.arena.GroundY)
	for _, box := range g.world.Platforms() {
		drawBox(screen, g.camera, box, colornames.Slateblue)
	}
	drawAvatar(screen, g.camera, g.player.Avatar())

	g.hud.Draw(screen)

	if g.debug {
		pos := g.player.Body().Translation()
		vel := g.player.Body().LinearVelocity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"fps %.1f tps %.1f\npos (%.2f, %.2f, %.2f)\nvel (%.2f, %.2f, %.2f)\ngrounded %t cooldown %t accel %.3f\nstate %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			pos.X(), pos.Y(), pos.Z(),
			vel.X(), vel.Y(), vel.Z(),
			g.player.Grounded(), g.player.JumpCooldownActive(), g.player.AccelerationFactor(),
			g.player.AnimationState()), 8, 8)
	}
}

func (g *Game) LayoutF(_, _ float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(_, _ int) (int, int) {
	panic("shouldn't use Layout")
}
