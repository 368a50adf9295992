package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/hookshift/common"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
	"github.com/milk9111/hookshift/ecs/system"
	"github.com/milk9111/hookshift/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickDelta = 1.0 / 60.0

	roomSpacing = 40.0
	roomMargin  = 40.0
)

type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem

	scenePath string
	watcher   *scene.Watcher
	debug     bool
}

func NewGame(scenePath string, watch, debug bool) (*Game, error) {
	sc, err := loadScene(scenePath)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	if err := sc.Apply(world); err != nil {
		return nil, fmt.Errorf("apply scene: %w", err)
	}

	physics := system.NewPhysicsSystem()
	scheduler := ecs.NewScheduler(
		system.NewControlSystem(),
		system.NewShiftSystem(),
		system.NewBehaviorSystem(),
		system.NewHookSystem(),
		physics,
		system.NewPerfSystem(10*time.Second),
	)

	g := &Game{
		world:     world,
		scheduler: scheduler,
		physics:   physics,
		scenePath: scenePath,
		debug:     debug,
	}

	if watch && scenePath != "" {
		watcher, err := scene.NewWatcher(scenePath)
		if err != nil {
			log.Printf("game: scene watch unavailable: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.readInput()
	g.scheduler.Update(g.world, tickDelta)

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			g.reload(path)
		case err := <-g.watcher.Errors:
			log.Printf("game: scene watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	sc, err := scene.Load(path)
	if err != nil {
		log.Printf("game: scene reload failed, keeping current world: %v", err)
		return
	}
	scene.Clear(g.world)
	g.physics.Reset()
	if err := sc.Apply(g.world); err != nil {
		log.Printf("game: scene reload apply failed: %v", err)
		return
	}
	log.Printf("game: reloaded scene %s", path)
}

// readInput decodes keyboard and mouse state into the player controller.
// Physics and gameplay systems never touch ebiten directly.
func (g *Game) readInput() {
	player, ok := ecs.First(g.world, component.PlayerControllerComponent.Kind())
	if !ok {
		return
	}
	pc, ok := ecs.Get(g.world, player, component.PlayerControllerComponent.Kind())
	if !ok {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	pc.Moving = component.MoveNone
	if left && !right {
		pc.Moving = component.MoveLeft
	}
	if right && !left {
		pc.Moving = component.MoveRight
	}

	pc.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	pc.Shifting = inpututil.IsKeyJustPressed(ebiten.KeyS)

	pc.Hooking = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	pc.HookX = 0
	pc.HookY = 0
	if pc.Hooking {
		if sx, sy, ok := g.playerScreenPosition(player); ok {
			cx, cy := ebiten.CursorPosition()
			dx, dy := common.Normalize(float64(cx)-sx, float64(cy)-sy)
			pc.HookX = dx
			pc.HookY = dy
		}
	}
}

func (g *Game) playerScreenPosition(player ecs.Entity) (float64, float64, bool) {
	in, ok := ecs.Get(g.world, player, component.InRoomComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	pos, ok := ecs.Get(g.world, player, component.PositionComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	ox, oy, ok := g.roomOffset(ecs.FromRef(in.RoomEntity))
	if !ok {
		return 0, 0, false
	}
	return pos.X + ox, pos.Y + oy, true
}

// roomLayout lays rooms out left to right in component iteration order.
type roomPlacement struct {
	entity  ecs.Entity
	offsetX float64
	offsetY float64
	width   float64
	height  float64
}

func (g *Game) roomLayout() []roomPlacement {
	var placements []roomPlacement
	x := roomMargin
	ecs.ForEach2(g.world, component.RoomComponent.Kind(), component.SizeComponent.Kind(), func(e ecs.Entity, _ *component.Room, size *component.Size) {
		placements = append(placements, roomPlacement{
			entity:  e,
			offsetX: x,
			offsetY: roomMargin,
			width:   size.Width,
			height:  size.Height,
		})
		x += size.Width + roomSpacing
	})
	return placements
}

func (g *Game) roomOffset(room ecs.Entity) (float64, float64, bool) {
	for _, p := range g.roomLayout() {
		if p.entity == room {
			return p.offsetX, p.offsetY, true
		}
	}
	return 0, 0, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, p := range g.roomLayout() {
		space := g.physics.RoomSpace(p.entity)
		if space == nil {
			continue
		}
		drawSpace(screen, space, p.offsetX, p.offsetY)
	}

	g.drawAimLines(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) drawAimLines(screen *ebiten.Image) {
	ecs.ForEach3(g.world, component.AimComponent.Kind(), component.InRoomComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, aim *component.Aim, in *component.InRoom, pos *component.Position) {
		if !aim.Aiming {
			return
		}
		ox, oy, ok := g.roomOffset(ecs.FromRef(in.RoomEntity))
		if !ok {
			return
		}
		if aim.AtEntity != 0 || aim.AtPointX != 0 || aim.AtPointY != 0 {
			drawAimLine(screen, pos.X+ox, pos.Y+oy, aim.AtPointX+ox, aim.AtPointY+oy, true)
			return
		}
		if math.Hypot(aim.TowardX, aim.TowardY) > 0 {
			const missLength = 80.0
			drawAimLine(screen, pos.X+ox, pos.Y+oy, pos.X+ox+aim.TowardX*missLength, pos.Y+oy+aim.TowardY*missLength, false)
		}
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
