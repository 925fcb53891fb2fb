package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"misty-maze/components"
	"misty-maze/ecs"
	"misty-maze/systems"
)

var backgroundColor = color.RGBA{26, 26, 51, 255}

// RenderSystem draws the maze, the entities on it and the HUD
type RenderSystem struct {
	mapSystem  *systems.MapSystem
	coinSystem *systems.CoinSystem
	showLog    bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(mapSystem *systems.MapSystem, coinSystem *systems.CoinSystem) *RenderSystem {
	return &RenderSystem{
		mapSystem:  mapSystem,
		coinSystem: coinSystem,
	}
}

// ToggleLog shows or hides the message log overlay
func (s *RenderSystem) ToggleLog() {
	s.showLog = !s.showLog
}

// Draw renders one frame
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	camera := s.camera(world)
	if camera == nil {
		ebitenutil.DebugPrint(screen, "No level loaded")
		return
	}

	s.drawMaze(world, screen, camera)
	s.drawEntities(world, screen, camera)
	s.drawHUD(world, screen, camera)
	if s.showLog {
		s.drawMessages(screen)
	}
}

func (s *RenderSystem) camera(world *ecs.World) *components.CameraComponent {
	entity := world.FirstWithTag(components.TagCamera)
	if entity == nil {
		return nil
	}
	comp, ok := world.GetComponent(entity.ID, components.Camera)
	if !ok {
		return nil
	}
	return comp.(*components.CameraComponent)
}

// drawMaze draws the tiles inside the viewport. Blocked cells are only drawn
// where they face open space; deeper rock stays background.
func (s *RenderSystem) drawMaze(world *ecs.World, screen *ebiten.Image, camera *components.CameraComponent) {
	maze := s.mapSystem.ActiveMaze(world)
	if maze == nil {
		return
	}
	tile := float32(systems.TilePixels(camera.Zoom))
	viewW, viewH := systems.ViewTiles(camera.Zoom)

	for x := camera.X; x < camera.X+viewW; x++ {
		for y := camera.Y; y < camera.Y+viewH; y++ {
			cell := maze.Cell(x, y)
			if !cell.Passable() && !maze.IsWallFace(x, y) {
				continue
			}
			sx, sy := systems.WorldToScreen(camera, x, y)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), tile, tile, components.CellColor(cell), false)
		}
	}
}

// drawEntities draws every entity with a position and renderable, lowest layer first
func (s *RenderSystem) drawEntities(world *ecs.World, screen *ebiten.Image, camera *components.CameraComponent) {
	type drawable struct {
		pos  *components.PositionComponent
		rend *components.RenderableComponent
	}
	var items []drawable
	for _, entity := range world.GetEntitiesWithComponent(components.Renderable) {
		posComp, hasPos := world.GetComponent(entity.ID, components.Position)
		rendComp, _ := world.GetComponent(entity.ID, components.Renderable)
		if !hasPos {
			continue
		}
		items = append(items, drawable{
			pos:  posComp.(*components.PositionComponent),
			rend: rendComp.(*components.RenderableComponent),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].rend.Layer < items[j].rend.Layer })

	tile := float32(systems.TilePixels(camera.Zoom))
	viewW, viewH := systems.ViewTiles(camera.Zoom)
	for _, it := range items {
		if it.pos.X < camera.X || it.pos.X >= camera.X+viewW || it.pos.Y < camera.Y || it.pos.Y >= camera.Y+viewH {
			continue
		}
		sx, sy := systems.WorldToScreen(camera, it.pos.X, it.pos.Y)
		size := tile * it.rend.Scale
		switch it.rend.Shape {
		case components.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(sx)+tile/2, float32(sy)+tile/2, size/2, it.rend.Color, true)
		default:
			offset := (tile - size) / 2
			vector.DrawFilledRect(screen, float32(sx)+offset, float32(sy)+offset, size, size, it.rend.Color, false)
		}
	}
}

func (s *RenderSystem) drawHUD(world *ecs.World, screen *ebiten.Image, camera *components.CameraComponent) {
	collected := 0
	if player := world.FirstWithTag(components.TagPlayer); player != nil {
		if comp, ok := world.GetComponent(player.ID, components.Wallet); ok {
			collected = comp.(*components.WalletComponent).Coins
		}
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Coins: %d/%d  Zoom: %d", collected, s.coinSystem.Total(), camera.Zoom), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		"WASD/Arrows: Move  Shift: Run  Q/E: Zoom  R: New maze  F1: Log", 8, 24)
}

// drawMessages draws the most recent log lines over the bottom of the screen
func (s *RenderSystem) drawMessages(screen *ebiten.Image) {
	const lines = 10
	const lineHeight = 16
	bounds := screen.Bounds()
	top := bounds.Dy() - lines*lineHeight - 8

	vector.DrawFilledRect(screen, 0, float32(top-4), float32(bounds.Dx()), float32(lines*lineHeight+12),
		color.RGBA{0, 0, 0, 200}, false)

	// oldest at the top so the newest line sits at the bottom
	messages := systems.GetMessageLog().RecentMessages(lines)
	for i := range messages {
		msg := messages[len(messages)-1-i]
		if systems.IsWarning(msg) {
			msg = "! " + msg
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, top+i*lineHeight)
	}
}
