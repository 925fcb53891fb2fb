package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"misty-maze/config"
	"misty-maze/ecs"
	"misty-maze/generation"
	"misty-maze/render"
	"misty-maze/spawners"
	"misty-maze/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world          *ecs.World
	input          *render.KeyboardInput
	renderSystem   *render.RenderSystem
	audioSystem    *render.AudioSystem
	mapSystem      *systems.MapSystem
	movementSystem *systems.MovementSystem
	coinSystem     *systems.CoinSystem
	cameraSystem   *systems.CameraSystem
	entitySpawner  *spawners.EntitySpawner
}

// NewGame creates a new game instance and generates the first maze
func NewGame(settings config.Settings) (*Game, error) {
	mazeConfig, err := settings.MazeConfig()
	if err != nil {
		return nil, fmt.Errorf("maze config: %w", err)
	}

	world := ecs.NewWorld()
	input := render.NewKeyboardInput()

	entitySpawner := spawners.NewEntitySpawner(world, systems.GetMessageLog().Add)
	generator := generation.NewMazeGenerator(generation.NewSource(settings.Seed))

	mapSystem := systems.NewMapSystem(generator, mazeConfig, settings.GenerationRetries, entitySpawner, input)
	movementSystem := systems.NewMovementSystem(input)
	coinSystem := systems.NewCoinSystem()
	cameraSystem := systems.NewCameraSystem(input)
	renderSystem := render.NewRenderSystem(mapSystem, coinSystem)
	audioSystem := render.NewAudioSystem(settings.Volume)

	// Movement runs before coins and camera so both see the new position
	world.AddSystem(movementSystem)
	world.AddSystem(coinSystem)
	world.AddSystem(cameraSystem)
	world.AddSystem(mapSystem)

	coinSystem.Initialize(world)
	audioSystem.Initialize(world)

	if settings.Music != "" {
		if err := audioSystem.PlayBGM(settings.Music); err != nil {
			fmt.Printf("Warning: Failed to play music: %v\n", err)
		}
	}

	game := &Game{
		world:          world,
		input:          input,
		renderSystem:   renderSystem,
		audioSystem:    audioSystem,
		mapSystem:      mapSystem,
		movementSystem: movementSystem,
		coinSystem:     coinSystem,
		cameraSystem:   cameraSystem,
		entitySpawner:  entitySpawner,
	}

	if err := mapSystem.Regenerate(world); err != nil {
		return nil, err
	}

	systems.GetMessageLog().Add("Welcome to the misty maze!")
	systems.GetMessageLog().Add("Collect the coins. Press R for a new maze.")

	return game, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	if g.input.JustPressed(systems.ActionToggleLog) {
		g.renderSystem.ToggleLog()
	}

	g.world.Update(1.0 / 60.0)
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)

	bounds := screen.Bounds()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), bounds.Dx()-80, 8)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
