package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"misty-maze/config"
	"misty-maze/generation"
)

func main() {
	configPath := ""
	ascii := false

	// Check for command-line flags
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				log.Fatal("--config needs a path")
			}
			i++
			configPath = args[i]
		case "--ascii":
			ascii = true
		default:
			log.Fatalf("unknown flag %q", args[i])
		}
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		fmt.Printf("Warning: %v, using defaults\n", err)
	}

	if ascii {
		// Print one maze to stdout and exit
		if err := printMaze(settings); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame(settings)
	if err != nil {
		log.Fatal(err)
	}

	// Get window size from config
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(settings.Fullscreen)

	ebiten.SetWindowTitle("Misty Maze")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func printMaze(settings config.Settings) error {
	cfg, err := settings.MazeConfig()
	if err != nil {
		return err
	}
	generator := generation.NewMazeGenerator(generation.NewSource(settings.Seed))

	var maze *generation.Maze
	for attempt := 0; attempt <= settings.GenerationRetries; attempt++ {
		maze, err = generator.Generate(cfg)
		if !errors.Is(err, generation.ErrGenerationFailed) {
			break
		}
	}
	if errors.Is(err, generation.ErrNoSafeOrigin) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err != nil {
		return err
	}

	fmt.Print(maze.String())
	fmt.Printf("%dx%d, %d rooms, %d coins, origin %d,%d\n",
		maze.Width, maze.Height, len(maze.Rooms), len(maze.Coins), maze.Origin.X, maze.Origin.Y)
	return nil
}
