package systems

import (
	"errors"
	"fmt"

	"misty-maze/components"
	"misty-maze/ecs"
	"misty-maze/generation"
	"misty-maze/spawners"
)

// MapSystem owns the active maze. A new maze is generated completely before
// it replaces the old one, so other systems never see a half-built level.
type MapSystem struct {
	generator *generation.MazeGenerator
	config    generation.MazeConfig
	retries   int
	spawner   *spawners.EntitySpawner
	input     Input
	active    *ecs.Entity
}

// NewMapSystem creates a map system. retries is how many extra attempts a
// failed placement gets before Regenerate gives up.
func NewMapSystem(generator *generation.MazeGenerator, cfg generation.MazeConfig, retries int,
	spawner *spawners.EntitySpawner, input Input) *MapSystem {
	if input == nil {
		input = NoInput{}
	}
	return &MapSystem{
		generator: generator,
		config:    cfg,
		retries:   max(retries, 0),
		spawner:   spawner,
		input:     input,
	}
}

// Update regenerates the level on request
func (s *MapSystem) Update(world *ecs.World, dt float64) {
	if !s.input.JustPressed(ActionRegenerate) {
		return
	}
	if err := s.Regenerate(world); err != nil {
		GetMessageLog().Add("ERROR: " + err.Error())
	}
}

// Regenerate builds a fresh maze and makes it the active level. On failure
// the current level stays in place.
func (s *MapSystem) Regenerate(world *ecs.World) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		var m *generation.Maze
		m, err = s.generator.Generate(s.config)
		switch {
		case errors.Is(err, generation.ErrGenerationFailed):
			GetMessageLog().Warn(err.Error())
			continue
		case errors.Is(err, generation.ErrNoSafeOrigin):
			GetMessageLog().Warn(err.Error())
		case err != nil:
			return fmt.Errorf("generating maze: %w", err)
		}
		s.SetActiveMaze(world, m)
		return nil
	}
	return fmt.Errorf("generating maze after %d attempts: %w", s.retries+1, err)
}

// SetActiveMaze replaces the current level with m in one step
func (s *MapSystem) SetActiveMaze(world *ecs.World, m *generation.Maze) {
	s.spawner.ClearLevel()
	mazeEntity, _ := s.spawner.SpawnLevel(m)
	s.active = mazeEntity

	world.EmitEvent(MazeReplacedEvent{MazeID: mazeEntity.ID, Maze: m})
}

// ActiveMaze returns the maze currently in play, or nil
func (s *MapSystem) ActiveMaze(world *ecs.World) *generation.Maze {
	if s.active == nil {
		return nil
	}
	comp, ok := world.GetComponent(s.active.ID, components.MazeComponentID)
	if !ok {
		return nil
	}
	return comp.(*components.MazeComponent).Maze
}

// activeMaze looks up the maze component through its tag
func activeMaze(world *ecs.World) *components.MazeComponent {
	entity := world.FirstWithTag(components.TagMaze)
	if entity == nil {
		return nil
	}
	comp, ok := world.GetComponent(entity.ID, components.MazeComponentID)
	if !ok {
		return nil
	}
	return comp.(*components.MazeComponent)
}
