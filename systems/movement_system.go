package systems

import (
	"misty-maze/components"
	"misty-maze/ecs"
)

// RunSteps is how many cells one key press covers while running
const RunSteps = 2

// MovementSystem moves the player one cell per key press. Blocked cells act
// as static colliders.
type MovementSystem struct {
	input Input
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(input Input) *MovementSystem {
	if input == nil {
		input = NoInput{}
	}
	return &MovementSystem{input: input}
}

// Update handles player movement
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	dx, dy, ok := s.direction()
	if !ok {
		return
	}
	steps := 1
	if s.input.Pressed(ActionRun) {
		steps = RunSteps
	}
	s.MovePlayer(world, dx, dy, steps)
}

// MovePlayer walks the player up to steps cells in direction (dx, dy),
// stopping at the first wall. Each cell entered emits a PlayerMoveEvent.
// It returns how many cells the player moved.
func (s *MovementSystem) MovePlayer(world *ecs.World, dx, dy, steps int) int {
	player := world.FirstWithTag(components.TagPlayer)
	maze := activeMaze(world)
	if player == nil || maze == nil {
		return 0
	}
	comp, ok := world.GetComponent(player.ID, components.Position)
	if !ok {
		return 0
	}
	position := comp.(*components.PositionComponent)

	moved := 0
	for ; moved < steps; moved++ {
		newX, newY := position.X+dx, position.Y+dy
		if maze.IsWall(newX, newY) {
			break
		}
		oldX, oldY := position.X, position.Y
		position.X, position.Y = newX, newY

		world.EmitEvent(PlayerMoveEvent{
			EntityID: player.ID,
			FromX:    oldX,
			FromY:    oldY,
			ToX:      newX,
			ToY:      newY,
		})
	}
	return moved
}

// direction combines the pressed direction actions into one step
func (s *MovementSystem) direction() (dx, dy int, ok bool) {
	if s.input.JustPressed(ActionUp) {
		dy--
	}
	if s.input.JustPressed(ActionDown) {
		dy++
	}
	if s.input.JustPressed(ActionLeft) {
		dx--
	}
	if s.input.JustPressed(ActionRight) {
		dx++
	}
	return dx, dy, dx != 0 || dy != 0
}
