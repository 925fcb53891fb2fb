package systems

import (
	"misty-maze/ecs"
	"misty-maze/generation"
)

// Event type constants
const (
	EventMovement      ecs.EventType = "movement"
	EventCoinCollected ecs.EventType = "coin_collected"
	EventMazeReplaced  ecs.EventType = "maze_replaced"
	EventCameraUpdate  ecs.EventType = "camera_update"
)

// PlayerMoveEvent is emitted for every cell the player steps onto
type PlayerMoveEvent struct {
	EntityID ecs.EntityID
	FromX    int
	FromY    int
	ToX      int
	ToY      int
}

// Type returns the event type
func (e PlayerMoveEvent) Type() ecs.EventType {
	return EventMovement
}

// CoinCollectedEvent is emitted when the player picks up a coin
type CoinCollectedEvent struct {
	PlayerID  ecs.EntityID
	CoinID    ecs.EntityID
	X, Y      int
	Collected int // coins held by the player after pickup
	Remaining int // coins left in the maze
}

// Type returns the event type
func (e CoinCollectedEvent) Type() ecs.EventType {
	return EventCoinCollected
}

// MazeReplacedEvent is emitted after a new maze became the active level
type MazeReplacedEvent struct {
	MazeID ecs.EntityID
	Maze   *generation.Maze
}

// Type returns the event type
func (e MazeReplacedEvent) Type() ecs.EventType {
	return EventMazeReplaced
}

// CameraUpdateEvent is emitted when the camera moves or zooms
type CameraUpdateEvent struct {
	CameraID ecs.EntityID
	X, Y     int
	Zoom     int
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
