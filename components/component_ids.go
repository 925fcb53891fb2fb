package components

import (
	"misty-maze/ecs"
)

// Component IDs for the game
const (
	Position ecs.ComponentID = iota
	Renderable
	Player
	Coin
	Camera
	MazeComponentID
	Wallet
)

// Entity tags
const (
	TagPlayer = "player"
	TagCoin   = "coin"
	TagCamera = "camera"
	TagMaze   = "maze"
)
