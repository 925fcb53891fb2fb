package components

import (
	"image/color"

	"misty-maze/generation"
)

// MazeComponent holds the generated maze. The maze itself is never mutated;
// a new level replaces the whole component.
type MazeComponent struct {
	Maze *generation.Maze
}

// NewMazeComponent wraps a generated maze
func NewMazeComponent(m *generation.Maze) *MazeComponent {
	return &MazeComponent{Maze: m}
}

// IsWall reports whether (x, y) blocks movement. Out of bounds counts as wall.
func (m *MazeComponent) IsWall(x, y int) bool {
	return !m.Maze.Cell(x, y).Passable()
}

// Tile colors
var (
	FloorColor = color.RGBA{40, 40, 56, 255}
	SafeColor  = color.RGBA{46, 92, 70, 255}
	WallColor  = color.RGBA{120, 110, 100, 255}
	CoinColor  = color.RGBA{240, 200, 40, 255}
)

// CellColor returns the fill color for a cell kind
func CellColor(c generation.Cell) color.Color {
	switch c {
	case generation.Open:
		return FloorColor
	case generation.Safe:
		return SafeColor
	default:
		return WallColor
	}
}
