package components

import (
	"image/color"

	"misty-maze/generation"
)

// PositionComponent stores an entity's grid position
type PositionComponent struct {
	X, Y int
}

// Point returns the position as a maze coordinate
func (p *PositionComponent) Point() generation.Point {
	return generation.Point{X: p.X, Y: p.Y}
}

// Shape selects how a renderable is drawn inside its tile
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
)

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Shape Shape
	Scale float32 // fraction of the tile covered, 1 fills it
	Color color.Color
	Layer int // higher layers draw on top
}

// NewRenderableComponent creates a renderable of the given shape
func NewRenderableComponent(shape Shape, scale float32, clr color.Color, layer int) *RenderableComponent {
	return &RenderableComponent{
		Shape: shape,
		Scale: scale,
		Color: clr,
		Layer: layer,
	}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// CoinComponent marks a collectible
type CoinComponent struct {
	Value int
}

// WalletComponent counts what the player has picked up
type WalletComponent struct {
	Coins int
}

// CameraComponent tracks the viewport position and zoom
type CameraComponent struct {
	X, Y   int    // top-left tile of the view
	Target uint64 // entity the camera follows
	Zoom   int    // power of two applied to the tile size
}

// NewCameraComponent creates a camera that follows the given target
func NewCameraComponent(targetEntityID uint64) *CameraComponent {
	return &CameraComponent{Target: targetEntityID}
}
