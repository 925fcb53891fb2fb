package config

// Screen layout configuration
const (
	// Tile size in pixels at zoom level 0
	TileSize = 16

	// Window dimensions in tiles
	ScreenWidth  = 64
	ScreenHeight = 40

	// Zoom is a power of two applied to TileSize, clamped to this range
	MinZoom = -3
	MaxZoom = 2

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetScreenDimensions returns the logical screen size in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the initial window size; the logical screen is scaled to fit
func GetWindowSize() (width, height int) {
	return 1280, 720
}
