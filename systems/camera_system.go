package systems

import (
	"misty-maze/components"
	"misty-maze/config"
	"misty-maze/ecs"
)

// CameraSystem keeps the camera centred on its target and applies zoom
type CameraSystem struct {
	input Input
}

// NewCameraSystem creates a new camera system
func NewCameraSystem(input Input) *CameraSystem {
	if input == nil {
		input = NoInput{}
	}
	return &CameraSystem{input: input}
}

// TilePixels returns the on-screen size of one tile at a zoom level
func TilePixels(zoom int) float64 {
	size := float64(config.TileSize)
	for ; zoom > 0; zoom-- {
		size *= 2
	}
	for ; zoom < 0; zoom++ {
		size /= 2
	}
	return size
}

// ViewTiles returns how many tiles fit across and down the screen at a zoom level
func ViewTiles(zoom int) (w, h int) {
	tile := TilePixels(zoom)
	return int(float64(config.WindowWidth)/tile) + 1, int(float64(config.WindowHeight)/tile) + 1
}

// Update updates every camera to follow its target
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	zoomDelta := 0
	if s.input.JustPressed(ActionZoomIn) {
		zoomDelta++
	}
	if s.input.JustPressed(ActionZoomOut) {
		zoomDelta--
	}

	for _, cameraEntity := range world.GetEntitiesWithTag(components.TagCamera) {
		comp, ok := world.GetComponent(cameraEntity.ID, components.Camera)
		if !ok {
			continue
		}
		camera := comp.(*components.CameraComponent)
		oldX, oldY, oldZoom := camera.X, camera.Y, camera.Zoom

		camera.Zoom = min(max(camera.Zoom+zoomDelta, config.MinZoom), config.MaxZoom)
		s.follow(world, camera)

		if oldX != camera.X || oldY != camera.Y || oldZoom != camera.Zoom {
			world.EmitEvent(CameraUpdateEvent{
				CameraID: cameraEntity.ID,
				X:        camera.X,
				Y:        camera.Y,
				Zoom:     camera.Zoom,
			})
		}
	}
}

// follow centres the camera on its target, if the target still exists
func (s *CameraSystem) follow(world *ecs.World, camera *components.CameraComponent) {
	if camera.Target == 0 {
		return
	}
	comp, ok := world.GetComponent(ecs.EntityID(camera.Target), components.Position)
	if !ok {
		return
	}
	target := comp.(*components.PositionComponent)
	w, h := ViewTiles(camera.Zoom)
	camera.X = target.X - w/2
	camera.Y = target.Y - h/2
}

// WorldToScreen converts a tile coordinate to the pixel position of its
// top-left corner for the given camera
func WorldToScreen(camera *components.CameraComponent, worldX, worldY int) (float64, float64) {
	tile := TilePixels(camera.Zoom)
	return float64(worldX-camera.X) * tile, float64(worldY-camera.Y) * tile
}
