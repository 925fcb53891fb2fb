package spawners

import (
	"fmt"
	"image/color"

	"misty-maze/components"
	"misty-maze/config"
	"misty-maze/ecs"
	"misty-maze/generation"
)

// EntitySpawner turns generated maze data into game entities
type EntitySpawner struct {
	world      *ecs.World
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		logMessage: logFunc,
	}
}

func (s *EntitySpawner) logf(format string, args ...any) {
	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf(format, args...))
	}
}

// CreateMaze creates the entity that owns the level grid
func (s *EntitySpawner) CreateMaze(m *generation.Maze) *ecs.Entity {
	mazeEntity := s.world.CreateEntity()
	s.world.TagEntity(mazeEntity.ID, components.TagMaze)
	s.world.AddComponent(mazeEntity.ID, components.MazeComponentID, components.NewMazeComponent(m))
	return mazeEntity
}

// CreatePlayer creates the player entity at the spawn point
func (s *EntitySpawner) CreatePlayer(spawn generation.Point) *ecs.Entity {
	playerEntity := s.world.CreateEntity()
	s.world.TagEntity(playerEntity.ID, components.TagPlayer)

	s.world.AddComponent(playerEntity.ID, components.Position, &components.PositionComponent{
		X: spawn.X,
		Y: spawn.Y,
	})
	s.world.AddComponent(playerEntity.ID, components.Renderable, components.NewRenderableComponent(
		components.ShapeCircle, 0.5, color.White, 2,
	))
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(playerEntity.ID, components.Wallet, &components.WalletComponent{})

	s.logf("Player created at %d,%d", spawn.X, spawn.Y)
	return playerEntity
}

// CreateCamera creates a camera entity centred on spawn that follows the target
func (s *EntitySpawner) CreateCamera(targetEntityID uint64, spawn generation.Point) *ecs.Entity {
	cameraEntity := s.world.CreateEntity()
	s.world.TagEntity(cameraEntity.ID, components.TagCamera)

	cameraComp := components.NewCameraComponent(targetEntityID)
	cameraComp.X = spawn.X - config.ScreenWidth/2
	cameraComp.Y = spawn.Y - config.ScreenHeight/2
	s.world.AddComponent(cameraEntity.ID, components.Camera, cameraComp)

	return cameraEntity
}

// CreateCoin creates a single collectible at p
func (s *EntitySpawner) CreateCoin(p generation.Point) *ecs.Entity {
	coinEntity := s.world.CreateEntity()
	s.world.TagEntity(coinEntity.ID, components.TagCoin)

	s.world.AddComponent(coinEntity.ID, components.Position, &components.PositionComponent{X: p.X, Y: p.Y})
	s.world.AddComponent(coinEntity.ID, components.Renderable, components.NewRenderableComponent(
		components.ShapeCircle, 0.3, components.CoinColor, 1,
	))
	s.world.AddComponent(coinEntity.ID, components.Coin, &components.CoinComponent{Value: 1})
	return coinEntity
}

// CreateCoins creates one coin entity per maze coin
func (s *EntitySpawner) CreateCoins(coins []generation.Point) []*ecs.Entity {
	entities := make([]*ecs.Entity, 0, len(coins))
	for _, p := range coins {
		entities = append(entities, s.CreateCoin(p))
	}
	return entities
}

// SpawnLevel populates the world from a maze: the maze entity, its coins,
// the player on the origin and a camera following the player
func (s *EntitySpawner) SpawnLevel(m *generation.Maze) (mazeEntity, playerEntity *ecs.Entity) {
	mazeEntity = s.CreateMaze(m)
	s.CreateCoins(m.Coins)
	playerEntity = s.CreatePlayer(m.Origin)
	s.CreateCamera(uint64(playerEntity.ID), m.Origin)

	s.logf("Maze %dx%d: %d rooms, %d coins", m.Width, m.Height, len(m.Rooms), len(m.Coins))
	return mazeEntity, playerEntity
}

// ClearLevel removes every entity created by SpawnLevel
func (s *EntitySpawner) ClearLevel() {
	for _, tag := range []string{components.TagCoin, components.TagPlayer, components.TagCamera, components.TagMaze} {
		for _, e := range s.world.GetEntitiesWithTag(tag) {
			s.world.RemoveEntity(e.ID)
		}
	}
}
