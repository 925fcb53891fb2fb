package spawners

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misty-maze/components"
	"misty-maze/ecs"
	"misty-maze/generation"
)

func testMaze(t *testing.T) *generation.Maze {
	t.Helper()
	cfg := generation.DeriveConfig(80, 50)
	cfg.RoomCount = 6
	m, err := generation.Generate(cfg, rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	return m
}

func TestSpawnLevel(t *testing.T) {
	world := ecs.NewWorld()
	var logged []string
	spawner := NewEntitySpawner(world, func(msg string) { logged = append(logged, msg) })

	m := testMaze(t)
	mazeEntity, player := spawner.SpawnLevel(m)

	comp, ok := world.GetComponent(mazeEntity.ID, components.MazeComponentID)
	require.True(t, ok)
	assert.Same(t, m, comp.(*components.MazeComponent).Maze)

	pos, ok := world.GetComponent(player.ID, components.Position)
	require.True(t, ok)
	assert.Equal(t, m.Origin, pos.(*components.PositionComponent).Point())
	assert.True(t, world.HasComponent(player.ID, components.Wallet))

	coins := world.GetEntitiesWithTag(components.TagCoin)
	require.Len(t, coins, len(m.Coins))
	for i, e := range coins {
		p, _ := world.GetComponent(e.ID, components.Position)
		assert.Equal(t, m.Coins[i], p.(*components.PositionComponent).Point())
	}

	cam := world.FirstWithTag(components.TagCamera)
	require.NotNil(t, cam)
	c, _ := world.GetComponent(cam.ID, components.Camera)
	assert.Equal(t, uint64(player.ID), c.(*components.CameraComponent).Target)

	assert.NotEmpty(t, logged)
}

func TestClearLevel(t *testing.T) {
	world := ecs.NewWorld()
	spawner := NewEntitySpawner(world, nil)
	spawner.SpawnLevel(testMaze(t))
	require.NotZero(t, world.EntityCount())

	spawner.ClearLevel()
	assert.Zero(t, world.EntityCount())
}
