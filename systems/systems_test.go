package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misty-maze/components"
	"misty-maze/config"
	"misty-maze/ecs"
	"misty-maze/generation"
	"misty-maze/spawners"
)

// fakeInput reports the actions in its sets
type fakeInput struct {
	just map[Action]bool
	held map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{just: map[Action]bool{}, held: map[Action]bool{}}
}

func (f *fakeInput) JustPressed(a Action) bool { return f.just[a] }
func (f *fakeInput) Pressed(a Action) bool     { return f.held[a] }

// corridorMaze is a 7x3 maze with a single open row y=1 from x=1..5
func corridorMaze(coins ...generation.Point) *generation.Maze {
	cells := generation.NewGrid(7, 3)
	for x := 1; x <= 5; x++ {
		cells.Set(x, 1, generation.Open)
	}
	cells.Set(1, 1, generation.Safe)
	return &generation.Maze{
		Width:  7,
		Height: 3,
		Origin: generation.Point{X: 1, Y: 1},
		Cells:  cells,
		Coins:  coins,
		Rooms:  []generation.Room{{X: 1, Y: 1, W: 1, H: 1, Safe: true}},
	}
}

type harness struct {
	world   *ecs.World
	input   *fakeInput
	maps    *MapSystem
	moves   *MovementSystem
	coins   *CoinSystem
	camera  *CameraSystem
	spawner *spawners.EntitySpawner
}

func newHarness(t *testing.T, cfg generation.MazeConfig) *harness {
	t.Helper()
	world := ecs.NewWorld()
	input := newFakeInput()
	spawner := spawners.NewEntitySpawner(world, GetMessageLog().Add)
	gen := generation.NewMazeGenerator(rand.New(rand.NewSource(5)))

	h := &harness{
		world:   world,
		input:   input,
		maps:    NewMapSystem(gen, cfg, 2, spawner, input),
		moves:   NewMovementSystem(input),
		coins:   NewCoinSystem(),
		camera:  NewCameraSystem(input),
		spawner: spawner,
	}
	h.coins.Initialize(world)
	world.AddSystem(h.moves)
	world.AddSystem(h.coins)
	world.AddSystem(h.camera)
	world.AddSystem(h.maps)
	return h
}

func (h *harness) playerPos(t *testing.T) *components.PositionComponent {
	t.Helper()
	player := h.world.FirstWithTag(components.TagPlayer)
	require.NotNil(t, player)
	comp, ok := h.world.GetComponent(player.ID, components.Position)
	require.True(t, ok)
	return comp.(*components.PositionComponent)
}

func (h *harness) wallet(t *testing.T) int {
	t.Helper()
	player := h.world.FirstWithTag(components.TagPlayer)
	comp, ok := h.world.GetComponent(player.ID, components.Wallet)
	require.True(t, ok)
	return comp.(*components.WalletComponent).Coins
}

func roomyConfig() generation.MazeConfig {
	cfg := generation.DeriveConfig(80, 50)
	cfg.RoomCount = 6
	return cfg
}

func TestMapSystem_RegenerateReplacesLevel(t *testing.T) {
	h := newHarness(t, roomyConfig())
	var replaced []*generation.Maze
	h.world.Subscribe(EventMazeReplaced, func(e ecs.Event) {
		replaced = append(replaced, e.(MazeReplacedEvent).Maze)
	})

	require.NoError(t, h.maps.Regenerate(h.world))
	first := h.maps.ActiveMaze(h.world)
	require.NotNil(t, first)
	assert.Equal(t, first.Origin, h.playerPos(t).Point())
	assert.Equal(t, len(first.Coins), h.coins.Total())

	h.input.just[ActionRegenerate] = true
	h.world.Update(1.0 / 60.0)
	second := h.maps.ActiveMaze(h.world)
	assert.NotSame(t, first, second)
	assert.Len(t, h.world.GetEntitiesWithTag(components.TagMaze), 1, "old maze entity removed")
	assert.Len(t, h.world.GetEntitiesWithTag(components.TagPlayer), 1)
	assert.Len(t, h.world.GetEntitiesWithTag(components.TagCoin), len(second.Coins))
	assert.Equal(t, []*generation.Maze{first, second}, replaced)
}

func TestMapSystem_FailureKeepsCurrentLevel(t *testing.T) {
	h := newHarness(t, roomyConfig())
	require.NoError(t, h.maps.Regenerate(h.world))
	current := h.maps.ActiveMaze(h.world)

	crowded := generation.DeriveConfig(12, 12)
	crowded.RoomCount = 400
	crowded.MaxPlacementAttempts = 20
	h.maps.config = crowded

	err := h.maps.Regenerate(h.world)
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Same(t, current, h.maps.ActiveMaze(h.world))
}

func TestMapSystem_NoSafeOriginStillPlays(t *testing.T) {
	cfg := roomyConfig()
	cfg.SafeRoomCount = 0
	h := newHarness(t, cfg)

	require.NoError(t, h.maps.Regenerate(h.world))
	assert.NotNil(t, h.maps.ActiveMaze(h.world))
	recent := GetMessageLog().RecentMessages(5)
	found := false
	for _, msg := range recent {
		if IsWarning(msg) {
			found = true
		}
	}
	assert.True(t, found, "warning logged for missing safe room")
}

func TestMovement_StopsAtWalls(t *testing.T) {
	h := newHarness(t, roomyConfig())
	h.maps.SetActiveMaze(h.world, corridorMaze())

	assert.Zero(t, h.moves.MovePlayer(h.world, 0, -1, 1), "wall above")
	assert.Zero(t, h.moves.MovePlayer(h.world, -1, 0, 1), "wall left")
	assert.Equal(t, 3, h.moves.MovePlayer(h.world, 1, 0, 3))
	assert.Equal(t, 1, h.moves.MovePlayer(h.world, 1, 0, 5), "stops before the wall")
	assert.Equal(t, generation.Point{X: 5, Y: 1}, h.playerPos(t).Point())
}

func TestMovement_InputAndRun(t *testing.T) {
	h := newHarness(t, roomyConfig())
	h.maps.SetActiveMaze(h.world, corridorMaze())

	h.input.just[ActionRight] = true
	h.world.Update(1.0 / 60.0)
	assert.Equal(t, 2, h.playerPos(t).X)

	h.input.held[ActionRun] = true
	h.world.Update(1.0 / 60.0)
	assert.Equal(t, 4, h.playerPos(t).X)

	h.input.just = map[Action]bool{}
	h.world.Update(1.0 / 60.0)
	assert.Equal(t, 4, h.playerPos(t).X, "no input, no movement")
}

func TestCoins_CollectedOnStep(t *testing.T) {
	h := newHarness(t, roomyConfig())
	h.maps.SetActiveMaze(h.world, corridorMaze(generation.Point{X: 2, Y: 1}, generation.Point{X: 3, Y: 1}))
	require.Equal(t, 2, h.coins.Total())

	var events []CoinCollectedEvent
	h.world.Subscribe(EventCoinCollected, func(e ecs.Event) {
		events = append(events, e.(CoinCollectedEvent))
	})

	// running over both coins collects each one
	h.moves.MovePlayer(h.world, 1, 0, 2)
	assert.Equal(t, 2, h.wallet(t))
	assert.Zero(t, h.coins.Remaining())
	assert.Empty(t, h.world.GetEntitiesWithTag(components.TagCoin))
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Remaining)
	assert.Equal(t, 2, events[1].Collected)

	// walking back over empty cells changes nothing
	h.moves.MovePlayer(h.world, -1, 0, 2)
	assert.Equal(t, 2, h.wallet(t))
	assert.Len(t, events, 2)
}

func TestCamera_FollowsAndZooms(t *testing.T) {
	h := newHarness(t, roomyConfig())
	h.maps.SetActiveMaze(h.world, corridorMaze())

	camEntity := h.world.FirstWithTag(components.TagCamera)
	require.NotNil(t, camEntity)
	comp, _ := h.world.GetComponent(camEntity.ID, components.Camera)
	cam := comp.(*components.CameraComponent)

	h.moves.MovePlayer(h.world, 1, 0, 2)
	h.world.Update(1.0 / 60.0)
	w, _ := ViewTiles(0)
	assert.Equal(t, 3-w/2, cam.X)

	h.input.just[ActionZoomIn] = true
	for i := 0; i < 10; i++ {
		h.world.Update(1.0 / 60.0)
	}
	assert.Equal(t, config.MaxZoom, cam.Zoom)

	h.input.just = map[Action]bool{ActionZoomOut: true}
	for i := 0; i < 10; i++ {
		h.world.Update(1.0 / 60.0)
	}
	assert.Equal(t, config.MinZoom, cam.Zoom)

	x, y := WorldToScreen(cam, cam.X+2, cam.Y+1)
	assert.Equal(t, 2*TilePixels(cam.Zoom), x)
	assert.Equal(t, TilePixels(cam.Zoom), y)
}

func TestTilePixels(t *testing.T) {
	assert.Equal(t, float64(config.TileSize), TilePixels(0))
	assert.Equal(t, float64(config.TileSize*4), TilePixels(2))
	assert.Equal(t, float64(config.TileSize)/8, TilePixels(-3))
}

func TestMessageLog(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for i := 0; i < 5; i++ {
		ml.Addf("m%d", i)
	}
	ml.Warn("careful")

	assert.Len(t, ml.Messages, 3)
	assert.Equal(t, []string{"WARNING: careful", "m4"}, ml.RecentMessages(2))
	assert.Len(t, ml.RecentMessages(10), 3)
	assert.True(t, IsWarning(ml.RecentMessages(1)[0]))
	assert.False(t, IsWarning("m4"))

	ml.Clear()
	assert.Empty(t, ml.RecentMessages(1))
}
