package generation

import "fmt"

// MazeGenerator builds mazes from a config using a single random stream.
// It is not safe for concurrent use; give each goroutine its own generator.
type MazeGenerator struct {
	rng RandomSource
}

// NewMazeGenerator creates a generator drawing from rng. A nil rng gets a
// clock-seeded source.
func NewMazeGenerator(rng RandomSource) *MazeGenerator {
	if rng == nil {
		rng = NewSource(0)
	}
	return &MazeGenerator{rng: rng}
}

// SetSeed allows setting a specific seed for reproducible mazes
func (g *MazeGenerator) SetSeed(seed int64) {
	g.rng = NewSource(seed)
}

// Generate is shorthand for NewMazeGenerator(rng).Generate(cfg)
func Generate(cfg MazeConfig, rng RandomSource) (*Maze, error) {
	return NewMazeGenerator(rng).Generate(cfg)
}

// Generate runs the whole pipeline: grid, room placement and carving, ring
// connection, origin and coins.
//
// On a placement failure it returns a nil maze and a *GenerationFailedError.
// When no room is safe it returns the complete maze together with
// ErrNoSafeOrigin.
func (g *MazeGenerator) Generate(cfg MazeConfig) (*Maze, error) {
	if err := checkSampleable(cfg); err != nil {
		return nil, err
	}

	cells := NewGrid(cfg.Width, cfg.Height)
	safe := g.assignSafeRooms(cfg.RoomCount, cfg.SafeRoomCount)

	rooms := make([]Room, 0, cfg.RoomCount)
	for i := 0; i < cfg.RoomCount; i++ {
		room, err := g.placeRoom(cfg, rooms, i)
		if err != nil {
			return nil, err
		}
		room.Safe = safe[i]
		carveRoom(cells, room)
		rooms = append(rooms, room)
	}

	g.connectRooms(cells, rooms)
	if cfg.ExtraCorridors > 0 {
		g.addExtraCorridors(cells, rooms, cfg.ExtraCorridors)
	}

	origin, found := g.pickOrigin(rooms)
	coins := g.scatterCoins(cells, origin, cfg.CoinProbability)

	maze := &Maze{
		Width:  cfg.Width,
		Height: cfg.Height,
		Origin: origin,
		Cells:  cells,
		Coins:  coins,
		Rooms:  rooms,
	}
	if !found {
		return maze, ErrNoSafeOrigin
	}
	return maze, nil
}

// checkSampleable rejects configs the random draws cannot even be made from.
// Configs that are merely too crowded fail later with GenerationFailedError.
func checkSampleable(cfg MazeConfig) error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	case cfg.RoomCount < 0:
		return fmt.Errorf("%w: room count %d", ErrInvalidConfig, cfg.RoomCount)
	case cfg.RoomCount > 0 && (cfg.RoomSizeMin <= 0 || cfg.RoomSizeMin > cfg.RoomSizeMax):
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidConfig, cfg.RoomSizeMin, cfg.RoomSizeMax)
	case cfg.SafeRoomCount < 0 || cfg.SafeRoomCount > cfg.RoomCount:
		return fmt.Errorf("%w: %d safe rooms out of %d", ErrInvalidConfig, cfg.SafeRoomCount, cfg.RoomCount)
	}
	return nil
}
