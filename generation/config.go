package generation

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

const (
	// MinDimension is the floor both maze dimensions are clamped to
	MinDimension = 12

	// DefaultCoinProbability is the chance that an eligible cell hosts a coin
	DefaultCoinProbability = 0.5

	// DefaultMaxPlacementAttempts bounds rejection sampling for a single room
	DefaultMaxPlacementAttempts = 10000
)

// ErrInvalidConfig is wrapped by every violation reported from Validate
var ErrInvalidConfig = errors.New("invalid maze config")

// MazeConfig holds every parameter the generator needs
type MazeConfig struct {
	Width           int
	Height          int
	RoomSizeMin     int
	RoomSizeMax     int
	RoomCount       int
	SafeRoomCount   int
	CoinProbability float64

	// MaxPlacementAttempts caps candidate draws per room. Zero or less means
	// DefaultMaxPlacementAttempts.
	MaxPlacementAttempts int
	// ExtraCorridors adds that many links between rooms that are not
	// neighbours in the connection ring. Zero keeps the plain ring.
	ExtraCorridors int
}

// DeriveConfig turns a raw width and height into a full generation config.
// Both dimensions are clamped to MinDimension; no randomness is involved.
func DeriveConfig(width, height int) MazeConfig {
	width = max(width, MinDimension)
	height = max(height, MinDimension)
	side := min(width, height)

	sizeMin := floorLog2(side)
	// small epsilon so exact powers such as 1024^0.7 = 128 don't round down
	sizeMax := int(math.Floor(math.Pow(float64(side), 0.7) + 1e-9))
	roomCount := max(3, (width-1)*(height-1)/(sizeMax*sizeMax))

	return MazeConfig{
		Width:                width,
		Height:               height,
		RoomSizeMin:          sizeMin,
		RoomSizeMax:          sizeMax,
		RoomCount:            roomCount,
		SafeRoomCount:        floorLog2(roomCount),
		CoinProbability:      DefaultCoinProbability,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// Validate checks that the config can plausibly be generated. It is advisory:
// Generate does not call it. All violated rules are joined into one error.
func (c MazeConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.RoomSizeMin > c.RoomSizeMax {
		fail("room size min %d exceeds max %d", c.RoomSizeMin, c.RoomSizeMax)
	}
	if c.RoomSizeMin <= 0 {
		fail("room size min %d must be positive", c.RoomSizeMin)
	}
	if side, need := min(c.Width, c.Height), max(c.RoomSizeMax+2, 10); side < need {
		fail("smallest dimension %d below required %d", side, need)
	}
	if c.RoomCount <= 0 {
		fail("room count %d must be positive", c.RoomCount)
	}
	if c.SafeRoomCount > c.RoomCount {
		fail("safe room count %d exceeds room count %d", c.SafeRoomCount, c.RoomCount)
	}
	if c.SafeRoomCount < 0 {
		fail("safe room count %d is negative", c.SafeRoomCount)
	}
	if c.CoinProbability < 0 || c.CoinProbability > 1 {
		fail("coin probability %v outside [0,1]", c.CoinProbability)
	}

	return errors.Join(errs...)
}

// Valid reports whether Validate finds no problem
func (c MazeConfig) Valid() bool {
	return c.Validate() == nil
}

func (c MazeConfig) placementAttempts() int {
	if c.MaxPlacementAttempts <= 0 {
		return DefaultMaxPlacementAttempts
	}
	return c.MaxPlacementAttempts
}

func floorLog2(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
