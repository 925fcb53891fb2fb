package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed matches any *GenerationFailedError
	ErrGenerationFailed = errors.New("maze generation failed")

	// ErrNoSafeOrigin is returned alongside a complete maze when no room was
	// flagged safe. The origin then falls back to (0,0), which may be Blocked.
	ErrNoSafeOrigin = errors.New("no safe room to spawn in, origin defaults to (0,0)")
)

// GenerationFailedError reports a room that could not be placed without
// overlapping earlier rooms within the retry budget
type GenerationFailedError struct {
	RoomIndex int
	Attempts  int
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("maze generation failed: room %d not placed after %d attempts", e.RoomIndex, e.Attempts)
}

// Is lets errors.Is match ErrGenerationFailed
func (e *GenerationFailedError) Is(target error) bool {
	return target == ErrGenerationFailed
}
