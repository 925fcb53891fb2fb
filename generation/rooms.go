package generation

// assignSafeRooms returns one flag per room index with exactly safeCount set,
// shuffled so that safety does not depend on placement order
func (g *MazeGenerator) assignSafeRooms(roomCount, safeCount int) []bool {
	flags := make([]bool, roomCount)
	for i := 0; i < safeCount; i++ {
		flags[i] = true
	}
	g.rng.Shuffle(len(flags), func(i, j int) {
		flags[i], flags[j] = flags[j], flags[i]
	})
	return flags
}

// placeRoom draws candidates until one overlaps none of the placed rooms.
// The room keeps a one cell margin from the grid edge.
func (g *MazeGenerator) placeRoom(cfg MazeConfig, placed []Room, index int) (Room, error) {
	sizeSpan := cfg.RoomSizeMax - cfg.RoomSizeMin + 1
	attempts := cfg.placementAttempts()

	for attempt := 0; attempt < attempts; attempt++ {
		w := cfg.RoomSizeMin + g.rng.Intn(sizeSpan)
		h := cfg.RoomSizeMin + g.rng.Intn(sizeSpan)

		xSpan := cfg.Width - w - 2
		ySpan := cfg.Height - h - 2
		if xSpan <= 0 || ySpan <= 0 {
			// room too large for the grid at this size
			continue
		}

		candidate := Room{
			X: 1 + g.rng.Intn(xSpan),
			Y: 1 + g.rng.Intn(ySpan),
			W: w,
			H: h,
		}
		if !overlapsAny(candidate, placed) {
			return candidate, nil
		}
	}

	return Room{}, &GenerationFailedError{RoomIndex: index, Attempts: attempts}
}

func overlapsAny(candidate Room, placed []Room) bool {
	for _, prev := range placed {
		if candidate.Overlaps(prev) {
			return true
		}
	}
	return false
}

// carveRoom stamps the footprint into the grid. Safe rooms overwrite whatever
// is there; other rooms only open Blocked cells.
func carveRoom(cells Grid, room Room) {
	room.Cells(func(x, y int) {
		if room.Safe {
			cells.Set(x, y, Safe)
			return
		}
		cells.Upgrade(x, y, Open)
	})
}
