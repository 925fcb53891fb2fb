package generation

// CarveCorridor opens an L-shaped path between two points: a horizontal leg
// along the row of the leftmost point, then a vertical leg along the column
// of the rightmost point. Only Blocked cells change, so Safe cells survive
// and carving the same corridor twice is a no-op. It returns the number of
// cells that changed.
func CarveCorridor(cells Grid, p1, p2 Point) int {
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}

	changed := 0
	for x := p1.X; x <= p2.X; x++ {
		if cells.At(x, p1.Y) == Blocked {
			cells.Set(x, p1.Y, Open)
			changed++
		}
	}

	y1, y2 := p1.Y, p2.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if cells.At(p2.X, y) == Blocked {
			cells.Set(p2.X, y, Open)
			changed++
		}
	}

	return changed
}

// connectRooms links every room to the next one in placement order, closing
// the ring from the last room back to the first
func (g *MazeGenerator) connectRooms(cells Grid, rooms []Room) {
	n := len(rooms)
	for i := 0; i < n; i++ {
		from := rooms[i].RandomPoint(g.rng)
		to := rooms[(i+1)%n].RandomPoint(g.rng)
		CarveCorridor(cells, from, to)
	}
}

// addExtraCorridors links up to count random pairs of rooms that are not
// already neighbours in the ring
func (g *MazeGenerator) addExtraCorridors(cells Grid, rooms []Room, count int) {
	n := len(rooms)
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			pairs = append(pairs, [2]int{i, j})
		}
	}

	g.rng.Shuffle(len(pairs), func(a, b int) {
		pairs[a], pairs[b] = pairs[b], pairs[a]
	})
	if count < len(pairs) {
		pairs = pairs[:count]
	}

	for _, p := range pairs {
		CarveCorridor(cells, rooms[p[0]].RandomPoint(g.rng), rooms[p[1]].RandomPoint(g.rng))
	}
}
