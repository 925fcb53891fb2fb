package generation

// pickOrigin returns a random point inside the first safe room in placement
// order. The second result is false when no room is safe.
func (g *MazeGenerator) pickOrigin(rooms []Room) (Point, bool) {
	for _, room := range rooms {
		if room.Safe {
			return room.RandomPoint(g.rng), true
		}
	}
	return Point{}, false
}

// scatterCoins runs one Bernoulli trial per passable cell other than the
// origin. Coins come out in scan order: x major, then y.
func (g *MazeGenerator) scatterCoins(cells Grid, origin Point, probability float64) []Point {
	var coins []Point
	for x := 0; x < cells.Width(); x++ {
		for y := 0; y < cells.Height(); y++ {
			if cells.At(x, y) == Blocked || (Point{x, y}) == origin {
				continue
			}
			if g.rng.Float64() < probability {
				coins = append(coins, Point{x, y})
			}
		}
	}
	return coins
}
