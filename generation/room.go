package generation

// Room is a rectangular footprint in grid coordinates: origin corner plus extents
type Room struct {
	X, Y, W, H int
	Safe       bool
}

// Overlaps reports whether the open interiors of both rooms intersect.
// Rooms that merely share an edge do not overlap.
func (r Room) Overlaps(o Room) bool {
	return max(r.X, o.X) < min(r.X+r.W, o.X+o.W) &&
		max(r.Y, o.Y) < min(r.Y+r.H, o.Y+o.H)
}

// Contains reports whether (x, y) lies inside the room footprint
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RandomPoint draws a uniformly random coordinate from the room footprint
func (r Room) RandomPoint(rng RandomSource) Point {
	return Point{
		X: r.X + rng.Intn(r.W),
		Y: r.Y + rng.Intn(r.H),
	}
}

// Cells calls fn for every coordinate of the footprint, column by column
func (r Room) Cells(fn func(x, y int)) {
	for x := r.X; x < r.X+r.W; x++ {
		for y := r.Y; y < r.Y+r.H; y++ {
			fn(x, y)
		}
	}
}

// Area returns the number of cells in the footprint
func (r Room) Area() int {
	return r.W * r.H
}
