package generation

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Maze is the finished, read-only result of a generation run
type Maze struct {
	Width  int
	Height int
	Origin Point
	Cells  Grid
	Coins  []Point

	// Rooms are kept in placement order for debugging; consumers only need
	// Cells, Coins and Origin.
	Rooms []Room
}

// Cell returns the cell at (x, y); anything outside the maze reads as Blocked
func (m *Maze) Cell(x, y int) Cell {
	if !m.Cells.InBounds(x, y) {
		return Blocked
	}
	return m.Cells.At(x, y)
}

// IsWallFace reports whether (x, y) is Blocked and touches a passable cell in
// any of its eight neighbours. Only these cells need a visible wall or a
// collider; solid rock further away can be skipped.
func (m *Maze) IsWallFace(x, y int) bool {
	if m.Cell(x, y) != Blocked {
		return false
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.Cell(x+dx, y+dy).Passable() {
				return true
			}
		}
	}
	return false
}

// SafeRooms returns the rooms flagged safe, in placement order
func (m *Maze) SafeRooms() []Room {
	var safe []Room
	for _, r := range m.Rooms {
		if r.Safe {
			safe = append(safe, r)
		}
	}
	return safe
}

// Reachable flood fills over passable cells from start using 4-neighbour
// steps. A Blocked start yields an empty set.
func (m *Maze) Reachable(start Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if m.Cell(start.X, start.Y) == Blocked {
		return seen
	}

	queue := []Point{start}
	seen.Put(start)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := Point{p.X + d.X, p.Y + d.Y}
			if seen.Has(n) || !m.Cell(n.X, n.Y).Passable() {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

// String draws the maze one row per line, top row first:
// '#' blocked, '.' open, 's' safe, 'o' coin, '@' origin.
func (m *Maze) String() string {
	coins := mapset.New[Point]()
	for _, c := range m.Coins {
		coins.Put(c)
	}

	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{x, y}
			switch {
			case p == m.Origin:
				b.WriteByte('@')
			case coins.Has(p):
				b.WriteByte('o')
			case m.Cells.At(x, y) == Safe:
				b.WriteByte('s')
			case m.Cells.At(x, y) == Open:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
