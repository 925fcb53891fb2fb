package generation

import "fmt"

// Cell classifies a single grid unit
type Cell uint8

// Cell kinds. The zero value is Blocked so a fresh grid starts walled in.
const (
	Blocked Cell = iota
	Open
	Safe
)

// String returns a short name for the cell kind
func (c Cell) String() string {
	switch c {
	case Blocked:
		return "blocked"
	case Open:
		return "open"
	case Safe:
		return "safe"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Rank orders cells by desirability for overwrite purposes: Safe > Open > Blocked
func (c Cell) Rank() int {
	switch c {
	case Safe:
		return 2
	case Open:
		return 1
	default:
		return 0
	}
}

// Passable reports whether the cell can be walked on
func (c Cell) Passable() bool {
	return c != Blocked
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Grid is a width x height field of cells stored in a single flat buffer.
// Cell (x, y) lives at index x*height+y.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a grid with every cell Blocked
func NewGrid(width, height int) Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("generation: negative grid size %dx%d", width, height))
	}
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns
func (g Grid) Width() int { return g.width }

// Height returns the number of rows
func (g Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("generation: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return x*g.height + y
}

// At returns the cell at (x, y). It panics if the coordinate is out of range.
func (g Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set overwrites the cell at (x, y) unconditionally
func (g Grid) Set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// Upgrade replaces the cell at (x, y) with c only if c ranks higher.
// It reports whether the cell changed.
func (g Grid) Upgrade(x, y int, c Cell) bool {
	i := g.index(x, y)
	if c.Rank() <= g.cells[i].Rank() {
		return false
	}
	g.cells[i] = c
	return true
}

// Count returns how many cells have kind c
func (g Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same size and contents
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
