package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid_AllBlocked(t *testing.T) {
	g := NewGrid(7, 4)
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 28, g.Count(Blocked))
}

func TestGrid_SetAndAt(t *testing.T) {
	g := NewGrid(5, 3)
	g.Set(4, 2, Safe)
	g.Set(0, 1, Open)

	assert.Equal(t, Safe, g.At(4, 2))
	assert.Equal(t, Open, g.At(0, 1))
	assert.Equal(t, Blocked, g.At(1, 0))
	assert.Equal(t, Blocked, g.At(1, 2))
}

func TestGrid_OutOfBoundsPanics(t *testing.T) {
	g := NewGrid(3, 3)
	assert.Panics(t, func() { g.At(3, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
	assert.Panics(t, func() { g.Set(-1, 0, Open) })
	assert.Panics(t, func() { g.Upgrade(0, 3, Open) })
	assert.False(t, g.InBounds(3, 0))
	assert.True(t, g.InBounds(2, 2))
}

func TestGrid_UpgradeNeverLowers(t *testing.T) {
	g := NewGrid(2, 1)

	assert.True(t, g.Upgrade(0, 0, Open))
	assert.True(t, g.Upgrade(0, 0, Safe))
	assert.False(t, g.Upgrade(0, 0, Open))
	assert.False(t, g.Upgrade(0, 0, Blocked))
	assert.Equal(t, Safe, g.At(0, 0))

	assert.False(t, g.Upgrade(1, 0, Blocked))
	assert.Equal(t, Blocked, g.At(1, 0))
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Clone()
	c.Set(1, 1, Safe)

	assert.Equal(t, Blocked, g.At(1, 1))
	assert.False(t, g.Equal(c))
	g.Set(1, 1, Safe)
	assert.True(t, g.Equal(c))
	assert.False(t, g.Equal(NewGrid(3, 4)))
}

func TestCellRank(t *testing.T) {
	assert.Greater(t, Safe.Rank(), Open.Rank())
	assert.Greater(t, Open.Rank(), Blocked.Rank())
	assert.False(t, Blocked.Passable())
	assert.True(t, Open.Passable())
	assert.True(t, Safe.Passable())
	assert.Equal(t, "safe", Safe.String())
}

func TestRoomOverlaps(t *testing.T) {
	a := Room{X: 2, Y: 2, W: 3, H: 3}
	cases := []struct {
		name string
		b    Room
		want bool
	}{
		{"Same", a, true},
		{"Inside", Room{X: 3, Y: 3, W: 1, H: 1}, true},
		{"Partial", Room{X: 4, Y: 4, W: 3, H: 3}, true},
		{"TouchingRightEdge", Room{X: 5, Y: 2, W: 3, H: 3}, false},
		{"TouchingBottomEdge", Room{X: 2, Y: 5, W: 3, H: 3}, false},
		{"TouchingCorner", Room{X: 5, Y: 5, W: 1, H: 1}, false},
		{"Apart", Room{X: 9, Y: 9, W: 2, H: 2}, false},
		{"SameColumnsOnly", Room{X: 2, Y: 8, W: 3, H: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestRoomRandomPointInside(t *testing.T) {
	r := Room{X: 3, Y: 7, W: 4, H: 2}
	rng := NewSource(11)
	for i := 0; i < 200; i++ {
		p := r.RandomPoint(rng)
		assert.True(t, r.Contains(p.X, p.Y), "point %v outside %+v", p, r)
	}
	n := 0
	r.Cells(func(x, y int) { n++ })
	assert.Equal(t, r.Area(), n)
}
