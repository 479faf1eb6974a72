package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamsplit/grid"
)

//----------------------------------------------------------------------------//
// New, CellAt and SetCell Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects an empty row set.
func TestNew_Errors(t *testing.T) {
	g, err := grid.New(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err = grid.New([][]grid.Kind{})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestNew_DeepCopy ensures mutations of the source rows do not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]grid.Kind{
		{grid.Empty, grid.Origin},
		{grid.Splitter, grid.Empty},
	}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[1][0] = grid.ActiveBeam
	k, ok := g.CellAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, grid.Splitter, k)
}

// TestCellAt_Bounds checks lenient reads on a ragged 3-row grid.
//
//	.S.
//	^
//	..|.
func TestCellAt_Bounds(t *testing.T) {
	g, err := grid.New([][]grid.Kind{
		{grid.Empty, grid.Origin, grid.Empty},
		{grid.Splitter},
		{grid.Empty, grid.Empty, grid.ActiveBeam, grid.Empty},
	})
	require.NoError(t, err)

	valid := []struct {
		row, col int
		want     grid.Kind
	}{
		{0, 1, grid.Origin},
		{1, 0, grid.Splitter},
		{2, 2, grid.ActiveBeam},
		{2, 3, grid.Empty},
	}
	for _, tc := range valid {
		k, ok := g.CellAt(tc.row, tc.col)
		assert.True(t, ok, "CellAt(%d,%d) should be present", tc.row, tc.col)
		assert.Equal(t, tc.want, k, "CellAt(%d,%d)", tc.row, tc.col)
	}

	absent := [][2]int{{-1, 0}, {0, -1}, {1, 1}, {0, 3}, {3, 0}, {-5, -5}, {1 << 30, 0}}
	for _, rc := range absent {
		_, ok := g.CellAt(rc[0], rc[1])
		assert.False(t, ok, "CellAt(%d,%d) should be absent", rc[0], rc[1])
		assert.False(t, g.InBounds(rc[0], rc[1]))
	}

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 1, g.RowLen(1))
	assert.Equal(t, 0, g.RowLen(7))
	assert.Equal(t, 0, g.RowLen(-1))
}

// TestSetCell_IgnoresOutOfBounds verifies that writes outside the grid are no-ops.
func TestSetCell_IgnoresOutOfBounds(t *testing.T) {
	g, err := grid.Parse("S.\n..\n")
	require.NoError(t, err)
	before := g.String()

	g.SetCell(-1, 0, grid.ActiveBeam)
	g.SetCell(0, 2, grid.ActiveBeam)
	g.SetCell(2, 0, grid.ActiveBeam)
	assert.Equal(t, before, g.String())

	g.SetCell(1, 1, grid.ActiveBeam)
	assert.True(t, g.Is(grid.ActiveBeam, 1, 1))
	assert.False(t, g.Is(grid.ActiveBeam, 1, 2))
}

//----------------------------------------------------------------------------//
// Origin, Clone and String Tests
//----------------------------------------------------------------------------//

// TestFindOrigin returns the row-major origin or ErrNoOrigin.
func TestFindOrigin(t *testing.T) {
	g, err := grid.Parse("...\n.^.\n..S\n")
	require.NoError(t, err)

	at, err := g.FindOrigin()
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, at)
	assert.Equal(t, at, g.MustFindOrigin())

	noOrigin, err := grid.New([][]grid.Kind{{grid.Empty, grid.Splitter}})
	require.NoError(t, err)
	_, err = noOrigin.FindOrigin()
	assert.ErrorIs(t, err, grid.ErrNoOrigin)
	assert.Panics(t, func() { noOrigin.MustFindOrigin() })
}

// TestClone_Independent verifies that a clone shares no storage with its source.
func TestClone_Independent(t *testing.T) {
	g, err := grid.Parse(".S.\n...\n")
	require.NoError(t, err)

	c := g.Clone()
	c.SetCell(1, 1, grid.ActiveBeam)

	assert.True(t, g.Is(grid.Empty, 1, 1))
	assert.True(t, c.Is(grid.ActiveBeam, 1, 1))

	want := [][]grid.Kind{
		{grid.Empty, grid.Origin, grid.Empty},
		{grid.Empty, grid.ActiveBeam, grid.Empty},
	}
	if diff := cmp.Diff(want, c.Kinds()); diff != "" {
		t.Errorf("clone cells mismatch (-want +got):\n%s", diff)
	}
}

// TestString_RoundTrip renders a parsed grid back to its input form.
func TestString_RoundTrip(t *testing.T) {
	const in = "..S..\n.....\n..^..\n.|...\n"
	g, err := grid.Parse(in)
	require.NoError(t, err)
	if diff := cmp.Diff(in, g.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}

// TestCount tallies kinds.
func TestCount(t *testing.T) {
	g, err := grid.Parse("..S..\n.^.^.\n|...|\n")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count(grid.Origin))
	assert.Equal(t, 2, g.Count(grid.Splitter))
	assert.Equal(t, 2, g.Count(grid.ActiveBeam))
	assert.Equal(t, 10, g.Count(grid.Empty))
}

// TestKind_Runes checks the character form of every kind.
func TestKind_Runes(t *testing.T) {
	cases := map[grid.Kind]string{
		grid.Empty:      ".",
		grid.Origin:     "S",
		grid.ActiveBeam: "|",
		grid.Splitter:   "^",
		grid.Kind(42):   "?",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
	assert.Equal(t, "3,4", grid.Coord{Row: 3, Col: 4}.String())
	assert.Equal(t, grid.Coord{Row: 4, Col: 4}, grid.Coord{Row: 3, Col: 4}.Below())
}
