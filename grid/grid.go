package grid

import (
	"strings"
)

// New constructs a Grid from rows of kinds.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows is empty. Origin uniqueness is not checked
// here; use Parse for validated input.
// Complexity: O(R×C) time and memory.
func New(rows [][]Kind) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Kind, len(rows))
	for r, row := range rows {
		cells[r] = make([]Kind, len(row))
		copy(cells[r], row)
	}

	return &Grid{cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// RowLen returns the length of row, or 0 if row is out of bounds.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.cells) {
		return 0
	}
	return len(g.cells[row])
}

// InBounds reports whether (row,col) addresses a cell of this grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < len(g.cells[row])
}

// CellAt returns the kind at (row,col) and true, or false when the
// coordinate lies outside that row. Negative coordinates are absent.
func (g *Grid) CellAt(row, col int) (Kind, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	return g.cells[row][col], true
}

// Is reports whether (row,col) is in bounds and holds kind.
func (g *Grid) Is(kind Kind, row, col int) bool {
	k, ok := g.CellAt(row, col)
	return ok && k == kind
}

// SetCell writes kind at (row,col). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(row, col int, kind Kind) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = kind
}

// FindOrigin scans in row-major order and returns the first Origin cell.
// Returns ErrNoOrigin if the grid has none.
// Complexity: O(R×C).
func (g *Grid) FindOrigin() (Coord, error) {
	for r, row := range g.cells {
		for c, k := range row {
			if k == Origin {
				return Coord{Row: r, Col: c}, nil
			}
		}
	}
	return Coord{}, ErrNoOrigin
}

// MustFindOrigin is FindOrigin for grids that are well formed by
// construction. It panics when the origin is missing.
func (g *Grid) MustFindOrigin() Coord {
	at, err := g.FindOrigin()
	if err != nil {
		panic(err)
	}
	return at
}

// Count returns how many cells hold kind.
func (g *Grid) Count(kind Kind) int {
	n := 0
	for _, row := range g.cells {
		for _, k := range row {
			if k == kind {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	cells := make([][]Kind, len(g.cells))
	for r, row := range g.cells {
		cells[r] = make([]Kind, len(row))
		copy(cells[r], row)
	}
	return &Grid{cells: cells}
}

// Kinds returns a deep copy of the cells, row by row.
func (g *Grid) Kinds() [][]Kind {
	return g.Clone().cells
}

// String renders the grid in its character form, one newline-terminated
// line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, k := range row {
			sb.WriteRune(k.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
