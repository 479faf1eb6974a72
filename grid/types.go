package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates the input has no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row")
	// ErrEmptyRow indicates a blank row between non-blank rows.
	ErrEmptyRow = errors.New("grid: rows must not be empty")
	// ErrInvalidCell indicates a character that is not a known cell kind.
	ErrInvalidCell = errors.New("grid: invalid cell character")
	// ErrNoOrigin indicates the grid has no Origin cell.
	ErrNoOrigin = errors.New("grid: no origin cell")
	// ErrMultipleOrigins indicates the grid has more than one Origin cell.
	ErrMultipleOrigins = errors.New("grid: more than one origin cell")
)

// Kind tags the content of a single cell.
type Kind uint8

const (
	// Empty is open space a beam can grow into.
	Empty Kind = iota
	// Origin is the cell the beam starts from.
	Origin
	// ActiveBeam is a cell already occupied by the beam.
	ActiveBeam
	// Splitter forks a beam reaching it into its two diagonal neighbors.
	Splitter
)

// Character form of each kind.
const (
	EmptyChar      = '.'
	OriginChar     = 'S'
	ActiveBeamChar = '|'
	SplitterChar   = '^'
)

// ParseKind maps a character to its Kind.
// Unknown characters yield ErrInvalidCell naming the character.
func ParseKind(r rune) (Kind, error) {
	switch r {
	case EmptyChar:
		return Empty, nil
	case OriginChar:
		return Origin, nil
	case ActiveBeamChar:
		return ActiveBeam, nil
	case SplitterChar:
		return Splitter, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, r)
	}
}

// Rune returns the character form of k.
func (k Kind) Rune() rune {
	switch k {
	case Empty:
		return EmptyChar
	case Origin:
		return OriginChar
	case ActiveBeam:
		return ActiveBeamChar
	case Splitter:
		return SplitterChar
	default:
		return '?'
	}
}

// String implements fmt.Stringer using the character form.
func (k Kind) String() string {
	return string(k.Rune())
}

// Coord addresses a cell: Row counts top-to-bottom, Col left-to-right, both from 0.
type Coord struct {
	Row, Col int
}

// Below returns the coordinate one row down.
func (c Coord) Below() Coord {
	return Coord{Row: c.Row + 1, Col: c.Col}
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// ParseError reports an unknown character at a 1-based line and column.
type ParseError struct {
	Line   int
	Column int
	Char   rune
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: line %d column %d: invalid cell character %q", e.Line, e.Column, e.Char)
}

// Unwrap lets errors.Is match ErrInvalidCell.
func (e *ParseError) Unwrap() error {
	return ErrInvalidCell
}

// Grid is the room: rows of cell kinds indexed as cells[row][col].
// A Grid returned by New or Parse is a private deep copy; only SetCell mutates it.
type Grid struct {
	cells [][]Kind
}
