package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from its character form, one row per line.
// See ParseReader for the accepted format and errors.
func Parse(s string) (*Grid, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader reads the character form of a grid from r.
//
// Behavior:
//  1. Lines are split on '\n'; a trailing '\r' is dropped.
//  2. Trailing blank lines are ignored; a blank line before the last
//     non-blank one yields ErrEmptyRow.
//  3. Every character must be one of ". S | ^"; anything else yields a
//     *ParseError (errors.Is(err, ErrInvalidCell) holds).
//  4. Exactly one 'S' is required: ErrNoOrigin or ErrMultipleOrigins otherwise.
//
// Complexity: O(R×C).
func ParseReader(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Kind, len(lines))
	origins := 0
	for i, line := range lines {
		if line == "" {
			return nil, fmt.Errorf("%w: line %d", ErrEmptyRow, i+1)
		}
		row := make([]Kind, 0, len(line))
		col := 0
		for _, ch := range line {
			col++
			k, err := ParseKind(ch)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Column: col, Char: ch}
			}
			if k == Origin {
				origins++
			}
			row = append(row, k)
		}
		cells[i] = row
	}

	switch {
	case origins == 0:
		return nil, ErrNoOrigin
	case origins > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleOrigins, origins)
	}

	return &Grid{cells: cells}, nil
}
