// Package grid models the room a beam travels through: a 2D grid of cell
// kinds with lenient, bounds-checked access.
//
// What:
//
//   - Kind tags a cell as Empty ('.'), Origin ('S'), ActiveBeam ('|') or Splitter ('^').
//   - Grid stores rows of kinds; rows may differ in length, so every bounds
//     check is per row.
//   - Parse and ParseReader turn the character form into a Grid and reject
//     unknown characters, missing or duplicate origins, and empty input.
//   - String renders a Grid back into its character form.
//
// Why:
//
//   - Both the tick simulation (package tick) and the timeline counter
//     (package timeline) need one shared read model with a single source of
//     truth for the origin coordinate.
//   - Out-of-bounds reads resolve to "absent" instead of an error, so edge
//     cells need no special casing in either engine.
//
// Complexity:
//
//   - CellAt, Is, SetCell: O(1).
//   - FindOrigin, Count:   O(R×C).
//   - New, Clone, Parse:   O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows.
//   - ErrEmptyRow:        a blank line between non-blank rows.
//   - ErrInvalidCell:     unknown character (wrapped by *ParseError).
//   - ErrNoOrigin:        no 'S' cell.
//   - ErrMultipleOrigins: more than one 'S' cell.
package grid
