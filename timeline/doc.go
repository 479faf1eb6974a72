// Package timeline counts the distinct paths ("timelines") a beam can take
// from the origin of a grid to its lower boundary.
//
// What:
//
//   - Every cell below the origin is a node of a directed acyclic graph.
//     A beam at (r,c) looks at (r+1,c):
//     absent        → it leaves the grid: exactly one timeline;
//     Empty, Origin → it continues straight down;
//     Splitter      → it forks into (r+1,c-1) and (r+1,c+1), and the
//     two sub-counts are added.
//   - Results are memoized per coordinate, so positions reached through
//     several splitters (diamond overlap) are counted once.
//
// Strategies:
//
//   - Recursive (default): memoized recursion, stack depth bounded by the
//     number of rows.
//   - Worklist: the same memo filled from an explicit stack, for grids too
//     tall for comfortable recursion. Both give identical results.
//
// A splitter at a grid edge sends one branch outside the grid; that branch
// finds no row below it and counts as one timeline leaving the grid.
//
// Complexity:
//
//   - Time:   O(R×C) (each coordinate is evaluated once).
//   - Memory: O(R×C) for the memo table.
//
// Errors:
//
//   - ErrGridNil:         nil grid.
//   - grid.ErrNoOrigin:   the grid has no origin (wrapped).
//   - ErrUnexpectedBeam:  an ActiveBeam cell lies on a path; counting aborts.
//   - ErrOptionViolation: unknown strategy.
package timeline
