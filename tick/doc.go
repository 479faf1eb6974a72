// Package tick simulates a beam growing through a grid one row per tick and
// counts how many times it is split.
//
// What:
//
//   - Simulator owns a private clone of a *grid.Grid plus two counters:
//     the current tick and the cumulative split count.
//   - Step sweeps rows [tick, last] bottom-to-top, left-to-right. Every
//     ActiveBeam or Origin cell grows into the cell below it:
//     Empty or Origin becomes ActiveBeam; a Splitter below marks its two diagonal
//     neighbors as ActiveBeam and counts one split; occupied or absent
//     cells stop growth.
//   - Over reports that no beam at or below the tick row can grow further.
//     A fresh simulator is never over.
//   - Run drives Step until Over and returns the split count.
//
// Why bottom-to-top:
//
//	A beam created during a sweep lands in a row that has already been
//	visited, so it is not expanded again until the next tick. Each tick
//	therefore advances the front by exactly one row.
//
// Options:
//
//   - WithOnTick(fn):  called after every tick; an error aborts the run.
//   - WithOnSplit(fn): called with the splitter coordinate on each split.
//   - WithMaxTicks(n): fail with ErrTickLimit after n ticks (0 = no limit).
//   - WithLogger(l):   debug logging through a logrus.FieldLogger.
//
// Complexity:
//
//   - Step: O(R×C).
//   - Run:  O(R²×C) worst case, since the number of ticks is bounded by R.
//
// Errors:
//
//   - ErrGridNil:         nil grid passed to New or Run.
//   - ErrOptionViolation: invalid option value.
//   - ErrTickLimit:       MaxTicks reached before the simulation was over.
//   - hook errors:        propagated from OnTick, wrapped with the tick number.
package tick
