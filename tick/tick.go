package tick

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/beamsplit/grid"
)

// Simulator encapsulates mutable simulation state. It owns its grid; the
// grid passed to New is never modified.
type Simulator struct {
	room   *grid.Grid
	opts   Options
	tick   int
	splits uint64
}

// New clones g and returns a Simulator at tick 0 with no splits.
// Returns ErrGridNil for a nil grid or ErrOptionViolation for bad options.
func New(g *grid.Grid, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Simulator{room: g.Clone(), opts: o}, nil
}

// Run simulates g until no beam can grow and reports the split count.
// The input grid is left untouched; Result.Final holds the grown copy.
func Run(g *grid.Grid, opts ...Option) (*Result, error) {
	s, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.loop(); err != nil {
		return nil, err
	}

	return &Result{Splits: s.splits, Ticks: s.tick, Final: s.room}, nil
}

// loop steps until Over, enforcing MaxTicks and invoking OnTick.
func (s *Simulator) loop() error {
	for !s.Over() {
		if s.opts.MaxTicks > 0 && s.tick >= s.opts.MaxTicks {
			return fmt.Errorf("%w: %d ticks, %d splits so far", ErrTickLimit, s.tick, s.splits)
		}
		s.Step()
		s.opts.Logger.WithFields(logrus.Fields{
			"tick":   s.tick,
			"splits": s.splits,
		}).Debug("tick complete")
		if err := s.opts.OnTick(s.tick, s.room); err != nil {
			return fmt.Errorf("tick: OnTick error at tick %d: %w", s.tick, err)
		}
	}
	s.opts.Logger.WithFields(logrus.Fields{
		"tick":   s.tick,
		"splits": s.splits,
	}).Debug("simulation over")
	return nil
}

// Tick returns the number of completed ticks.
func (s *Simulator) Tick() int { return s.tick }

// Splits returns the cumulative split count.
func (s *Simulator) Splits() uint64 { return s.splits }

// Grid returns a copy of the current working grid.
func (s *Simulator) Grid() *grid.Grid { return s.room.Clone() }

// Over reports whether the simulation has finished: at least one tick ran
// and no ActiveBeam in rows [tick, last] has Empty or Splitter below it.
// Complexity: O(R×C).
func (s *Simulator) Over() bool {
	if s.tick == 0 {
		return false
	}
	for row := s.tick; row < s.room.Rows(); row++ {
		for col := 0; col < s.room.RowLen(row); col++ {
			if s.room.Is(grid.ActiveBeam, row, col) && s.canGrowInto(row+1, col) {
				return false
			}
		}
	}
	return true
}

// canGrowInto reports whether a beam above (row,col) would change it.
func (s *Simulator) canGrowInto(row, col int) bool {
	k, ok := s.room.CellAt(row, col)
	if !ok {
		return false
	}
	switch k {
	case grid.Empty, grid.Splitter:
		return true
	default:
		return false
	}
}

// Step runs one tick: rows [tick, last] bottom-to-top, columns left-to-right,
// expanding every ActiveBeam and Origin cell. Then the tick advances.
// Complexity: O(R×C).
func (s *Simulator) Step() {
	for row := s.room.Rows() - 1; row >= s.tick; row-- {
		for col := 0; col < s.room.RowLen(row); col++ {
			k, _ := s.room.CellAt(row, col)
			if k == grid.ActiveBeam || k == grid.Origin {
				s.expand(row, col)
			}
		}
	}
	s.tick++
}

// expand grows the beam at (row,col) into the row below.
func (s *Simulator) expand(row, col int) {
	below, ok := s.room.CellAt(row+1, col)
	if !ok {
		return // past the bottom edge
	}
	switch below {
	case grid.Empty, grid.Origin:
		// an Origin reached from above becomes beam and keeps growing
		s.room.SetCell(row+1, col, grid.ActiveBeam)
	case grid.Splitter:
		// out-of-range sides are dropped by SetCell
		s.room.SetCell(row+1, col-1, grid.ActiveBeam)
		s.room.SetCell(row+1, col+1, grid.ActiveBeam)
		s.splits++
		s.opts.OnSplit(grid.Coord{Row: row + 1, Col: col})
	case grid.ActiveBeam:
		// occupied
	}
}
