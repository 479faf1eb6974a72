// Package tick provides tunable options, results and error definitions
// for the beam tick simulation.
package tick

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/beamsplit/grid"
)

// Sentinel errors for tick simulation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("tick: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tick: invalid option supplied")

	// ErrTickLimit is returned when MaxTicks elapse before the simulation is over.
	ErrTickLimit = errors.New("tick: tick limit reached")
)

// Option configures a Simulator via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New or Run.
type Option func(*Options)

// Options holds parameters and callbacks for a simulation run.
type Options struct {
	// OnTick is called after every completed tick with the new tick count
	// and the working grid. The grid must not be retained or modified.
	// Returning an error aborts Run.
	OnTick func(tick int, g *grid.Grid) error

	// OnSplit is called with the splitter's coordinate on every split event.
	OnSplit func(at grid.Coord)

	// MaxTicks, if > 0, bounds the number of ticks Run may execute.
	MaxTicks int

	// Logger receives debug progress; defaults to a discarding logger.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no-op OnTick and OnSplit hooks
//   - no tick limit (MaxTicks == 0)
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		OnTick:   func(int, *grid.Grid) error { return nil },
		OnSplit:  func(grid.Coord) {},
		MaxTicks: 0,
		Logger:   discardLogger(),
		err:      nil,
	}
}

// WithOnTick registers a callback to run after each tick.
func WithOnTick(fn func(tick int, g *grid.Grid) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTick = fn
		}
	}
}

// WithOnSplit registers a callback to run on each split event.
func WithOnSplit(fn func(at grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}

// WithMaxTicks bounds the run length.
//
//	n > 0:  Run fails with ErrTickLimit once n ticks elapsed without the simulation being over
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxTicks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTicks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTicks = n
	}
}

// WithLogger sets the logger used for debug progress. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a completed simulation:
//   - Splits: total split events.
//   - Ticks: number of ticks executed until the simulation was over.
//   - Final: the simulator's working grid after the last tick.
type Result struct {
	Splits uint64
	Ticks  int
	Final  *grid.Grid
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
