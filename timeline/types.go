package timeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrGridNil is returned when a nil grid is passed to Count.
	ErrGridNil = errors.New("timeline: grid is nil")

	// ErrUnexpectedBeam indicates an ActiveBeam cell on a counted path.
	// Timeline grids must not carry pre-placed beams.
	ErrUnexpectedBeam = errors.New("timeline: unexpected beam cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("timeline: invalid option supplied")
)

// Strategy selects how the memo table is filled.
type Strategy int

const (
	// Recursive evaluates counts by memoized recursion.
	Recursive Strategy = iota

	// Worklist evaluates counts from an explicit stack.
	Worklist
)

// String returns the strategy name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Worklist:
		return "worklist"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "recursive" or "worklist" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "recursive", "":
		return Recursive, nil
	case "worklist":
		return Worklist, nil
	default:
		return Recursive, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures Count.
type Option func(*Options)

// Options holds Count settings.
type Options struct {
	// Strategy picks the evaluation order; Recursive by default.
	Strategy Strategy

	// Logger receives a debug summary; defaults to a discarding logger.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Recursive evaluation with a silent logger.
func DefaultOptions() Options {
	return Options{
		Strategy: Recursive,
		Logger:   discardLogger(),
	}
}

// WithStrategy selects the evaluation strategy.
// Unknown values are recorded as ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Recursive && s != Worklist {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithLogger sets the logger for the debug summary. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
