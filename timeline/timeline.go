package timeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/beamsplit/grid"
)

// counter encapsulates state for one Count call.
type counter struct {
	room *grid.Grid            // read-only
	memo map[grid.Coord]uint64 // timelines rooted at a coordinate
}

// Count returns the number of distinct timelines from the origin of g to
// its lower boundary. g is only read.
// Returns ErrGridNil, a wrapped grid.ErrNoOrigin, ErrUnexpectedBeam or
// ErrOptionViolation.
func Count(g *grid.Grid, opts ...Option) (uint64, error) {
	// 1. Validate grid and options
	if g == nil {
		return 0, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	origin, err := g.FindOrigin()
	if err != nil {
		return 0, fmt.Errorf("timeline: %w", err)
	}

	// 2. Evaluate from the origin with a fresh memo
	c := &counter{
		room: g,
		memo: make(map[grid.Coord]uint64, g.Rows()),
	}
	var n uint64
	switch o.Strategy {
	case Worklist:
		n, err = c.worklist(origin)
	default:
		n, err = c.recursive(origin)
	}
	if err != nil {
		return 0, err
	}

	o.Logger.WithFields(logrus.Fields{
		"strategy":  o.Strategy.String(),
		"origin":    origin.String(),
		"memo":      len(c.memo),
		"timelines": n,
	}).Debug("timelines counted")
	return n, nil
}

// successors returns the coordinates whose counts add up to the count at.
// An empty result means the beam leaves the grid below at.
func (c *counter) successors(at grid.Coord) ([]grid.Coord, error) {
	below, ok := c.room.CellAt(at.Row+1, at.Col)
	if !ok {
		return nil, nil
	}
	switch below {
	case grid.Empty, grid.Origin:
		return []grid.Coord{at.Below()}, nil
	case grid.Splitter:
		return []grid.Coord{
			{Row: at.Row + 1, Col: at.Col - 1},
			{Row: at.Row + 1, Col: at.Col + 1},
		}, nil
	case grid.ActiveBeam:
		return nil, fmt.Errorf("%w at %v", ErrUnexpectedBeam, at.Below())
	default:
		return nil, fmt.Errorf("timeline: unknown cell kind %d at %v", below, at.Below())
	}
}

// recursive computes the count at by memoized recursion.
func (c *counter) recursive(at grid.Coord) (uint64, error) {
	if n, ok := c.memo[at]; ok {
		return n, nil
	}
	next, err := c.successors(at)
	if err != nil {
		return 0, err
	}
	if len(next) == 0 {
		c.memo[at] = 1
		return 1, nil
	}
	var sum uint64
	for _, nb := range next {
		n, err := c.recursive(nb)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	c.memo[at] = sum

	return sum, nil
}
