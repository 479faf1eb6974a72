// Package solve reads a puzzle input, parses it once and runs the beam
// engines selected by a Config.
package solve

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/beamsplit/grid"
	"github.com/katalvlaran/beamsplit/tick"
	"github.com/katalvlaran/beamsplit/timeline"
)

// ErrInput wraps every failure to read or parse the puzzle input.
var ErrInput = errors.New("solve: bad input")

// Part selects which answers to compute.
type Part uint8

const (
	// PartOne is the total split count of the tick simulation.
	PartOne Part = 1 << iota
	// PartTwo is the number of distinct timelines.
	PartTwo

	// PartBoth selects both answers.
	PartBoth = PartOne | PartTwo
)

// Has reports whether p includes q.
func (p Part) Has(q Part) bool { return p&q != 0 }

// ParsePart maps the CLI form (0 = both, 1, 2) to a Part.
func ParsePart(n int) (Part, error) {
	switch n {
	case 0:
		return PartBoth, nil
	case 1:
		return PartOne, nil
	case 2:
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("solve: part must be 0, 1 or 2 (got %d)", n)
	}
}

// Config controls a solve run. The zero value solves both parts with the
// recursive timeline strategy and no logging.
type Config struct {
	Parts    Part
	Strategy timeline.Strategy
	Logger   logrus.FieldLogger
}

// Answers holds the computed results for the selected parts.
type Answers struct {
	Parts     Part
	Splits    uint64
	Timelines uint64
}

// Lines renders the selected answers as "Part 1: N" / "Part 2: N".
func (a Answers) Lines() []string {
	var out []string
	if a.Parts.Has(PartOne) {
		out = append(out, fmt.Sprintf("Part 1: %d", a.Splits))
	}
	if a.Parts.Has(PartTwo) {
		out = append(out, fmt.Sprintf("Part 2: %d", a.Timelines))
	}
	return out
}

// SolveFile opens path and solves its contents.
func SolveFile(path string, cfg Config) (Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return Answers{}, fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer f.Close()

	return Solve(f, cfg)
}

// Solve parses a grid from r and runs the engines selected by cfg.
// Parse failures wrap ErrInput and the grid sentinel, so both
// errors.Is(err, ErrInput) and errors.Is(err, grid.ErrInvalidCell) hold.
func Solve(r io.Reader, cfg Config) (Answers, error) {
	cfg = withDefaults(cfg)
	log := cfg.Logger

	g, err := grid.ParseReader(r)
	if err != nil {
		return Answers{}, fmt.Errorf("%w: %w", ErrInput, err)
	}
	log.WithFields(logrus.Fields{
		"rows":      g.Rows(),
		"splitters": g.Count(grid.Splitter),
	}).Info("grid parsed")

	ans := Answers{Parts: cfg.Parts}
	if cfg.Parts.Has(PartOne) {
		res, err := tick.Run(g, tick.WithLogger(log))
		if err != nil {
			return Answers{}, fmt.Errorf("solve: part 1: %w", err)
		}
		ans.Splits = res.Splits
		log.WithFields(logrus.Fields{"splits": res.Splits, "ticks": res.Ticks}).Info("part 1 done")
	}
	if cfg.Parts.Has(PartTwo) {
		n, err := timeline.Count(g, timeline.WithStrategy(cfg.Strategy), timeline.WithLogger(log))
		if err != nil {
			return Answers{}, fmt.Errorf("solve: part 2: %w", err)
		}
		ans.Timelines = n
		log.WithField("timelines", n).Info("part 2 done")
	}

	return ans, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Parts == 0 {
		cfg.Parts = PartBoth
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	return cfg
}
