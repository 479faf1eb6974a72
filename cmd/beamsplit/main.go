// Command beamsplit reads a beam manifold from a file and prints the total
// split count (part 1) and the number of timelines (part 2).
//
// Usage:
//
//	beamsplit [-input input.txt] [-part 0|1|2] [-strategy recursive|worklist] [-log-level warn]
//
// BEAMSPLIT_INPUT and BEAMSPLIT_LOG_LEVEL override the flag defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/beamsplit/internal/solve"
	"github.com/katalvlaran/beamsplit/timeline"
)

const (
	envInput    = "BEAMSPLIT_INPUT"
	envLogLevel = "BEAMSPLIT_LOG_LEVEL"
)

type config struct {
	input    string
	parts    solve.Part
	strategy timeline.Strategy
	level    log.Level
}

// parseConfig reads flags from args, taking defaults from getenv.
// On -h or -help the flag defaults are written to usage and the returned
// error is flag.ErrHelp.
func parseConfig(args []string, getenv func(string) string, usage io.Writer) (config, error) {
	defInput := "input.txt"
	if v := getenv(envInput); v != "" {
		defInput = v
	}
	defLevel := "warn"
	if v := getenv(envLogLevel); v != "" {
		defLevel = v
	}

	fs := flag.NewFlagSet("beamsplit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	input := fs.String("input", defInput, "Puzzle input file")
	part := fs.Int("part", 0, "Part to solve: 1, 2, or 0 for both")
	strategy := fs.String("strategy", "recursive", "Timeline strategy: recursive or worklist")
	level := fs.String("log-level", defLevel, "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(usage)
			fmt.Fprintln(usage, "Usage of beamsplit:")
			fs.PrintDefaults()
		}
		return config{}, err
	}

	cfg := config{input: *input}
	var err error
	if cfg.parts, err = solve.ParsePart(*part); err != nil {
		return config{}, err
	}
	if cfg.strategy, err = timeline.ParseStrategy(*strategy); err != nil {
		return config{}, err
	}
	if cfg.level, err = log.ParseLevel(*level); err != nil {
		return config{}, err
	}
	if cfg.input == "" {
		return config{}, fmt.Errorf("input file is required")
	}
	return cfg, nil
}

func run(cfg config, out io.Writer) error {
	logger := log.WithFields(log.Fields{
		"run_id": uuid.New().String(),
		"input":  cfg.input,
	})
	logger.Info("solving")

	ans, err := solve.SolveFile(cfg.input, solve.Config{
		Parts:    cfg.parts,
		Strategy: cfg.strategy,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	for _, line := range ans.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}
	log.SetLevel(cfg.level)

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("beamsplit: %v", err)
	}
}
