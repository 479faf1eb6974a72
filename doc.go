// Package beamsplit simulates a beam travelling down through a room of
// splitters and counts the timelines it can take to the bottom edge.
//
// The module is organized under three packages and one command:
//
//	grid/          cell kinds, the Grid read model, parsing and rendering
//	tick/          tick-by-tick beam growth, reports total split events
//	timeline/      memoized count of distinct origin-to-boundary paths
//	cmd/beamsplit  CLI printing "Part 1" (splits) and "Part 2" (timelines)
//
// Quick ASCII example:
//
//	..S..        ..S..
//	.....   →    ..|..      1 split, 2 timelines
//	..^..        .|^|.
//	.....        .|.|.
//
// Both engines take a parsed *grid.Grid and never share state: the tick
// engine mutates a private clone, the timeline engine only reads.
//
//	go install github.com/katalvlaran/beamsplit/cmd/beamsplit@latest
package beamsplit
