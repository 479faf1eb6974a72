// File: timeline/example_test.go
package timeline_test

import (
	"fmt"

	"github.com/katalvlaran/beamsplit/grid"
	"github.com/katalvlaran/beamsplit/timeline"
)

// ExampleCount demonstrates counting timelines through a diamond of splitters.
// Scenario:
//
//	...S...
//	...^...      1 splitter  → 2 branches
//	..^.^..      2 splitters → the middle column is shared (diamond)
//	.......
//
// Paths: (1,2)→(2,1),(2,3) and (1,4)→(2,3),(2,5): 4 timelines.
//
// Complexity: O(R×C), Memory: O(R×C)
func ExampleCount() {
	g, _ := grid.Parse("...S...\n...^...\n..^.^..\n.......\n")

	n, err := timeline.Count(g)
	if err != nil {
		fmt.Println("count:", err)
		return
	}
	fmt.Println("timelines:", n)

	n, _ = timeline.Count(g, timeline.WithStrategy(timeline.Worklist))
	fmt.Println("worklist:", n)

	// Output:
	// timelines: 4
	// worklist: 4
}
