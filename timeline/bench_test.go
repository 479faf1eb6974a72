package timeline_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/beamsplit/timeline"
)

// staggered builds an n-row room whose splitters overlap heavily, so the
// number of paths grows exponentially while distinct positions stay O(R×C).
func staggered(n, w int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < w; c++ {
			switch {
			case r == 0 && c == w/2:
				sb.WriteByte('S')
			case r > 0 && r%2 == 0 && (c+r/2)%2 == 0:
				sb.WriteByte('^')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func benchmarkCount(b *testing.B, s timeline.Strategy) {
	g := mustParse(b, staggered(140, 141))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := timeline.Count(g, timeline.WithStrategy(s)); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCount_Recursive measures memoized recursion on a 140×141 room.
func BenchmarkCount_Recursive(b *testing.B) { benchmarkCount(b, timeline.Recursive) }

// BenchmarkCount_Worklist measures the explicit-stack strategy on the same room.
func BenchmarkCount_Worklist(b *testing.B) { benchmarkCount(b, timeline.Worklist) }
