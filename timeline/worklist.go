package timeline

import (
	"github.com/katalvlaran/beamsplit/grid"
)

// worklist fills the memo from an explicit stack instead of the call stack.
//
// Behavior:
//  1. Peek the top coordinate; drop it if already memoized.
//  2. Push every successor that has no count yet.
//  3. Once all successors are known, store their sum and pop.
//
// Rows strictly increase along every edge, so the stack never cycles.
func (c *counter) worklist(start grid.Coord) (uint64, error) {
	stack := []grid.Coord{start}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		if _, done := c.memo[at]; done {
			stack = stack[:len(stack)-1]
			continue
		}
		next, err := c.successors(at)
		if err != nil {
			return 0, err
		}
		if len(next) == 0 {
			c.memo[at] = 1
			stack = stack[:len(stack)-1]
			continue
		}

		var sum uint64
		pending := false
		for _, nb := range next {
			n, ok := c.memo[nb]
			if !ok {
				stack = append(stack, nb)
				pending = true
				continue
			}
			sum += n
		}
		if !pending {
			c.memo[at] = sum
			stack = stack[:len(stack)-1]
		}
	}

	return c.memo[start], nil
}
