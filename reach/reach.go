package reach

import (
	"errors"
	"fmt"
)

// Sentinel errors for Build and Connected.
var (
	// ErrBadOrder is returned when the vertex count is not positive.
	ErrBadOrder = errors.New("reach: vertex count must be positive")

	// ErrBadEdge is returned when an edge endpoint is out of range.
	ErrBadEdge = errors.New("reach: edge endpoint out of range")

	// ErrBadVertex is returned when a query endpoint is out of range.
	ErrBadVertex = errors.New("reach: query vertex out of range")
)

// Components holds the component labeling produced by Build.
type Components struct {
	label []int
	count int
}

// Build constructs the component labeling of the undirected graph with
// n vertices (0..n-1) and the given edge list. Self-loops and parallel
// edges are allowed and change nothing.
func Build(n int, edges [][2]int) (*Components, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrBadOrder, n)
	}

	adj := make([][]int, n)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge %d = (%d,%d), n = %d", ErrBadEdge, i, u, v, n)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	c := &Components{label: make([]int, n)}
	for i := range c.label {
		c.label[i] = -1
	}

	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if c.label[start] != -1 {
			continue
		}
		// flood one component
		c.label[start] = c.count
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if c.label[v] == -1 {
					c.label[v] = c.count
					queue = append(queue, v)
				}
			}
		}
		c.count++
	}

	return c, nil
}

// Connected reports whether u and v lie in the same component.
func (c *Components) Connected(u, v int) (bool, error) {
	n := len(c.label)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false, fmt.Errorf("%w: (%d,%d), n = %d", ErrBadVertex, u, v, n)
	}
	return c.label[u] == c.label[v], nil
}

// Count returns the number of connected components.
func (c *Components) Count() int { return c.count }
