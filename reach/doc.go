// Package reach answers undirected reachability queries: after one
// breadth-first labeling pass over the whole graph, any "can I get from
// u to v" question is a constant-time component comparison.
//
// What
//
//   - Build(n, edges) labels each of the n vertices (0..n-1) with its
//     connected-component id via an iterative BFS.
//   - Components.Connected(u, v) answers a query in O(1).
//   - Components.Count reports the number of components.
//
// Complexity: Build is O(V + E) time and O(V + E) memory; each query
// afterwards is O(1).
//
// Errors: ErrBadOrder for n ≤ 0, ErrBadEdge for an endpoint outside
// [0, n), ErrBadVertex for a query endpoint outside [0, n).
package reach
