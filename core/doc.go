// SPDX-License-Identifier: MIT

// Package core provides a generic, in-memory undirected Graph with typed node
// and edge payloads.
//
// The Graph G = (V, E, adj) is parameterised over:
//
//   - I - the node identifier: any comparable value with a total order supplied
//     at construction (cmp.Compare for ordered built-ins, a Compare method for
//     struct ids such as 2D coordinates);
//   - N - the node payload (struct{} when nodes carry nothing);
//   - E - the edge payload (a cost, a struct with a cost field, ...).
//
// Storage is three maps:
//
//	nodes     map[I]N            - node id → payload
//	edges     map[Pair[I]]E      - canonical pair (smaller id first) → payload
//	adjacency map[I]map[I]struct{} - node id → neighbour ids, mirrors edges
//
// Every edge lookup or insert goes through Canonical, so (a,b) and (b,a) name
// the same edge.
//
// Invariants:
//
//   - no self-loops (ErrSelfLoop);
//   - at most one edge per unordered pair (ErrEdgeExists);
//   - edges only between existing nodes (ErrNodeNotFound);
//   - RemoveNode drops every incident edge and both adjacency entries before
//     returning, so no reference to a removed node survives.
//
// Core Methods:
//
//	// Nodes
//	AddNode(id, n) error         // O(1), ErrNodeExists
//	TryAddNode(id, n) bool       // O(1), false if present
//	SetNode(id, n) error         // O(1), ErrNodeNotFound
//	Node(id) (N, bool)           // O(1)
//	ContainsNode(id) bool        // O(1)
//	RemoveNode(id) (N, error)    // O(deg(id))
//	FilterNodes(keep) int        // O(V + removed·deg)
//
//	// Edges
//	AddEdge(a, b, e) error          // O(1)
//	TryAddEdge(a, b, e) (bool, error)
//	SetEdge(a, b, e) error          // O(1), ErrEdgeNotFound
//	Edge(a, b) (E, bool)            // O(1)
//	ContainsEdge(a, b) bool         // O(1)
//	RemoveEdge(a, b) (E, error)     // O(1)
//
//	// Queries
//	Neighbours(id) ([]Neighbour[I, E], error) // O(d·log d), sorted by id
//	VisitNeighbours(id, fn) error            // O(d), map order, no allocation
//	Degree(id) (int, error)
//	Nodes() []I                              // O(V·log V), sorted
//	Edges() []EdgeEntry[I, E]                // O(E·log E), sorted
//	NodeCount(), EdgeCount()                 // O(1)
//
//	// Copies
//	Clone() *Graph                 // O(V + E) deep copy of the maps
//	InducedSubgraph(g, keep)       // O(V + E)
//	Without(g, ids...)             // clone minus ids
//
// Concurrency:
//
// A Graph holds no locks. Any number of goroutines may read one Graph (the
// algorithms in dijkstra, metric and steiner only read) as long as nobody
// mutates it at the same time. Mutation must be serialised by the caller; the
// usual pattern is to Clone or Without a canonical graph per worker.
//
// Directed graphs, negative weights and serialisation are out of scope.
package core
