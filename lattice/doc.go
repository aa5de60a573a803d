// SPDX-License-Identifier: MIT

// Package lattice builds board graphs on a hexagonal lattice addressed by
// integer (X, Y) positions.
//
// What:
//
//   - Position is a board coordinate with a total order (Compare) for use as a
//     core.Graph id.
//   - Direction enumerates the six hex neighbours. Right, UpRight and UpLeft
//     are the forward directions; the other three are their opposites.
//   - Level is a track cost {Zero, One, Two, Inf}. Inf marks a missing link and
//     has no numeric value.
//   - Build turns per-column rows of forward Levels into a
//     *core.Graph[Position, struct{}, Edge]. Inf links are left out, so no
//     search ever sees an infinite cost, and a position exists only when at
//     least one finite link touches it.
//
// Layout:
//
//	columns[x][y] = Row{Right, UpRight, UpLeft}
//
//	Right   (x, y) → (x+1, y)
//	UpRight (x, y) → (x+1, y+1)
//	UpLeft  (x, y) → (x, y+1)
//
// Complexity: Build is O(cells) time and O(V + E) memory.
//
// Errors:
//
//   - ErrInfiniteCost: Level.Int or Level.Add on Inf.
//   - ErrInvalidLevel: a Row holds a value outside {Zero, One, Two, Inf}.
package lattice
