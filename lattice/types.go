// SPDX-License-Identifier: MIT

package lattice

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrInfiniteCost indicates arithmetic on the Inf level.
	ErrInfiniteCost = errors.New("lattice: infinite cost has no numeric value")
	// ErrInvalidLevel indicates a Level outside the defined constants.
	ErrInvalidLevel = errors.New("lattice: invalid cost level")
)

// Position is a lattice coordinate.
type Position struct {
	X, Y int
}

// Compare orders positions by X, then Y.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbour of p in direction d.
func (p Position) Step(d Direction) Position {
	off := offsets[d]
	return Position{X: p.X + off[0], Y: p.Y + off[1]}
}

// Direction is one of the six hex neighbour directions.
type Direction int

const (
	Right Direction = iota
	UpRight
	UpLeft
	Left
	DownLeft
	DownRight
)

// offsets[d] is the (dx, dy) of direction d.
var offsets = [...][2]int{
	Right:     {1, 0},
	UpRight:   {1, 1},
	UpLeft:    {0, 1},
	Left:      {-1, 0},
	DownLeft:  {-1, -1},
	DownRight: {0, -1},
}

var directionNames = [...]string{"Right", "UpRight", "UpLeft", "Left", "DownLeft", "DownRight"}

// Directions returns all six directions, forward ones first.
func Directions() []Direction {
	return []Direction{Right, UpRight, UpLeft, Left, DownLeft, DownRight}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 3) % 6 }

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Level is the cost of one lattice link.
type Level uint8

const (
	Zero Level = iota
	One
	Two
	Inf
)

// Finite reports whether l has a numeric value.
func (l Level) Finite() bool { return l < Inf }

// Int returns the numeric cost of l.
func (l Level) Int() (int, error) {
	switch {
	case l < Inf:
		return int(l), nil
	case l == Inf:
		return 0, ErrInfiniteCost
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, l)
	}
}

// Add returns total + l and refuses to add Inf.
func (l Level) Add(total int) (int, error) {
	v, err := l.Int()
	if err != nil {
		return total, err
	}

	return total + v, nil
}

func (l Level) String() string {
	switch l {
	case Zero:
		return "Zero"
	case One:
		return "One"
	case Two:
		return "Two"
	case Inf:
		return "Inf"
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// Edge is the payload of a lattice link.
type Edge struct {
	Cost Level
}

// EdgeCost is the int cost function for lattice graphs, suitable for
// dijkstra.Distances, metric.Closure and steiner.TreeInt.
// Panics on Inf, which Build never stores.
func EdgeCost(e Edge) int {
	v, err := e.Cost.Int()
	if err != nil {
		panic(err)
	}

	return v
}

// Row holds the levels of the forward links of one position, indexed by
// Right, UpRight and UpLeft.
type Row [3]Level
