// Package core provides fundamental types and utilities for the dungeon.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a continuous 2D coordinate or displacement.
// Positions are unbounded; they are converted to a Cell only for rendering.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v.
// A zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between two positions.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Near reports whether o lies strictly closer than threshold.
func (v Vec) Near(o Vec, threshold float64) bool {
	return v.Dist(o) < threshold
}

// Cell rounds the position to the discrete cell used for drawing.
func (v Vec) Cell() Cell {
	return Cell{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Cell is a discrete grid coordinate.
type Cell struct {
	X, Y int
}

// Direction is one of the four compass directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vec returns the unit vector for the direction. Y grows downward.
func (d Direction) Vec() Vec {
	switch d {
	case DirUp:
		return Vec{X: 0, Y: -1}
	case DirDown:
		return Vec{X: 0, Y: 1}
	case DirLeft:
		return Vec{X: -1, Y: 0}
	case DirRight:
		return Vec{X: 1, Y: 0}
	default:
		return Vec{}
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Bounds is the playable arena. A position is inside when
// 0 <= X <= Width-1 and 0 <= Y <= Height-1.
type Bounds struct {
	Width, Height int
}

// Contains reports whether the position lies inside the arena.
func (b Bounds) Contains(p Vec) bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return false
	}
	return p.X >= 0 && p.X <= float64(b.Width-1) &&
		p.Y >= 0 && p.Y <= float64(b.Height-1)
}

// Rect represents an axis-aligned box on the screen grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
