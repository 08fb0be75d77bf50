package knot

import (
	"fmt"
	"math"
)

// Vec2 is an immutable 2D vector used for control point positions, velocities
// and smoothed curve samples. Every operation returns a new value.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Scale returns k*v. It is the scalar-first form of [Vec2.Scale].
func Scale(k float64, v Vec2) Vec2 {
	return v.Scale(k)
}

// Midpoint returns the point halfway between v and o.
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return v.Add(o).Scale(0.5)
}

// Magnitude returns the length of v rounded to the nearest integer.
func (v Vec2) Magnitude() int {
	return int(math.Round(math.Sqrt(v.X*v.X + v.Y*v.Y)))
}

// Manhattan returns the taxicab distance |vx-ox| + |vy-oy|.
func (v Vec2) Manhattan(o Vec2) float64 {
	return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y)
}

// IntPair returns the coordinates rounded to the nearest integers.
func (v Vec2) IntPair() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Size is the extent of the viewport the control points bounce inside.
type Size struct {
	Width, Height float64
}

// Contains reports whether p lies inside [0, Width] x [0, Height].
// Points on the edge are considered inside.
func (s Size) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= s.Width && p.Y >= 0 && p.Y <= s.Height
}
