package knot

import (
	"errors"
	"fmt"
)

// Velocity factors applied by the speed-up and slow-down controls.
const (
	SpeedUp  = 1.5
	SlowDown = 1 / 1.5
)

// ErrOutOfRange is returned when a curve index falls outside [0, capacity).
var ErrOutOfRange = errors.New("knot: curve index out of range")

// CurveSet owns a fixed number of independently animated curves. Curves are
// created on first access. One of them is the active curve that edit and
// speed operations target.
type CurveSet struct {
	curves     []*Curve
	current    int // -1 until a curve has been accessed
	bounds     Size
	resolution int
}

// NewCurveSet returns a set of up to capacity curves bouncing inside bounds,
// each created with the given resolution. A capacity below 1 is clamped to 1.
func NewCurveSet(capacity int, bounds Size, resolution int) *CurveSet {
	return &CurveSet{
		curves:     make([]*Curve, max(capacity, 1)),
		current:    -1,
		bounds:     bounds,
		resolution: max(resolution, 1),
	}
}

// Capacity returns the maximum number of curves.
func (s *CurveSet) Capacity() int {
	return len(s.curves)
}

// Bounds returns the viewport shared by every curve.
func (s *CurveSet) Bounds() Size {
	return s.bounds
}

// Index returns the active curve index, or -1 if no curve has been accessed
// yet.
func (s *CurveSet) Index() int {
	return s.current
}

// GetOrCreate returns the curve at index i, creating an empty one if needed.
// It does not change an existing selection; on a set where nothing has been
// selected yet, index 0 becomes the active index.
func (s *CurveSet) GetOrCreate(i int) (*Curve, error) {
	if i < 0 || i >= len(s.curves) {
		return nil, fmt.Errorf("get curve %d of %d: %w", i, len(s.curves), ErrOutOfRange)
	}
	if s.current < 0 {
		s.current = 0
	}
	if s.curves[i] == nil {
		s.curves[i] = NewCurve(s.bounds, s.resolution)
	}
	return s.curves[i], nil
}

// curve is GetOrCreate for indices already known to be in range.
func (s *CurveSet) curve(i int) *Curve {
	c, err := s.GetOrCreate(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Active returns the active curve. If nothing has been selected yet, the
// first curve becomes active.
func (s *CurveSet) Active() *Curve {
	if s.current < 0 {
		s.current = 0
	}
	return s.curve(s.current)
}

// Next activates the following curve, wrapping from the last index back to 0.
func (s *CurveSet) Next() *Curve {
	s.current = (s.current + 1) % len(s.curves)
	return s.curve(s.current)
}

// Previous activates the preceding curve. It stops at index 0 rather than
// wrapping around.
func (s *CurveSet) Previous() *Curve {
	s.current = max(s.current-1, 0)
	return s.curve(s.current)
}

// Curves returns the curves that have been created so far, in index order.
func (s *CurveSet) Curves() []*Curve {
	out := make([]*Curve, 0, len(s.curves))
	for _, c := range s.curves {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Each calls fn for every created curve with its index.
func (s *CurveSet) Each(fn func(i int, c *Curve)) {
	for i, c := range s.curves {
		if c != nil {
			fn(i, c)
		}
	}
}

// RecalcAll advances every created curve by one tick, whether or not it is
// active.
func (s *CurveSet) RecalcAll() {
	for _, c := range s.curves {
		if c != nil {
			c.Advance()
		}
	}
}

// ScaleActiveVelocity multiplies every velocity of the active curve by
// factor.
func (s *CurveSet) ScaleActiveVelocity(factor float64) {
	s.Active().ScaleVelocities(factor)
}

// Reset clears the control points of every created curve. The selection is
// kept.
func (s *CurveSet) Reset() {
	for _, c := range s.curves {
		if c != nil {
			c.Clear()
		}
	}
}
