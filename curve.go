package knot

// DeleteRadius is the Manhattan distance within which a control point is
// picked up by [Curve.DeleteNearestControlPoint].
const DeleteRadius = 5

// DefaultResolution is the number of smoothed samples per window used when a
// curve is created without an explicit resolution.
const DefaultResolution = 35

// Curve is a closed curve driven by drifting control points. Every mutation
// of the control points goes through Curve and rebuilds the smoothed sample
// sequence.
type Curve struct {
	cp         ControlPoints
	resolution int
	smoothed   []Vec2

	deleted    deletedPoint
	hasDeleted bool
}

// deletedPoint remembers the last removed control point for UndoDelete.
type deletedPoint struct {
	index    int
	pos, vel Vec2
}

// NewCurve returns an empty curve bouncing inside bounds. A resolution below 1
// is clamped to 1.
func NewCurve(bounds Size, resolution int) *Curve {
	return &Curve{
		cp:         ControlPoints{bounds: bounds},
		resolution: max(resolution, 1),
	}
}

// Bounds returns the viewport the control points bounce inside.
func (c *Curve) Bounds() Size { return c.cp.Bounds() }

// Len returns the number of control points.
func (c *Curve) Len() int { return c.cp.Len() }

// Points returns the control point positions. The returned slice MUST NOT be
// mutated.
func (c *Curve) Points() []Vec2 { return c.cp.Points() }

// Velocities returns the per-tick velocities, index-aligned with Points. The
// returned slice MUST NOT be mutated.
func (c *Curve) Velocities() []Vec2 { return c.cp.Velocities() }

// ScaleVelocities multiplies every velocity by k. Positions and samples are
// untouched until the next Advance.
func (c *Curve) ScaleVelocities(k float64) { c.cp.ScaleVelocities(k) }

// Smoothed returns the derived curve samples, len(Points())*Resolution() of
// them, or none when the curve has fewer than three control points. The
// returned slice MUST NOT be mutated and is only valid until the next
// recalculation.
func (c *Curve) Smoothed() []Vec2 {
	return c.smoothed
}

// Resolution returns the number of samples produced per window.
func (c *Curve) Resolution() int {
	return c.resolution
}

// SetResolution sets the number of samples per window, clamped to at least 1,
// and rebuilds the smoothed samples.
func (c *Curve) SetResolution(n int) {
	c.resolution = max(n, 1)
	c.RecalcSmoothed()
}

// IncResolution adds one sample per window.
func (c *Curve) IncResolution() {
	c.SetResolution(c.resolution + 1)
}

// DecResolution removes one sample per window. The resolution never drops
// below 1.
func (c *Curve) DecResolution() {
	c.SetResolution(c.resolution - 1)
}

// AddControlPoint appends a control point at pos moving with vel.
func (c *Curve) AddControlPoint(pos, vel Vec2) {
	c.cp.Append(pos, vel)
	c.RecalcSmoothed()
}

// DeleteNearestControlPoint removes the control point closest to target by
// Manhattan distance, provided it lies within DeleteRadius. Ties go to the
// lowest index. It reports whether a point was removed.
func (c *Curve) DeleteNearestControlPoint(target Vec2) bool {
	best := -1
	bestDist := 0.0
	for i, p := range c.cp.points {
		d := p.Manhattan(target)
		if d > DeleteRadius {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return false
	}
	c.deleted = deletedPoint{index: best, pos: c.cp.points[best], vel: c.cp.velocities[best]}
	c.hasDeleted = true
	c.cp.RemoveAt(best)
	c.RecalcSmoothed()
	return true
}

// UndoDelete puts the most recently deleted control point back at its old
// index, or at the end if the curve has since shrunk below it. Only one
// deletion is remembered. It reports whether a point was restored.
func (c *Curve) UndoDelete() bool {
	if !c.hasDeleted {
		return false
	}
	c.hasDeleted = false
	c.cp.InsertAt(c.deleted.index, c.deleted.pos, c.deleted.vel)
	c.RecalcSmoothed()
	return true
}

// Advance moves the control points one tick and rebuilds the smoothed
// samples.
func (c *Curve) Advance() {
	c.cp.Advance()
	c.RecalcSmoothed()
}

// Clear removes every control point and smoothed sample, and forgets the
// last deletion.
func (c *Curve) Clear() {
	c.cp.Clear()
	c.smoothed = c.smoothed[:0]
	c.hasDeleted = false
}

// RecalcSmoothed rebuilds the smoothed samples from the control points. The
// points form a ring; window i blends the midpoint of (p[i], p[i+1]), p[i+1]
// and the midpoint of (p[i+1], p[i+2]) for i from -2 to n-3.
func (c *Curve) RecalcSmoothed() {
	c.smoothed = c.smoothed[:0]
	n := len(c.cp.points)
	if n < 3 {
		return
	}

	var window [3]Vec2
	res := float64(c.resolution)
	for i := -2; i <= n-3; i++ {
		p0 := c.cp.points[wrap(i, n)]
		p1 := c.cp.points[wrap(i+1, n)]
		p2 := c.cp.points[wrap(i+2, n)]
		window[0] = p0.Midpoint(p1)
		window[1] = p1
		window[2] = p1.Midpoint(p2)
		for k := range c.resolution {
			c.smoothed = append(c.smoothed, Blend(window[:], float64(k)/res))
		}
	}
}

// Blend evaluates the recursive blend
//
//	B(L, a, 0) = L[0]
//	B(L, a, d) = L[d]*a + B(L, a, d-1)*(1-a)
//
// starting at d = len(L)-1. For three points this is
// L[2]*a + L[1]*a*(1-a) + L[0]*(1-a)², which differs from the quadratic
// Bézier by the missing factor of 2 on the middle term. The curve shape
// depends on this exact form.
func Blend(l []Vec2, alpha float64) Vec2 {
	if len(l) == 0 {
		return Vec2{}
	}
	return blend(l, alpha, len(l)-1)
}

func blend(l []Vec2, alpha float64, deg int) Vec2 {
	if deg == 0 {
		return l[0]
	}
	return l[deg].Scale(alpha).Add(blend(l, alpha, deg-1).Scale(1 - alpha))
}

// wrap maps i onto [0, n), so that -1 refers to the last element.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
