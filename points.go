package knot

import "slices"

// ControlPoints is an ordered set of control points and their velocities.
// points[i] and velocities[i] always describe the same control point; every
// mutation updates both slices together.
type ControlPoints struct {
	points     []Vec2
	velocities []Vec2
	bounds     Size
}

// Bounds returns the viewport the points bounce inside.
func (cp *ControlPoints) Bounds() Size {
	return cp.bounds
}

// Len returns the number of control points.
func (cp *ControlPoints) Len() int {
	return len(cp.points)
}

// Points returns the control point positions. The returned slice MUST NOT be
// mutated.
func (cp *ControlPoints) Points() []Vec2 {
	return cp.points
}

// Velocities returns the per-tick velocities, index-aligned with Points. The
// returned slice MUST NOT be mutated.
func (cp *ControlPoints) Velocities() []Vec2 {
	return cp.velocities
}

// Append adds a control point at pos moving with vel.
func (cp *ControlPoints) Append(pos, vel Vec2) {
	cp.points = append(cp.points, pos)
	cp.velocities = append(cp.velocities, vel)
}

// RemoveAt removes the control point at index i. Out of range indices are
// ignored.
func (cp *ControlPoints) RemoveAt(i int) {
	if i < 0 || i >= len(cp.points) {
		return
	}
	copy(cp.points[i:], cp.points[i+1:])
	cp.points = cp.points[:len(cp.points)-1]
	copy(cp.velocities[i:], cp.velocities[i+1:])
	cp.velocities = cp.velocities[:len(cp.velocities)-1]
}

// InsertAt inserts a control point before index i. An index past the end
// appends; a negative index inserts at the front.
func (cp *ControlPoints) InsertAt(i int, pos, vel Vec2) {
	i = min(max(i, 0), len(cp.points))
	cp.points = slices.Insert(cp.points, i, pos)
	cp.velocities = slices.Insert(cp.velocities, i, vel)
}

// Clear removes every control point.
func (cp *ControlPoints) Clear() {
	cp.points = cp.points[:0]
	cp.velocities = cp.velocities[:0]
}

// ScaleVelocities multiplies every velocity by k.
func (cp *ControlPoints) ScaleVelocities(k float64) {
	for i := range cp.velocities {
		cp.velocities[i] = cp.velocities[i].Scale(k)
	}
}

// Advance moves every point by its velocity. A point that ends up outside the
// bounds has the matching velocity component negated. Positions are not
// clamped, so a point may sit outside the viewport for a tick or two before
// the reflected velocity carries it back.
func (cp *ControlPoints) Advance() {
	for i, p := range cp.points {
		np := p.Add(cp.velocities[i])
		cp.points[i] = np
		v := cp.velocities[i]
		if np.X < 0 || np.X > cp.bounds.Width {
			v.X = -v.X
		}
		if np.Y < 0 || np.Y > cp.bounds.Height {
			v.Y = -v.Y
		}
		cp.velocities[i] = v
	}
}
