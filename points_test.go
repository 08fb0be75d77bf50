package knot

import "testing"

func newPoints(w, h float64) *ControlPoints {
	return &ControlPoints{bounds: Size{Width: w, Height: h}}
}

func TestControlPointsAppendRemove(t *testing.T) {
	cp := newPoints(800, 600)
	cp.Append(V(1, 1), V(10, 10))
	cp.Append(V(2, 2), V(20, 20))
	cp.Append(V(3, 3), V(30, 30))

	cp.RemoveAt(1)
	diff(t, []Vec2{V(1, 1), V(3, 3)}, cp.Points())
	diff(t, []Vec2{V(10, 10), V(30, 30)}, cp.Velocities())

	cp.RemoveAt(-1)
	cp.RemoveAt(2)
	if cp.Len() != 2 {
		t.Errorf("out of range removal changed length to %d", cp.Len())
	}

	cp.Clear()
	if cp.Len() != 0 || len(cp.Velocities()) != 0 {
		t.Errorf("Clear left %d points and %d velocities", cp.Len(), len(cp.Velocities()))
	}
}

func TestControlPointsAdvance(t *testing.T) {
	cp := newPoints(800, 600)
	cp.Append(V(10, 20), V(1, 2))
	cp.Advance()
	diff(t, []Vec2{V(11, 22)}, cp.Points())
	diff(t, []Vec2{V(1, 2)}, cp.Velocities())
}

func TestControlPointsAdvanceReflects(t *testing.T) {
	tests := []struct {
		name    string
		pos     Vec2
		vel     Vec2
		wantPos Vec2
		wantVel Vec2
	}{
		{"right edge", V(799, 50), V(5, 0), V(804, 50), V(-5, 0)},
		{"left edge", V(1, 50), V(-3, 1), V(-2, 51), V(3, 1)},
		{"bottom edge", V(50, 598), V(1, 4), V(51, 602), V(1, -4)},
		{"top edge", V(50, 1), V(0, -2), V(50, -1), V(0, 2)},
		{"corner", V(799, 599), V(2, 2), V(801, 601), V(-2, -2)},
		{"landing on edge", V(795, 50), V(5, 0), V(800, 50), V(5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := newPoints(800, 600)
			cp.Append(tt.pos, tt.vel)
			cp.Advance()
			diff(t, tt.wantPos, cp.Points()[0])
			diff(t, tt.wantVel, cp.Velocities()[0])
		})
	}
}

func TestControlPointsAdvanceReflectsOwnIndex(t *testing.T) {
	cp := newPoints(800, 600)
	cp.Append(V(799, 50), V(5, 0))
	cp.Append(V(400, 300), V(1, 1))
	cp.Advance()
	diff(t, []Vec2{V(-5, 0), V(1, 1)}, cp.Velocities())
}

func TestControlPointsAdvanceOutsideReturns(t *testing.T) {
	cp := newPoints(800, 600)
	cp.Append(V(799, 50), V(5, 0))
	cp.Advance() // 804, reflected
	cp.Advance() // 799, back inside
	diff(t, V(799, 50), cp.Points()[0])
	diff(t, V(-5, 0), cp.Velocities()[0])
}

func TestControlPointsScaleVelocities(t *testing.T) {
	cp := newPoints(800, 600)
	cp.Append(V(0, 0), V(2, -4))
	cp.Append(V(0, 0), V(0.5, 1))
	cp.ScaleVelocities(1.5)
	diff(t, []Vec2{V(3, -6), V(0.75, 1.5)}, cp.Velocities())
}

func TestControlPointsInsertAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []Vec2
	}{
		{"front", 0, []Vec2{V(9, 9), V(1, 1), V(2, 2)}},
		{"middle", 1, []Vec2{V(1, 1), V(9, 9), V(2, 2)}},
		{"end", 2, []Vec2{V(1, 1), V(2, 2), V(9, 9)}},
		{"past end appends", 7, []Vec2{V(1, 1), V(2, 2), V(9, 9)}},
		{"negative prepends", -3, []Vec2{V(9, 9), V(1, 1), V(2, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := newPoints(800, 600)
			cp.Append(V(1, 1), V(1, 0))
			cp.Append(V(2, 2), V(2, 0))
			cp.InsertAt(tt.index, V(9, 9), V(9, 0))
			diff(t, tt.want, cp.Points())
			for i, p := range cp.Points() {
				if cp.Velocities()[i].X != p.X {
					t.Errorf("velocity %d = %v, not aligned with %v", i, cp.Velocities()[i], p)
				}
			}
		})
	}
}
