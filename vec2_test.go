package knot

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a, b := V(1.5, -2), V(0.25, 4)
	diff(t, V(1.75, 2), a.Add(b))
	diff(t, V(1.25, -6), a.Sub(b))
	diff(t, V(3, -4), a.Scale(2))
	diff(t, a.Scale(2), Scale(2, a))
	diff(t, V(0.875, 1), a.Midpoint(b))
}

func TestVec2ScaleDistributes(t *testing.T) {
	tests := []struct {
		a, b Vec2
		k    float64
	}{
		{V(1, 2), V(3, 4), 2},
		{V(-1.5, 0.25), V(8, -3), 0.5},
		{V(0, 0), V(7, 7), -3},
		{V(1e3, -1e3), V(0.1, 0.2), 1 / 1.5},
	}
	for _, tt := range tests {
		got := tt.a.Add(tt.b).Scale(tt.k)
		want := tt.a.Scale(tt.k).Add(tt.b.Scale(tt.k))
		diff(t, want, got, approx)
	}
}

func TestVec2Magnitude(t *testing.T) {
	tests := []struct {
		v    Vec2
		want int
	}{
		{V(0, 0), 0},
		{V(3, 4), 5},
		{V(-3, -4), 5},
		{V(1, 1), 1},
		{V(1.5, 2), 3}, // 2.5 rounds away from zero
		{V(10, 0.4), 10},
	}
	for _, tt := range tests {
		if got := tt.v.Magnitude(); got != tt.want {
			t.Errorf("%v.Magnitude() = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestVec2Manhattan(t *testing.T) {
	if d := V(0, 0).Manhattan(V(2, 1)); d != 3 {
		t.Errorf("got %v, want 3", d)
	}
	if d := V(-1, 5).Manhattan(V(2, 1)); d != 7 {
		t.Errorf("got %v, want 7", d)
	}
	if d := V(2, 1).Manhattan(V(-1, 5)); d != 7 {
		t.Errorf("not symmetric: got %v, want 7", d)
	}
}

func TestVec2IntPair(t *testing.T) {
	x, y := V(1.4, -1.6).IntPair()
	if x != 1 || y != -2 {
		t.Errorf("got (%d, %d), want (1, -2)", x, y)
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{Width: 800, Height: 600}
	tests := []struct {
		name   string
		p      Vec2
		expect bool
	}{
		{"inside", V(400, 300), true},
		{"origin", V(0, 0), true},
		{"far corner", V(800, 600), true},
		{"left", V(-0.1, 300), false},
		{"right", V(800.1, 300), false},
		{"above", V(400, -1), false},
		{"below", V(400, 601), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}
