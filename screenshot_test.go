package knot

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"Curve3", "Curve3"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		128, 64, 0, 128, // half transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
		200, 10, 10, 100, // over-bright after division is clamped
	}
	unpremultiply(pix)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
		255, 25, 25, 100,
	}
	diff(t, want, pix)
}

func TestScreenshotQueue(t *testing.T) {
	s := newTestSaver(t)
	s.Screenshot("a")
	s.Screenshot("b")
	diff(t, []string{"a", "b"}, s.screenshotQueue)
}
