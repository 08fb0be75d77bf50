package knot

import (
	"image/color"
	"testing"
)

// --- HSL ---

func TestHSL(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want Color
	}{
		{"red", 0, Color{1, 0, 0, 1}},
		{"yellow", 60, Color{1, 1, 0, 1}},
		{"green", 120, Color{0, 1, 0, 1}},
		{"cyan", 180, Color{0, 1, 1, 1}},
		{"blue", 240, Color{0, 0, 1, 1}},
		{"magenta", 300, Color{1, 0, 1, 1}},
		{"full turn", 360, Color{1, 0, 0, 1}},
		{"negative", -120, Color{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, HSL(tt.h, 1, 0.5), approx)
		})
	}
}

func TestHSLGray(t *testing.T) {
	diff(t, Color{0.25, 0.25, 0.25, 1}, HSL(200, 0, 0.25), approx)
}

// --- Color ---

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"black", ColorBlack, color.RGBA{0, 0, 0, 255}},
		{"half alpha", Color{1, 0.5, 0, 0.5}, color.RGBA{128, 64, 0, 128}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBA(); got != tt.want {
				t.Errorf("%+v.RGBA() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestColorScale(t *testing.T) {
	diff(t, Color{0.5, 0.25, 0, 0.8}, Color{1, 0.5, 0, 0.8}.Scale(0.5))
	diff(t, Color{1, 1, 1, 1}, Color{0.8, 0.9, 1, 1}.Scale(2))
}
