package knot

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens when vertices or fills are submitted.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite draws control point markers.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the default background.
	ColorBlack = Color{0, 0, 0, 1}
)

// HSL returns the opaque color with hue h in degrees and saturation s and
// lightness l in [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}

// Scale returns the color with R, G and B multiplied by k. Alpha is kept.
func (c Color) Scale(k float64) Color {
	return Color{R: clamp01(c.R * k), G: clamp01(c.G * k), B: clamp01(c.B * k), A: c.A}
}

// premultiplied returns the components multiplied by alpha, as expected by
// ebiten vertex colors.
func (c Color) premultiplied() (r, g, b, a float32) {
	a64 := clamp01(c.A)
	return float32(clamp01(c.R) * a64), float32(clamp01(c.G) * a64), float32(clamp01(c.B) * a64), float32(a64)
}

// RGBA converts the color to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b, a := c.premultiplied()
	return color.RGBA{
		R: uint8(math.Round(float64(r) * 255)),
		G: uint8(math.Round(float64(g) * 255)),
		B: uint8(math.Round(float64(b) * 255)),
		A: uint8(math.Round(float64(a) * 255)),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button
)
