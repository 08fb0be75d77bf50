package knot

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HueCycle sweeps a hue from 0 to 360 degrees at a constant rate and starts
// over when it gets there. The Saver draws the active curve in its color.
//
// There is no global animation manager; the owner calls Update every tick.
type HueCycle struct {
	tween *gween.Tween
	hue   float64
}

// NewHueCycle returns a cycle taking period seconds per trip around the color
// wheel.
func NewHueCycle(period float32) *HueCycle {
	return &HueCycle{tween: gween.New(0, 360, period, ease.Linear)}
}

// Update advances the cycle by dt seconds and returns the new hue.
func (h *HueCycle) Update(dt float32) float64 {
	val, finished := h.tween.Update(dt)
	if finished {
		h.tween.Reset()
		val = 0
	}
	h.hue = float64(val)
	return h.hue
}

// Hue returns the current hue in degrees.
func (h *HueCycle) Hue() float64 {
	return h.hue
}

// Color returns the fully saturated, half-lightness color of the current
// hue.
func (h *HueCycle) Color() Color {
	return HSL(h.hue, 1, 0.5)
}
