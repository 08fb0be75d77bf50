package knot

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and curve metrics.
// Only populated when debug mode is on.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	curves     int
	points     int
	samples    int
}

// collectStats gathers the curve counts for the frame just drawn.
func (s *Saver) collectStats(drawTime time.Duration) debugStats {
	stats := debugStats{updateTime: s.updateTime, drawTime: drawTime}
	s.curves.Each(func(_ int, c *Curve) {
		stats.curves++
		stats.points += c.Len()
		stats.samples += len(c.Smoothed())
	})
	return stats
}

// debugLog prints timing and curve stats to stderr.
func (s *Saver) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[knot] update: %v | draw: %v | total: %v\n",
		stats.updateTime, stats.drawTime, stats.updateTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[knot] curves: %d | points: %d | samples: %d | paused: %v\n",
		stats.curves, stats.points, stats.samples, s.paused)
}
