package knot

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window sized and titled from the Saver's config and runs the
// game loop until the window is closed or quit is requested.
func Run(s *Saver) error {
	cfg := s.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run saver: %w", err)
	}
	return nil
}
