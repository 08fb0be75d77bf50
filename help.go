package knot

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	helpBackground = Color{R: 50.0 / 255, G: 50.0 / 255, B: 50.0 / 255, A: 1}
	helpBorder     = Color{R: 1, G: 50.0 / 255, B: 50.0 / 255, A: 1}
	helpText       = Color{R: 128.0 / 255, G: 128.0 / 255, B: 1, A: 1}
)

const (
	helpLeft      = 100
	helpTop       = 100
	helpColumn    = 100
	helpRowHeight = 30
	helpBorderW   = 5
	helpFontSize  = 24
)

// helpFonts holds the two overlay faces: monospace for the key column and
// proportional for the descriptions.
type helpFonts struct {
	keys, labels *Font
}

func loadHelpFonts() (helpFonts, error) {
	keys, err := LoadFont(gomono.TTF, helpFontSize)
	if err != nil {
		return helpFonts{}, fmt.Errorf("help key font: %w", err)
	}
	labels, err := LoadFont(goregular.TTF, helpFontSize)
	if err != nil {
		return helpFonts{}, fmt.Errorf("help label font: %w", err)
	}
	return helpFonts{keys: keys, labels: labels}, nil
}

// helpRows returns the key column and description column of the help
// overlay, ending with the live settings of the active curve.
func (s *Saver) helpRows() [][2]string {
	c := s.curves.Active()
	return [][2]string{
		{"F1", "Show Help"},
		{"R", "Restart"},
		{"P", "Pause/Play"},
		{"Num+", "More points"},
		{"Num-", "Less points"},
		{"Left/Right", "Switch curve"},
		{"Up/Down", "Faster/Slower"},
		{"C", "Control polygon"},
		{"U", "Undo delete"},
		{"Esc", "Quit"},
		{"", ""},
		{fmt.Sprint(c.Resolution()), "Current points"},
		{fmt.Sprintf("%d/%d", s.curves.Index()+1, s.curves.Capacity()), "Active curve"},
	}
}

// drawHelp covers the screen with the help overlay.
func (s *Saver) drawHelp(screen *ebiten.Image) {
	screen.Fill(helpBackground.RGBA())

	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	frame := []Vec2{V(0, 0), V(w, 0), V(w, h), V(0, h)}
	s.batch.closedStroke(screen, frame, helpBorderW, helpBorder)
	s.batch.flush(screen)

	for i, row := range s.helpRows() {
		y := float64(helpTop + helpRowHeight*i)
		s.fonts.keys.Draw(screen, row[0], helpLeft, y, helpText)
		s.fonts.labels.Draw(screen, row[1], helpLeft+helpColumn, y, helpText)
	}
}
