//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the statistics readout and the transient status message.
type Overlay struct {
	statsColor  color.Color
	statusColor color.Color
	statusBg    color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{
		statsColor:  color.RGBA{R: 200, G: 200, B: 210, A: 255},
		statusColor: color.RGBA{R: 255, G: 230, B: 120, A: 255},
		statusBg:    color.RGBA{R: 0, G: 0, B: 0, A: 200},
	}
}

// Draw renders the given readout lines in the bottom-left corner and the
// status message centered along the bottom edge.
func (o *Overlay) Draw(screen *ebiten.Image, lines []string, status string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	const lineHeight = 16
	y := h - panelPadding - len(lines)*lineHeight
	for _, line := range lines {
		DrawText(screen, line, panelPadding, y, o.statsColor)
		y += lineHeight
	}
	if status == "" {
		return
	}
	sw := LabelWidth(status) + 2*buttonPadX
	x := (w - sw) / 2
	top := h - panelPadding - ButtonHeight - len(lines)*lineHeight
	vector.FillRect(screen, float32(x), float32(top), float32(sw), ButtonHeight, o.statusBg, false)
	DrawText(screen, status, x+buttonPadX, top+(ButtonHeight-13)/2, o.statusColor)
}
