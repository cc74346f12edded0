//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

var (
	panelBg      = color.RGBA{R: 16, G: 16, B: 20, A: 220}
	buttonBg     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	buttonBorder = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	disabledFg   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	settingsBg   = color.RGBA{R: 20, G: 20, B: 40, A: 255}
)

// DrawBar paints a panel behind the buttons and then each button.
func DrawBar(screen *ebiten.Image, bar Bar) {
	if len(bar.Buttons) == 0 {
		return
	}
	b := bar.Bounds()
	vector.FillRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), panelBg, false)
	for _, btn := range bar.Buttons {
		drawButton(screen, btn)
	}
}

// DrawSettingsBackground clears the screen behind the settings column.
func DrawSettingsBackground(screen *ebiten.Image) {
	screen.Fill(settingsBg)
}

func drawButton(screen *ebiten.Image, btn Button) {
	r := btn.Rect
	fg := labelColor
	border := buttonBorder
	if !btn.Enabled {
		fg = disabledFg
		border = disabledFg
	}
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonBg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, border, false)
	drawCentered(screen, btn.Label, r, fg)
}

func drawCentered(screen *ebiten.Image, label string, r image.Rectangle, clr color.Color) {
	w, h := text.Measure(label, face, face.Metrics().HLineGap+face.Metrics().HAscent+face.Metrics().HDescent)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X)+(float64(r.Dx())-w)/2, float64(r.Min.Y)+(float64(r.Dy())-h)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, label, face, op)
}

// DrawText draws a line of HUD text with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
