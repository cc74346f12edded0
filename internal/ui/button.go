package ui

import (
	"image"

	"lifepaint/internal/core"
)

// Command identifies what a button does when activated.
type Command int

const (
	CmdNone Command = iota
	CmdStart
	CmdPause
	CmdStep
	CmdClear
	CmdCenter
	CmdRandom
	CmdSettings
	CmdBack
	CmdImport
	CmdExport
	CmdCopy
	CmdToggleSetting
	CmdNextRule
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect    image.Rectangle
	Label   string
	Command Command
	// Setting names the toggle flipped by CmdToggleSetting buttons.
	Setting core.SettingKey
	Enabled bool
}

// Contains reports whether (x, y) lies inside the button.
func (b Button) Contains(x, y int) bool {
	return pointInRect(x, y, b.Rect)
}

// Spec describes a button before layout.
type Spec struct {
	Label   string
	Command Command
	Setting core.SettingKey
	Enabled bool
}

// Metrics used for layout. Glyphs of the 7x13 face are 7px wide.
const (
	glyphWidth    = 7
	buttonPadX    = 12
	ButtonHeight  = 32
	ButtonGap     = 8
	panelPadding  = 12
	minButtonSize = 48
)

// LabelWidth returns the pixel width of label in the HUD face.
func LabelWidth(label string) int { return len(label) * glyphWidth }

func buttonWidth(label string) int {
	w := LabelWidth(label) + 2*buttonPadX
	if w < minButtonSize {
		w = minButtonSize
	}
	return w
}

// Bar is an ordered set of laid-out buttons.
type Bar struct {
	Buttons []Button
}

// LayoutRow places buttons left to right starting at (x, y), wrapping onto a
// new row when maxWidth would be exceeded (maxWidth <= 0 disables wrapping).
func LayoutRow(specs []Spec, x, y, maxWidth int) Bar {
	bar := Bar{Buttons: make([]Button, 0, len(specs))}
	cx, cy := x, y
	for _, s := range specs {
		w := buttonWidth(s.Label)
		if maxWidth > 0 && cx > x && cx+w > x+maxWidth {
			cx = x
			cy += ButtonHeight + ButtonGap
		}
		bar.Buttons = append(bar.Buttons, Button{
			Rect:    image.Rect(cx, cy, cx+w, cy+ButtonHeight),
			Label:   s.Label,
			Command: s.Command,
			Setting: s.Setting,
			Enabled: s.Enabled,
		})
		cx += w + ButtonGap
	}
	return bar
}

// LayoutColumn stacks buttons of equal width top to bottom starting at (x, y).
func LayoutColumn(specs []Spec, x, y int) Bar {
	width := minButtonSize
	for _, s := range specs {
		if w := buttonWidth(s.Label); w > width {
			width = w
		}
	}
	bar := Bar{Buttons: make([]Button, 0, len(specs))}
	for i, s := range specs {
		top := y + i*(ButtonHeight+ButtonGap)
		bar.Buttons = append(bar.Buttons, Button{
			Rect:    image.Rect(x, top, x+width, top+ButtonHeight),
			Label:   s.Label,
			Command: s.Command,
			Setting: s.Setting,
			Enabled: s.Enabled,
		})
	}
	return bar
}

// HitTest returns the enabled button under (x, y).
func (b Bar) HitTest(x, y int) (Button, bool) {
	for _, btn := range b.Buttons {
		if btn.Enabled && btn.Contains(x, y) {
			return btn, true
		}
	}
	return Button{}, false
}

// Covers reports whether (x, y) lies on any button, enabled or not, so that
// clicks on the toolbar never fall through to the grid.
func (b Bar) Covers(x, y int) bool {
	for _, btn := range b.Buttons {
		if btn.Contains(x, y) {
			return true
		}
	}
	return false
}

// Bounds returns the union of all button rectangles padded by the panel
// padding.
func (b Bar) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, btn := range b.Buttons {
		r = r.Union(btn.Rect)
	}
	if r.Empty() {
		return r
	}
	return r.Inset(-panelPadding / 2)
}

// CheckboxLabel renders a toggle as "[X] label" or "[ ] label".
func CheckboxLabel(label string, on bool) string {
	if on {
		return "[X] " + label
	}
	return "[ ] " + label
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
