package input

import "math"

// WheelZoomStep is the zoom factor applied per wheel notch.
const WheelZoomStep = 1.1

// Mouse tracks right-button drag panning and turns clicks and wheel motion
// into actions.
type Mouse struct {
	dragging     bool
	lastX, lastY int
}

// LeftPress yields a tap at the cursor.
func (m *Mouse) LeftPress(x, y int) []Action {
	return []Action{Tap(x, y)}
}

// RightPress starts a drag.
func (m *Mouse) RightPress(x, y int) {
	m.dragging = true
	m.lastX, m.lastY = x, y
}

// RightRelease ends a drag.
func (m *Mouse) RightRelease() { m.dragging = false }

// Dragging reports whether a right-button drag is active.
func (m *Mouse) Dragging() bool { return m.dragging }

// Move reports cursor motion; while dragging it yields a pan.
func (m *Mouse) Move(x, y int) []Action {
	if !m.dragging {
		return nil
	}
	dx, dy := x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	if dx == 0 && dy == 0 {
		return nil
	}
	return []Action{Pan(dx, dy)}
}

// Wheel converts vertical wheel motion at (x, y) into a zoom. Scrolling up
// zooms in unless invert is set.
func (m *Mouse) Wheel(dy float64, x, y int, invert bool) []Action {
	if dy == 0 {
		return nil
	}
	if invert {
		dy = -dy
	}
	return []Action{Zoom(math.Pow(WheelZoomStep, dy), x, y)}
}
