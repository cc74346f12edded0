package input

import "math"

// GestureState is the phase of a touch interaction.
type GestureState int

const (
	// GestureIdle means no finger is down.
	GestureIdle GestureState = iota
	// GestureFingerDown means one finger is down and has not yet moved far
	// enough to count as a pan.
	GestureFingerDown
	// GesturePanning means the single finger is dragging the view.
	GesturePanning
	// GestureMulti means two or more fingers are (or were) down; single-finger
	// panning and tapping are suppressed until every finger lifts.
	GestureMulti
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureFingerDown:
		return "finger-down"
	case GesturePanning:
		return "panning"
	case GestureMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// DefaultPanThreshold is the finger travel, as a fraction of the viewport,
// that turns a press into a pan.
const DefaultPanThreshold = 0.005

// Gesture disambiguates tap, pan and pinch from touch events.
type Gesture struct {
	// Threshold is the pan threshold as a fraction of the viewport size.
	Threshold float64

	state          GestureState
	startX, startY float64
	lastX, lastY   float64
}

// NewGesture returns an idle gesture tracker with the default threshold.
func NewGesture() *Gesture {
	return &Gesture{Threshold: DefaultPanThreshold}
}

// State returns the current phase.
func (g *Gesture) State() GestureState { return g.state }

// FingerDown records a new finger at (x, y); fingers is the number of fingers
// down including this one.
func (g *Gesture) FingerDown(x, y float64, fingers int) {
	if fingers >= 2 {
		g.state = GestureMulti
		return
	}
	if g.state == GestureMulti {
		return
	}
	g.state = GestureFingerDown
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
}

// FingerMotion moves the single tracked finger to (x, y) inside a viewport of
// vw×vh pixels.
func (g *Gesture) FingerMotion(x, y float64, vw, vh int) []Action {
	switch g.state {
	case GestureFingerDown:
		dx := math.Abs(x - g.startX)
		dy := math.Abs(y - g.startY)
		if dx <= g.Threshold*float64(vw) && dy <= g.Threshold*float64(vh) {
			return nil
		}
		g.state = GesturePanning
		fallthrough
	case GesturePanning:
		// Emit whole pixels and carry the remainder into the next motion.
		dx := int(x - g.lastX)
		dy := int(y - g.lastY)
		g.lastX += float64(dx)
		g.lastY += float64(dy)
		if dx == 0 && dy == 0 {
			return nil
		}
		return []Action{Pan(dx, dy)}
	}
	return nil
}

// FingerUp lifts a finger; remaining is the number still down afterwards. A
// press that never became a pan or a multi-finger gesture yields a tap at the
// position where it started.
func (g *Gesture) FingerUp(remaining int) []Action {
	var out []Action
	if g.state == GestureFingerDown && remaining == 0 {
		out = append(out, Tap(int(g.startX), int(g.startY)))
	}
	if remaining <= 0 {
		g.state = GestureIdle
	}
	return out
}

// Pinch reports a multi-finger distance change by ratio (new/old) centered at
// (cx, cy).
func (g *Gesture) Pinch(ratio float64, cx, cy float64) []Action {
	g.state = GestureMulti
	if ratio <= 0 || ratio == 1 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil
	}
	return []Action{Zoom(ratio, int(cx), int(cy))}
}

// Cancel drops any in-progress gesture.
func (g *Gesture) Cancel() { g.state = GestureIdle }
