// Package input turns raw pointer, wheel and touch samples into editor
// actions (tap, pan, zoom) independently of any windowing backend.
package input

import "fmt"

// ActionKind enumerates the editor actions produced by input trackers.
type ActionKind int

const (
	// ActionTap asks to toggle the cell under (X, Y).
	ActionTap ActionKind = iota + 1
	// ActionPan moves the view by (DX, DY) pixels.
	ActionPan
	// ActionZoom scales the view by Factor around (X, Y).
	ActionZoom
)

func (k ActionKind) String() string {
	switch k {
	case ActionTap:
		return "tap"
	case ActionPan:
		return "pan"
	case ActionZoom:
		return "zoom"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a single editor intent in screen pixels.
type Action struct {
	Kind   ActionKind
	X, Y   int
	DX, DY int
	Factor float64
}

// Tap builds a tap action.
func Tap(x, y int) Action { return Action{Kind: ActionTap, X: x, Y: y} }

// Pan builds a pan action.
func Pan(dx, dy int) Action { return Action{Kind: ActionPan, DX: dx, DY: dy} }

// Zoom builds a zoom action.
func Zoom(factor float64, x, y int) Action {
	return Action{Kind: ActionZoom, X: x, Y: y, Factor: factor}
}
