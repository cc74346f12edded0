package input

import (
	"math"
	"testing"
)

func TestMouseRightDragPans(t *testing.T) {
	var m Mouse
	if acts := m.Move(10, 10); len(acts) != 0 {
		t.Fatal("motion without a drag must not pan")
	}
	m.RightPress(10, 10)
	acts := m.Move(25, 5)
	if len(acts) != 1 || acts[0].DX != 15 || acts[0].DY != -5 {
		t.Fatalf("pan = %v", acts)
	}
	m.RightRelease()
	if m.Dragging() || len(m.Move(90, 90)) != 0 {
		t.Fatal("release must end the drag")
	}
}

func TestMouseWheelZoom(t *testing.T) {
	var m Mouse
	in := m.Wheel(1, 5, 6, false)
	if len(in) != 1 || math.Abs(in[0].Factor-WheelZoomStep) > 1e-12 || in[0].X != 5 || in[0].Y != 6 {
		t.Fatalf("wheel up = %v", in)
	}
	out := m.Wheel(1, 5, 6, true)
	if len(out) != 1 || math.Abs(out[0].Factor-1/WheelZoomStep) > 1e-12 {
		t.Fatalf("inverted wheel up = %v", out)
	}
	if len(m.Wheel(0, 0, 0, false)) != 0 {
		t.Fatal("zero wheel delta must not zoom")
	}
}

func TestMouseLeftPressTaps(t *testing.T) {
	var m Mouse
	acts := m.LeftPress(3, 4)
	if len(acts) != 1 || acts[0].Kind != ActionTap {
		t.Fatalf("left press = %v", acts)
	}
}
