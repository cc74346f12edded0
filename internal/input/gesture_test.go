package input

import "testing"

func TestTapWithoutMovement(t *testing.T) {
	g := NewGesture()
	g.FingerDown(100, 80, 1)
	if g.State() != GestureFingerDown {
		t.Fatalf("state %v, want finger-down", g.State())
	}
	// Jitter under the threshold (0.5% of 800 = 4px) stays undecided.
	if acts := g.FingerMotion(103, 82, 800, 600); len(acts) != 0 {
		t.Fatalf("sub-threshold motion produced %v", acts)
	}
	acts := g.FingerUp(0)
	if len(acts) != 1 || acts[0].Kind != ActionTap || acts[0].X != 100 || acts[0].Y != 80 {
		t.Fatalf("expected tap at the start position, got %v", acts)
	}
	if g.State() != GestureIdle {
		t.Fatalf("state %v after release, want idle", g.State())
	}
}

func TestDragBecomesPanAndSuppressesTap(t *testing.T) {
	g := NewGesture()
	g.FingerDown(100, 100, 1)
	acts := g.FingerMotion(120, 95, 800, 600)
	if g.State() != GesturePanning {
		t.Fatalf("state %v, want panning", g.State())
	}
	if len(acts) != 1 || acts[0].Kind != ActionPan || acts[0].DX != 20 || acts[0].DY != -5 {
		t.Fatalf("pan = %v", acts)
	}
	acts = g.FingerMotion(130.5, 95, 800, 600)
	if len(acts) != 1 || acts[0].DX != 10 {
		t.Fatalf("second pan = %v", acts)
	}
	// The half pixel carried over completes on the next sample.
	acts = g.FingerMotion(131, 95, 800, 600)
	if len(acts) != 1 || acts[0].DX != 1 {
		t.Fatalf("carried pan = %v", acts)
	}
	if acts := g.FingerUp(0); len(acts) != 0 {
		t.Fatalf("release after pan produced %v", acts)
	}
}

func TestMultiGestureSuppressesPanAndTap(t *testing.T) {
	g := NewGesture()
	g.FingerDown(100, 100, 1)
	g.FingerDown(200, 100, 2)
	if g.State() != GestureMulti {
		t.Fatalf("state %v, want multi", g.State())
	}
	acts := g.Pinch(1.2, 150, 100)
	if len(acts) != 1 || acts[0].Kind != ActionZoom || acts[0].Factor != 1.2 || acts[0].X != 150 {
		t.Fatalf("pinch = %v", acts)
	}
	if acts := g.FingerUp(1); len(acts) != 0 {
		t.Fatalf("lifting one finger produced %v", acts)
	}
	if g.State() != GestureMulti {
		t.Fatal("multi state must persist until the last finger lifts")
	}
	if acts := g.FingerMotion(400, 400, 800, 600); len(acts) != 0 {
		t.Fatalf("single-finger motion during multi produced %v", acts)
	}
	// A finger landing while multi is active does not start a new press.
	g.FingerDown(300, 300, 1)
	if g.State() != GestureMulti {
		t.Fatal("finger down must not leave multi while fingers remain")
	}
	if acts := g.FingerUp(0); len(acts) != 0 {
		t.Fatalf("last release after multi produced %v", acts)
	}
	if g.State() != GestureIdle {
		t.Fatal("expected idle after the last finger lifts")
	}
}

func TestPinchIgnoresDegenerateRatios(t *testing.T) {
	g := NewGesture()
	for _, r := range []float64{0, -1, 1} {
		if acts := g.Pinch(r, 0, 0); len(acts) != 0 {
			t.Fatalf("ratio %v produced %v", r, acts)
		}
	}
}

func TestCancel(t *testing.T) {
	g := NewGesture()
	g.FingerDown(1, 1, 1)
	g.Cancel()
	if acts := g.FingerUp(0); len(acts) != 0 {
		t.Fatalf("cancelled press produced %v", acts)
	}
}

func TestStateString(t *testing.T) {
	if GesturePanning.String() != "panning" || ActionZoom.String() != "zoom" {
		t.Fatal("unexpected names")
	}
}
