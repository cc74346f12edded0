package input

import "testing"

func TestTouchesTap(t *testing.T) {
	tr := NewTouches(NewGesture())
	tr.Update([]Touch{{ID: 1, X: 50, Y: 60}}, 800, 600)
	tr.Update([]Touch{{ID: 1, X: 51, Y: 60}}, 800, 600)
	acts := tr.Update(nil, 800, 600)
	if len(acts) != 1 || acts[0].Kind != ActionTap || acts[0].X != 50 || acts[0].Y != 60 {
		t.Fatalf("expected tap, got %v", acts)
	}
}

func TestTouchesPan(t *testing.T) {
	tr := NewTouches(NewGesture())
	tr.Update([]Touch{{ID: 3, X: 100, Y: 100}}, 800, 600)
	acts := tr.Update([]Touch{{ID: 3, X: 140, Y: 90}}, 800, 600)
	if len(acts) != 1 || acts[0].Kind != ActionPan || acts[0].DX != 40 || acts[0].DY != -10 {
		t.Fatalf("expected pan, got %v", acts)
	}
	if acts := tr.Update(nil, 800, 600); len(acts) != 0 {
		t.Fatalf("release after pan produced %v", acts)
	}
}

func TestTouchesPinch(t *testing.T) {
	tr := NewTouches(NewGesture())
	tr.Update([]Touch{{ID: 1, X: 100, Y: 100}}, 800, 600)
	tr.Update([]Touch{{ID: 1, X: 100, Y: 100}, {ID: 2, X: 200, Y: 100}}, 800, 600)
	acts := tr.Update([]Touch{{ID: 1, X: 50, Y: 100}, {ID: 2, X: 250, Y: 100}}, 800, 600)
	if len(acts) != 1 || acts[0].Kind != ActionZoom || acts[0].Factor != 2 || acts[0].X != 150 || acts[0].Y != 100 {
		t.Fatalf("expected 2x zoom at (150,100), got %v", acts)
	}
	acts = tr.Update([]Touch{{ID: 2, X: 250, Y: 100}}, 800, 600)
	acts = append(acts, tr.Update(nil, 800, 600)...)
	for _, a := range acts {
		if a.Kind == ActionTap || a.Kind == ActionPan {
			t.Fatalf("releasing a pinch produced %v", a)
		}
	}
	if tr.Gesture().State() != GestureIdle {
		t.Fatalf("state %v, want idle", tr.Gesture().State())
	}
}

func TestTouchesCancelDropsPendingTap(t *testing.T) {
	tr := NewTouches(NewGesture())
	tr.Update([]Touch{{ID: 1, X: 50, Y: 60}}, 800, 600)
	tr.Cancel()
	if tr.Gesture().State() != GestureIdle {
		t.Fatalf("state %v after cancel", tr.Gesture().State())
	}
	acts := tr.Update([]Touch{{ID: 1, X: 200, Y: 60}}, 800, 600)
	acts = append(acts, tr.Update(nil, 800, 600)...)
	if len(acts) != 0 {
		t.Fatalf("cancelled touch produced %v", acts)
	}
	// The next press is tracked normally.
	tr.Update([]Touch{{ID: 2, X: 10, Y: 10}}, 800, 600)
	if acts := tr.Update(nil, 800, 600); len(acts) != 1 || acts[0].Kind != ActionTap {
		t.Fatalf("fresh press after cancel produced %v", acts)
	}
}
