package ui

import "testing"

func TestLayoutRowHitTest(t *testing.T) {
	bar := LayoutRow([]Spec{
		{Label: "Start", Command: CmdStart, Enabled: true},
		{Label: "Clear", Command: CmdClear, Enabled: false},
	}, 10, 10, 0)
	if len(bar.Buttons) != 2 {
		t.Fatalf("got %d buttons", len(bar.Buttons))
	}
	first, second := bar.Buttons[0], bar.Buttons[1]
	if first.Rect.Max.X+ButtonGap != second.Rect.Min.X {
		t.Fatalf("buttons not spaced by the gap: %v %v", first.Rect, second.Rect)
	}
	if btn, ok := bar.HitTest(first.Rect.Min.X+1, first.Rect.Min.Y+1); !ok || btn.Command != CmdStart {
		t.Fatalf("hit test = %v %v", btn, ok)
	}
	if _, ok := bar.HitTest(second.Rect.Min.X+1, second.Rect.Min.Y+1); ok {
		t.Fatal("disabled button must not be hit")
	}
	if !bar.Covers(second.Rect.Min.X+1, second.Rect.Min.Y+1) {
		t.Fatal("disabled button still covers its area")
	}
	if _, ok := bar.HitTest(first.Rect.Max.X, first.Rect.Min.Y); ok {
		t.Fatal("right edge is exclusive")
	}
}

func TestLayoutRowWraps(t *testing.T) {
	specs := []Spec{{Label: "Alpha"}, {Label: "Beta"}, {Label: "Gamma"}}
	bar := LayoutRow(specs, 0, 0, 150)
	if bar.Buttons[2].Rect.Min.Y == 0 {
		t.Fatalf("expected wrap onto a second row: %v", bar.Buttons)
	}
	if bar.Buttons[2].Rect.Min.X != 0 {
		t.Fatalf("wrapped button should start at the left edge: %v", bar.Buttons[2].Rect)
	}
}

func TestLayoutColumnEqualWidths(t *testing.T) {
	bar := LayoutColumn([]Spec{{Label: "A"}, {Label: "A much longer label"}}, 5, 5)
	if bar.Buttons[0].Rect.Dx() != bar.Buttons[1].Rect.Dx() {
		t.Fatal("column buttons should share a width")
	}
	if bar.Buttons[1].Rect.Min.Y != 5+ButtonHeight+ButtonGap {
		t.Fatalf("second button top %d", bar.Buttons[1].Rect.Min.Y)
	}
	if b := bar.Bounds(); b.Min.X >= 5 || b.Max.Y <= bar.Buttons[1].Rect.Max.Y {
		t.Fatalf("bounds %v should pad the buttons", b)
	}
}

func TestCheckboxLabel(t *testing.T) {
	if CheckboxLabel("Invert", true) != "[X] Invert" || CheckboxLabel("Invert", false) != "[ ] Invert" {
		t.Fatal("unexpected checkbox rendering")
	}
}
