package input

import (
	"math"
	"sort"
)

// Touch is one finger sample in screen pixels.
type Touch struct {
	ID   int
	X, Y float64
}

// Touches converts per-frame finger samples into Gesture events.
type Touches struct {
	gesture *Gesture
	prev    map[int]Touch
}

// NewTouches wraps a gesture tracker.
func NewTouches(g *Gesture) *Touches {
	return &Touches{gesture: g, prev: map[int]Touch{}}
}

// Gesture returns the underlying tracker.
func (t *Touches) Gesture() *Gesture { return t.gesture }

// Cancel abandons the gesture in progress. Fingers still down are ignored
// until they lift.
func (t *Touches) Cancel() { t.gesture.Cancel() }

// Update diffs the fingers currently down against the previous frame.
func (t *Touches) Update(cur []Touch, vw, vh int) []Action {
	var out []Action
	now := make(map[int]Touch, len(cur))
	for _, c := range cur {
		now[c.ID] = c
	}

	down := len(t.prev)
	for _, c := range sortedTouches(now) {
		if _, ok := t.prev[c.ID]; ok {
			continue
		}
		down++
		t.gesture.FingerDown(c.X, c.Y, down)
	}

	switch {
	case len(now) == 1:
		for id, c := range now {
			if _, ok := t.prev[id]; ok {
				out = append(out, t.gesture.FingerMotion(c.X, c.Y, vw, vh)...)
			}
		}
	case len(now) >= 2:
		out = append(out, t.pinch(now)...)
	}

	remaining := down
	for _, p := range sortedTouches(t.prev) {
		if _, ok := now[p.ID]; ok {
			continue
		}
		remaining--
		out = append(out, t.gesture.FingerUp(remaining)...)
	}

	t.prev = now
	return out
}

func (t *Touches) pinch(now map[int]Touch) []Action {
	fingers := sortedTouches(now)
	a, b := fingers[0], fingers[1]
	pa, okA := t.prev[a.ID]
	pb, okB := t.prev[b.ID]
	if !okA || !okB {
		return nil
	}
	before := math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
	after := math.Hypot(a.X-b.X, a.Y-b.Y)
	if before < 1 || after < 1 {
		return nil
	}
	return t.gesture.Pinch(after/before, (a.X+b.X)/2, (a.Y+b.Y)/2)
}

func sortedTouches(m map[int]Touch) []Touch {
	out := make([]Touch, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
