package engine

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
)

var storeViewport = core.Viewport{Width: 200, Height: 100}

func TestObstacleStore_Add(t *testing.T) {
	tests := []struct {
		name     string
		pos      r2.Point
		wantIdx  int
		wantSize r2.Point
	}{
		{"default size", r2.Point{X: 10, Y: 20}, 0, r2.Point{X: 100, Y: 10}},
		{"truncated at right edge", r2.Point{X: 150, Y: 20}, 0, r2.Point{X: 50, Y: 10}},
		{"last row above bottom margin", r2.Point{X: 10, Y: 90}, 0, r2.Point{X: 100, Y: 10}},
		{"rejected near bottom edge", r2.Point{X: 10, Y: 95}, -1, r2.Point{}},
		{"rejected outside", r2.Point{X: -5, Y: 20}, -1, r2.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewObstacleStore()
			idx := s.Add(tt.pos, storeViewport)
			if idx != tt.wantIdx {
				t.Fatalf("Add index = %d, want %d", idx, tt.wantIdx)
			}
			if idx < 0 {
				if s.Len() != 0 {
					t.Errorf("rejected add stored an obstacle")
				}
				return
			}
			o, _ := s.Get(idx)
			if o.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", o.Size, tt.wantSize)
			}
			if !storeViewport.Fits(o) {
				t.Errorf("obstacle %+v exceeds viewport", o)
			}
		})
	}
}

func TestObstacleStore_ResizeClampsToMinimum(t *testing.T) {
	s := NewObstacleStore()
	i := s.Add(r2.Point{X: 150, Y: 20}, storeViewport)

	s.Resize(i, AxisWidth, -100, storeViewport)
	o, _ := s.Get(i)
	if o.Size.X != 10 {
		t.Fatalf("width = %v, want 10", o.Size.X)
	}

	// Shrinking at the minimum is a no-op
	s.Resize(i, AxisWidth, -10, storeViewport)
	again, _ := s.Get(i)
	if again != o {
		t.Errorf("resize at minimum changed obstacle: %+v -> %+v", o, again)
	}
}

func TestObstacleStore_ResizeClampsToViewport(t *testing.T) {
	s := NewObstacleStore()
	i := s.Add(r2.Point{X: 10, Y: 20}, storeViewport)

	s.Resize(i, AxisHeight, 500, storeViewport)
	s.Resize(i, AxisWidth, 500, storeViewport)

	o, _ := s.Get(i)
	want := r2.Point{X: 190, Y: 80}
	if o.Size != want {
		t.Errorf("Size = %v, want %v", o.Size, want)
	}
}

func TestObstacleStore_Rotate(t *testing.T) {
	s := NewObstacleStore()
	i := s.Add(r2.Point{X: 10, Y: 20}, storeViewport)

	s.Rotate(i, storeViewport)

	o, _ := s.Get(i)
	want := r2.Point{X: 10, Y: 80}
	if o.Size != want {
		t.Errorf("rotated Size = %v, want %v", o.Size, want)
	}
}

func TestObstacleStore_StaleIndex(t *testing.T) {
	s := NewObstacleStore()
	s.Add(r2.Point{X: 10, Y: 20}, storeViewport)
	before := s.Snapshot()

	s.Resize(5, AxisWidth, 10, storeViewport)
	s.Rotate(-1, storeViewport)
	s.Remove(3)

	after := s.Snapshot()
	if len(after) != 1 || after[0] != before[0] {
		t.Errorf("stale index mutated store: %v -> %v", before, after)
	}
	if _, ok := s.Get(1); ok {
		t.Error("Get past end reported ok")
	}
}

func TestObstacleStore_RemoveShifts(t *testing.T) {
	s := NewObstacleStore()
	s.Add(r2.Point{X: 10, Y: 10}, storeViewport)
	s.Add(r2.Point{X: 20, Y: 30}, storeViewport)
	s.Add(r2.Point{X: 30, Y: 50}, storeViewport)
	snap := s.Snapshot()

	s.Remove(1)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	o, _ := s.Get(1)
	if o.Pos != (r2.Point{X: 30, Y: 50}) {
		t.Errorf("index 1 Pos = %v, want (30, 50)", o.Pos)
	}
	if snap[1].Pos != (r2.Point{X: 20, Y: 30}) {
		t.Error("earlier snapshot was mutated by Remove")
	}
}

func TestObstacleStore_Refit(t *testing.T) {
	s := NewObstacleStore()
	s.Add(r2.Point{X: 150, Y: 20}, storeViewport)
	s.Add(r2.Point{X: 10, Y: 80}, storeViewport)

	small := core.Viewport{Width: 100, Height: 50}
	s.Refit(small)

	for i, o := range s.All() {
		if !small.Fits(o) {
			t.Errorf("obstacle %d %+v exceeds shrunk viewport", i, o)
		}
		if o.Size.X < 10 || o.Size.Y < 10 {
			t.Errorf("obstacle %d below minimum size: %v", i, o.Size)
		}
	}
	o, _ := s.Get(0)
	if o.Pos.X != 90 {
		t.Errorf("anchor X = %v, want 90", o.Pos.X)
	}
}
