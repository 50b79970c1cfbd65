package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/vmath"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearPoint(a, b r2.Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestElementRegistry_CircularBurst(t *testing.T) {
	r := NewElementRegistry(parameter.ElementDiameter, rand.New(rand.NewSource(7)))
	center := r2.Point{X: 50, Y: 60}

	burst := r.SpawnCircularBurst(center, 8)
	if len(burst) != 8 || r.Len() != 8 {
		t.Fatalf("burst len = %d, registry len = %d, want 8", len(burst), r.Len())
	}

	for i, e := range burst {
		if e.Pos != center {
			t.Errorf("element %d Pos = %v, want %v", i, e.Pos, center)
		}
		want := vmath.FromAngle(float64(i)*math.Pi/4, 1)
		if !nearPoint(e.Dir, want) {
			t.Errorf("element %d Dir = %v, want %v", i, e.Dir, want)
		}
		if !near(e.Dir.Norm(), parameter.BurstSpeed) {
			t.Errorf("element %d speed = %v, want %v", i, e.Dir.Norm(), parameter.BurstSpeed)
		}
		if !e.Color.Valid() {
			t.Errorf("element %d has invalid color %d", i, e.Color)
		}
	}
}

func TestElementRegistry_CircularBurstEmpty(t *testing.T) {
	r := NewElementRegistry(parameter.ElementDiameter, nil)
	if got := r.SpawnCircularBurst(r2.Point{}, 0); got != nil {
		t.Errorf("zero-count burst returned %v", got)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestElementRegistry_SpawnRandomSpeed(t *testing.T) {
	r := NewElementRegistry(parameter.ElementDiameter, rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		e := r.SpawnRandom(r2.Point{X: 10, Y: 10})
		if !near(e.Dir.Norm(), parameter.SpawnSpeed) {
			t.Fatalf("spawn %d speed = %v, want %v", i, e.Dir.Norm(), parameter.SpawnSpeed)
		}
	}
}

func TestElementRegistry_Spiral(t *testing.T) {
	r := NewElementRegistry(parameter.ElementDiameter, nil)
	center := r2.Point{X: 100, Y: 100}

	first := r.SpawnSpiral(center)
	second := r.SpawnSpiral(center)

	if !nearPoint(first.Dir, r2.Point{X: parameter.SpiralSpeed}) {
		t.Errorf("first Dir = %v, want (%v, 0)", first.Dir, parameter.SpiralSpeed)
	}
	want := vmath.FromAngle(parameter.SpiralAngleStep, parameter.SpiralSpeed)
	if !nearPoint(second.Dir, want) {
		t.Errorf("second Dir = %v, want %v", second.Dir, want)
	}
	if first.Color != core.ColorBlue || second.Color != core.ColorGreen {
		t.Errorf("spiral colors = %v, %v, want blue, green", first.Color, second.Color)
	}
}

func TestElementRegistry_RecolorAllKeepsMotion(t *testing.T) {
	r := NewElementRegistry(parameter.ElementDiameter, nil)
	r.Spawn(r2.Point{X: 1, Y: 2}, r2.Point{X: 3, Y: 4}, core.ColorRed)
	r.Spawn(r2.Point{X: 5, Y: 6}, r2.Point{X: -1, Y: 0}, core.ColorViolet)
	before := r.Elements()

	r.RecolorAll(core.SyncColor)

	after := r.Elements()
	for i := range after {
		if after[i].Color != core.SyncColor {
			t.Errorf("element %d color = %v, want %v", i, after[i].Color, core.SyncColor)
		}
		if after[i].Pos != before[i].Pos || after[i].Dir != before[i].Dir {
			t.Errorf("element %d motion changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if before[0].Color != core.ColorRed {
		t.Error("Elements() copy was mutated by RecolorAll")
	}
}

func TestElementRegistry_TickAllReport(t *testing.T) {
	vp := core.Viewport{Width: 200, Height: 100}
	r := NewElementRegistry(parameter.ElementDiameter, nil)
	edge := vp.Width - parameter.ElementDiameter

	r.Spawn(r2.Point{X: edge, Y: 40}, r2.Point{X: 2}, core.ColorBlue) // bounces off the right wall
	r.Spawn(r2.Point{X: 50, Y: 40}, r2.Point{X: 1}, core.ColorBlue)   // free
	obstacles := []core.Obstacle{{Pos: r2.Point{X: 100, Y: 30}, Size: r2.Point{X: 10, Y: 40}}}
	r.Spawn(r2.Point{X: 77, Y: 40}, r2.Point{X: 2}, core.ColorBlue) // runs into the obstacle

	report := r.TickAll(vp, obstacles, r2.Point{}, nil)

	if report.Bounced != 2 {
		t.Errorf("Bounced = %d, want 2", report.Bounced)
	}
	if report.Blocked != 1 {
		t.Errorf("Blocked = %d, want 1", report.Blocked)
	}
	els := r.Elements()
	if els[1].Pos.X != 51 {
		t.Errorf("free element X = %v, want 51", els[1].Pos.X)
	}
	if els[2].Pos.X != 77 || els[2].Dir.X != -2 {
		t.Errorf("blocked element = %+v, want X 77 with reflected Dir", els[2])
	}
}

func TestElementRegistry_Clamp(t *testing.T) {
	r := NewElementRegistry(parameter.ElementDiameter, rand.New(rand.NewSource(1)))
	r.Spawn(r2.Point{X: 700, Y: 300}, r2.Point{X: 1, Y: -1}, core.ColorRed)
	r.Spawn(r2.Point{X: 10, Y: 20}, r2.Point{X: 2, Y: 2}, core.ColorBlue)
	before := r.Elements()

	vp := core.Viewport{Width: 300, Height: 200}
	r.Clamp(vp)

	got := r.Elements()
	want := r2.Point{X: vp.Width - parameter.ElementDiameter, Y: vp.Height - parameter.ElementDiameter}
	if got[0].Pos != want {
		t.Errorf("clamped Pos = %v, want %v", got[0].Pos, want)
	}
	if got[1].Pos != before[1].Pos {
		t.Errorf("inside element moved: %v -> %v", before[1].Pos, got[1].Pos)
	}
	for i := range got {
		if got[i].Dir != before[i].Dir || got[i].Color != before[i].Color {
			t.Errorf("element %d motion changed: %+v -> %+v", i, before[i], got[i])
		}
	}
	if before[0].Pos != (r2.Point{X: 700, Y: 300}) {
		t.Error("Clamp mutated an earlier copy")
	}
}
