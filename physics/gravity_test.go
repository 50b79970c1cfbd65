package physics

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
)

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestApplyGravity_PullsTowardFocal(t *testing.T) {
	center := r2.Point{X: 100, Y: 100}
	focal := r2.Point{X: 200, Y: 100}

	got := ApplyGravity(r2.Point{}, center, focal, &DefaultGravity)

	// G * 100 / 100^1.3
	want := DefaultGravity.Constant * 100 / math.Pow(100, DefaultGravity.Falloff)
	if !approxEqual(got.X, want) || got.Y != 0 {
		t.Errorf("ApplyGravity() = %v, want (%v, 0)", got, want)
	}
}

func TestApplyGravity_DampsVelocity(t *testing.T) {
	center := r2.Point{X: 50, Y: 50}
	dir := r2.Point{X: 4, Y: -2}

	// Focal on the center: no pull, only damping
	got := ApplyGravity(dir, center, center, &DefaultGravity)
	damp := 1 - DefaultGravity.Constant*DefaultGravity.Constant
	if !approxEqual(got.X, 4*damp) || !approxEqual(got.Y, -2*damp) {
		t.Errorf("ApplyGravity() = %v, want %v", got, dir.Mul(damp))
	}
}

func TestApplyGravity_NearZeroDistanceBounded(t *testing.T) {
	center := r2.Point{X: 50, Y: 50}
	focal := r2.Point{X: 50 + 1e-12, Y: 50}

	got := ApplyGravity(r2.Point{}, center, focal, &DefaultGravity)
	if math.IsInf(got.X, 0) || math.IsNaN(got.X) {
		t.Fatalf("unbounded force: %v", got)
	}
	// Distance floored at MinDistance bounds the pull by G * |Δ|
	if got.Norm() > DefaultGravity.Constant {
		t.Errorf("force %v exceeds bound", got.Norm())
	}
}

func TestAdvance_GravityAppliedAfterReflect(t *testing.T) {
	edge := testViewport.Width - testDiameter
	e := core.Element{Pos: r2.Point{X: edge, Y: 40}, Dir: r2.Point{X: 2, Y: 0}}
	focal := r2.Point{X: edge + testDiameter/2, Y: 40 + testDiameter/2}

	m := Advance(e, testDiameter, testViewport, nil, focal, &DefaultGravity)
	damp := 1 - DefaultGravity.Constant*DefaultGravity.Constant
	if !m.BounceX {
		t.Fatal("expected X bounce")
	}
	if !approxEqual(m.Element.Dir.X, -2*damp) {
		t.Errorf("Dir.X = %v, want %v", m.Element.Dir.X, -2*damp)
	}
}

func TestAdvance_SpeedStaysBoundedUnderGravity(t *testing.T) {
	vp := core.Viewport{Width: 1000, Height: 1000}
	focal := r2.Point{X: 500, Y: 500}
	e := core.Element{Pos: r2.Point{X: 100, Y: 900}, Dir: r2.Point{X: 1, Y: 0}}

	for i := 0; i < 10000; i++ {
		e = Advance(e, testDiameter, vp, nil, focal, &DefaultGravity).Element
	}
	// Terminal speed where damping balances the bounded pull: G / G² = 1 / G
	if e.Dir.Norm() > 1/DefaultGravity.Constant+1 {
		t.Errorf("speed %v grew past damping bound", e.Dir.Norm())
	}
}
