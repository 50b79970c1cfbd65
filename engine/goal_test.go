package engine

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
)

func TestGoal_Reposition(t *testing.T) {
	g := NewGoal(core.Viewport{Width: 1000, Height: 600})
	want := r2.Point{X: 900, Y: 300}
	if g.Center != want || g.Radius != parameter.GoalDefaultRadius {
		t.Fatalf("goal = %+v, want center %v radius %v", g, want, parameter.GoalDefaultRadius)
	}

	g.SetRadius(50)
	g.Reposition(core.Viewport{Width: 400, Height: 200})
	if g.Center != (r2.Point{X: 350, Y: 100}) {
		t.Errorf("Center after resize = %v, want (350, 100)", g.Center)
	}
}

func TestGoal_RadiusClamp(t *testing.T) {
	g := NewGoal(core.Viewport{Width: 1000, Height: 600})

	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"grow", 10, 110},
		{"shrink", -50, 60},
		{"shrink past minimum", -200, parameter.GoalMinRadius},
		{"shrink at minimum", -10, parameter.GoalMinRadius},
	}
	for _, tt := range tests {
		g.Grow(tt.delta)
		if g.Radius != tt.want {
			t.Errorf("%s: Radius = %v, want %v", tt.name, g.Radius, tt.want)
		}
	}
}

func TestGoal_ContainsElementCenter(t *testing.T) {
	g := &Goal{Center: r2.Point{X: 100, Y: 100}, Radius: 20}
	d := 22.0

	tests := []struct {
		name string
		pos  r2.Point
		want bool
	}{
		{"centered", r2.Point{X: 89, Y: 89}, true},
		{"inside", r2.Point{X: 100, Y: 89}, true},
		{"on the edge", r2.Point{X: 109, Y: 89}, false},
		{"outside", r2.Point{X: 0, Y: 0}, false},
	}
	for _, tt := range tests {
		if got := g.ContainsElementCenter(tt.pos, d); got != tt.want {
			t.Errorf("%s: ContainsElementCenter(%v) = %v, want %v", tt.name, tt.pos, got, tt.want)
		}
	}
}
