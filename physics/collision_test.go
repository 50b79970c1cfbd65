package physics

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
)

const testDiameter = 22.0

func obstacle(x, y, w, h float64) core.Obstacle {
	return core.Obstacle{Pos: r2.Point{X: x, Y: y}, Size: r2.Point{X: w, Y: h}}
}

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name      string
		prev      r2.Point
		next      r2.Point
		obstacles []core.Obstacle
		want      Blocked
	}{
		{
			name:      "no obstacles",
			prev:      r2.Point{X: 10, Y: 10},
			next:      r2.Point{X: 12, Y: 12},
			obstacles: nil,
			want:      Blocked{},
		},
		{
			name:      "clear of obstacle",
			prev:      r2.Point{X: 10, Y: 10},
			next:      r2.Point{X: 12, Y: 12},
			obstacles: []core.Obstacle{obstacle(100, 100, 50, 10)},
			want:      Blocked{},
		},
		{
			// Already aligned on X before the tick: attributed to vertical motion
			name:      "diagonal into thin wide obstacle",
			prev:      r2.Point{X: 100, Y: 30},
			next:      r2.Point{X: 103, Y: 40},
			obstacles: []core.Obstacle{obstacle(50, 60, 200, 10)},
			want:      Blocked{Y: true},
		},
		{
			name:      "horizontal into tall obstacle",
			prev:      r2.Point{X: 70, Y: 20},
			next:      r2.Point{X: 80, Y: 21},
			obstacles: []core.Obstacle{obstacle(100, 0, 10, 100)},
			want:      Blocked{X: true},
		},
		{
			name:      "touching edge is not overlap",
			prev:      r2.Point{X: 70, Y: 20},
			next:      r2.Point{X: 78, Y: 20},
			obstacles: []core.Obstacle{obstacle(100, 0, 10, 100)},
			want:      Blocked{},
		},
		{
			// Corner clip from above-left: previous box not X-aligned, reported horizontal
			name:      "corner clip resolves horizontal",
			prev:      r2.Point{X: 25, Y: 35},
			next:      r2.Point{X: 30, Y: 40},
			obstacles: []core.Obstacle{obstacle(50, 60, 200, 10)},
			want:      Blocked{X: true},
		},
		{
			name: "first overlapping obstacle wins",
			prev: r2.Point{X: 70, Y: 20},
			next: r2.Point{X: 80, Y: 21},
			obstacles: []core.Obstacle{
				obstacle(0, 500, 10, 10),
				obstacle(100, 0, 10, 100),
				obstacle(60, 30, 100, 10),
			},
			want: Blocked{X: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCollision(tt.prev, tt.next, testDiameter, tt.obstacles)
			if got != tt.want {
				t.Errorf("DetectCollision() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlockedAny(t *testing.T) {
	if (Blocked{}).Any() {
		t.Error("empty Blocked reports Any")
	}
	if !(Blocked{Y: true}).Any() {
		t.Error("Blocked{Y} should report Any")
	}
}
