package engine

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
	"github.com/lixenwraith/bouncer/vmath"
)

// TickReport summarizes one advance of the element set
type TickReport struct {
	Bounced int // elements with at least one reflected axis
	Blocked int // elements stopped by an obstacle
}

// ElementRegistry is the live set of free-roam elements
// Elements accumulate for the life of the session; there is no removal
type ElementRegistry struct {
	elements    []core.Element
	diameter    float64
	rng         *rand.Rand
	spiralCount int
}

// NewElementRegistry creates an empty registry
// rng drives random spawn directions and colors; nil seeds from a fixed source
func NewElementRegistry(diameter float64, rng *rand.Rand) *ElementRegistry {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ElementRegistry{
		diameter: diameter,
		rng:      rng,
	}
}

// Diameter returns the shared element diameter
func (r *ElementRegistry) Diameter() float64 {
	return r.diameter
}

// Len returns the element count
func (r *ElementRegistry) Len() int {
	return len(r.elements)
}

// Elements returns a copy of the live set in spawn order
func (r *ElementRegistry) Elements() []core.Element {
	out := make([]core.Element, len(r.elements))
	copy(out, r.elements)
	return out
}

// Spawn appends an element
func (r *ElementRegistry) Spawn(pos, dir r2.Point, color core.Color) core.Element {
	e := core.Element{Pos: pos, Dir: dir, Color: color}
	r.elements = append(r.elements, e)
	return e
}

// SpawnRandom appends an element with a random direction of SpawnSpeed magnitude and random color
func (r *ElementRegistry) SpawnRandom(pos r2.Point) core.Element {
	dir := r2.Point{X: r.rng.Float64()*2 - 1, Y: r.rng.Float64()*2 - 1}
	dir = vmath.Normalize2D(dir)
	if dir == (r2.Point{}) {
		dir = r2.Point{X: 1}
	}
	return r.Spawn(pos, dir.Mul(parameter.SpawnSpeed), r.randomColor())
}

// SpawnCircularBurst appends count elements at center, direction angles 2πi/count, unit magnitude
func (r *ElementRegistry) SpawnCircularBurst(center r2.Point, count int) []core.Element {
	if count <= 0 {
		return nil
	}
	burst := make([]core.Element, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		burst = append(burst, r.Spawn(center, vmath.FromAngle(angle, parameter.BurstSpeed), r.randomColor()))
	}
	return burst
}

// SpawnSpiral appends one element at center; successive calls rotate the direction by SpiralAngleStep and step
// through the palette
func (r *ElementRegistry) SpawnSpiral(center r2.Point) core.Element {
	angle := math.Mod(float64(r.spiralCount)*parameter.SpiralAngleStep, 2*math.Pi)
	color := core.Color(r.spiralCount % int(core.PaletteSize))
	r.spiralCount++
	return r.Spawn(center, vmath.FromAngle(angle, parameter.SpiralSpeed), color)
}

// TickAll advances every element, replacing the set with a freshly built slice
// gravity nil disables attraction
func (r *ElementRegistry) TickAll(
	vp core.Viewport,
	obstacles []core.Obstacle,
	focal r2.Point,
	gravity *physics.GravityProfile,
) TickReport {
	var report TickReport
	next := make([]core.Element, len(r.elements))
	for i, e := range r.elements {
		m := physics.Advance(e, r.diameter, vp, obstacles, focal, gravity)
		next[i] = m.Element
		if m.Bounced() {
			report.Bounced++
		}
		if m.Blocked.Any() {
			report.Blocked++
		}
	}
	r.elements = next
	return report
}

// RecolorAll forces every element to color, position and direction untouched
func (r *ElementRegistry) RecolorAll(color core.Color) {
	next := make([]core.Element, len(r.elements))
	for i, e := range r.elements {
		e.Color = color
		next[i] = e
	}
	r.elements = next
}

// Clamp pulls every element inside vp, direction and color untouched
func (r *ElementRegistry) Clamp(vp core.Viewport) {
	limit := r2.Point{X: vp.Width - r.diameter, Y: vp.Height - r.diameter}
	next := make([]core.Element, len(r.elements))
	for i, e := range r.elements {
		e.Pos = vmath.ClampPoint(e.Pos, r2.Point{}, limit)
		next[i] = e
	}
	r.elements = next
}

func (r *ElementRegistry) randomColor() core.Color {
	return core.Color(r.rng.Intn(int(core.PaletteSize)))
}
