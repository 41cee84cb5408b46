package gradient

import "math"

// Radial is a radial gradient centered at (CX, CY) with the given Radius
// (spec §4.9).
type Radial struct {
	CX, CY, Radius float64
	Stops          []ColorStop

	stops []ColorStop
}

// NewRadial builds a Radial gradient, pre-sorting its color stops.
func NewRadial(cx, cy, radius float64, stops []ColorStop) *Radial {
	return &Radial{
		CX: cx, CY: cy, Radius: radius, Stops: stops,
		stops: sortedStops(stops),
	}
}

// At implements Gradient. t = |point-center| / radius, clamped to [0,1]
// (spec §4.9). A zero radius degenerates to the first stop's color
// everywhere.
func (rad *Radial) At(x, y float64) (r, g, b, a byte) {
	if rad.Radius == 0 {
		return sampleStops(rad.stops, 0)
	}
	dx, dy := x-rad.CX, y-rad.CY
	t := math.Hypot(dx, dy) / rad.Radius
	return sampleStops(rad.stops, clampUnit(t))
}
