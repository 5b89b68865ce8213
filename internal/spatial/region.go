package spatial

// Bounds is an axis-aligned lat/lon rectangle in decimal degrees
type Bounds struct {
	LatMin float64 `json:"latMin"`
	LatMax float64 `json:"latMax"`
	LonMin float64 `json:"lonMin"`
	LonMax float64 `json:"lonMax"`
}

// Contains reports whether the point lies within the bounds.
// Both edges are inclusive: a point exactly on the box edge is inside.
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.LatMin && p.Lat <= b.LatMax &&
		p.Lon >= b.LonMin && p.Lon <= b.LonMax
}

// Geographic constants for Espírito Santo, the dashboard's target region
var (
	EspiritoSantoCenter = Point{Lat: -19.5, Lon: -40.5}

	EspiritoSantoBounds = Bounds{
		LatMin: -21.4, LatMax: -18.0,
		LonMin: -41.9, LonMax: -39.0,
	}
)
