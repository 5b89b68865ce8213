package spatial

import (
	"math"
	"testing"
)

func TestCentroid(t *testing.T) {
	points := []Point{
		{Lat: -19.0, Lon: -40.0},
		{Lat: -20.0, Lon: -41.0},
	}
	c := Centroid(points)
	if math.Abs(c.Lat-(-19.5)) > 1e-9 || math.Abs(c.Lon-(-40.5)) > 1e-9 {
		t.Fatalf("unexpected centroid: %+v", c)
	}
}

func TestCenterFallbackOnEmpty(t *testing.T) {
	c := Center(nil, EspiritoSantoCenter)
	if c != EspiritoSantoCenter {
		t.Fatalf("expected nominal region center, got %+v", c)
	}
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		t.Fatal("center must never be NaN")
	}
}

func TestPointValid(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{Lat: -19.5, Lon: -40.5}, true},
		{Point{Lat: math.NaN(), Lon: -40.5}, false},
		{Point{Lat: -19.5, Lon: math.NaN()}, false},
		{Point{Lat: math.Inf(1), Lon: -40.5}, false},
		{Point{}, true},
	}
	for i, tc := range cases {
		if got := tc.p.Valid(); got != tc.want {
			t.Fatalf("case %d: Valid(%+v) = %v, want %v", i, tc.p, got, tc.want)
		}
	}
}

func TestRadiusOfGyration(t *testing.T) {
	// All points at the same location: zero dispersion.
	same := []Point{{Lat: -19.5, Lon: -40.5}, {Lat: -19.5, Lon: -40.5}}
	if r := RadiusOfGyration(same); r != 0 {
		t.Fatalf("expected zero radius for identical points, got %v", r)
	}

	spread := []Point{{Lat: -19.0, Lon: -40.5}, {Lat: -20.0, Lon: -40.5}}
	if r := RadiusOfGyration(spread); r < 50000 || r > 60000 {
		// Half a degree of latitude is roughly 55.6 km.
		t.Fatalf("unexpected radius for half-degree spread: %v", r)
	}
}
