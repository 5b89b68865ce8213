package spatial

import (
	"math"
)

// Point represents a 2D point with latitude and longitude in decimal degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether both coordinates are finite numbers
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}

// Centroid calculates the geographic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// Center returns the centroid of the points, or the fallback point when the
// set is empty. Used to center a map view without ever producing NaN.
func Center(points []Point, fallback Point) Point {
	if len(points) == 0 {
		return fallback
	}
	return Centroid(points)
}

// RadiusOfGyration calculates the radius of gyration for a set of points
// This measures the spatial dispersion around the centroid, in meters
func RadiusOfGyration(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}

	center := Centroid(points)

	var sumSquaredDist float64
	for _, p := range points {
		dist := HaversineDistance(center.Lat, center.Lon, p.Lat, p.Lon)
		sumSquaredDist += dist * dist
	}

	return math.Sqrt(sumSquaredDist / float64(len(points)))
}
