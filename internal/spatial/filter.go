package spatial

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Strategy classifies a point as inside or outside the target region
type Strategy interface {
	Contains(p Point) bool
}

// BoundsStrategy retains points inside an axis-aligned bounding box,
// edges inclusive. It is the degraded mode when polygon containment is
// unavailable.
type BoundsStrategy struct {
	Bounds Bounds
}

// Contains implements Strategy
func (s BoundsStrategy) Contains(p Point) bool {
	return s.Bounds.Contains(p)
}

// PolygonStrategy retains points inside the union of the region polygons.
// The test is boundary-inclusive: a point exactly on a polygon edge counts
// as inside.
type PolygonStrategy struct {
	region orb.MultiPolygon
}

// NewPolygonStrategy validates the region polygons and builds the strategy.
// It fails on a malformed boundary (a polygon with a degenerate outer ring),
// letting the caller fall back to BoundsStrategy. A region with zero
// polygons is valid and matches nothing.
func NewPolygonStrategy(region orb.MultiPolygon) (*PolygonStrategy, error) {
	for i, poly := range region {
		if len(poly) == 0 || len(poly[0]) < 4 {
			return nil, fmt.Errorf("polygon %d: outer ring must be a closed ring with at least 4 vertices", i)
		}
	}
	return &PolygonStrategy{region: region}, nil
}

// Contains implements Strategy
func (s *PolygonStrategy) Contains(p Point) bool {
	return planar.MultiPolygonContains(s.region, orb.Point{p.Lon, p.Lat})
}

// FilterResult holds the outcome of a region filter pass
type FilterResult struct {
	// Kept holds the indices of retained points, in input order
	Kept []int

	// Removed counts the excluded points, including those with missing
	// or non-finite coordinates
	Removed int
}

// Filter classifies each point against the strategy and returns the indices
// of the retained points plus the count of removed ones. Points with missing
// or non-finite coordinates are always removed. Order is preserved and
// len(Kept) + Removed == len(points) for any input.
func Filter(points []Point, strategy Strategy) FilterResult {
	result := FilterResult{Kept: make([]int, 0, len(points))}
	for i, p := range points {
		if !p.Valid() || !strategy.Contains(p) {
			result.Removed++
			continue
		}
		result.Kept = append(result.Kept, i)
	}
	return result
}
