package service

import (
	"log"

	"github.com/felippedeabreu/emocaoalunov3/internal/boundary"
	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
	"github.com/felippedeabreu/emocaoalunov3/internal/spatial"
)

// MapService produces the region-filtered map view. Boundary mode uses
// polygon containment against the loaded region outline; when the outline is
// unavailable or unusable it degrades to the bounding-box filter without
// surfacing an error.
type MapService struct {
	repo     *repository.StudentRepository
	boundary *boundary.Boundary // nil when no outline was loaded
	bounds   spatial.Bounds
	center   spatial.Point
}

// NewMapService creates a new map service
func NewMapService(repo *repository.StudentRepository, b *boundary.Boundary, bounds spatial.Bounds, center spatial.Point) *MapService {
	return &MapService{repo: repo, boundary: b, bounds: bounds, center: center}
}

// MapView returns the in-region records with the view center, the removed
// count and, in boundary mode, the region outline for the overlay
func (s *MapService) MapView(filter models.MapFilter) (models.MapView, error) {
	records, _, err := s.repo.List(models.RecordFilter{Emotion: filter.Emotion, Region: filter.Region})
	if err != nil {
		return models.MapView{}, err
	}

	strategy, view := s.selectStrategy(filter.Mode)

	points := recordPoints(records)
	result := spatial.Filter(points, strategy)

	kept := make([]models.StudentRecord, 0, len(result.Kept))
	keptPoints := make([]spatial.Point, 0, len(result.Kept))
	for _, idx := range result.Kept {
		kept = append(kept, records[idx])
		keptPoints = append(keptPoints, points[idx])
	}

	view.Records = kept
	view.Removed = result.Removed
	view.Center = spatial.Center(keptPoints, s.center)
	return view, nil
}

// BoundaryDocument returns the raw region outline document, or false when
// no boundary was loaded
func (s *MapService) BoundaryDocument() ([]byte, bool) {
	if s.boundary == nil {
		return nil, false
	}
	return s.boundary.Raw, true
}

// selectStrategy resolves the requested mode to a filter strategy and the
// matching view skeleton (mode applied, degraded flag, overlay document)
func (s *MapService) selectStrategy(mode string) (spatial.Strategy, models.MapView) {
	fallback := models.MapView{Mode: models.MapModeBounds}

	if mode != models.MapModeBoundary {
		return spatial.BoundsStrategy{Bounds: s.bounds}, fallback
	}

	if s.boundary == nil {
		fallback.Degraded = true
		return spatial.BoundsStrategy{Bounds: s.bounds}, fallback
	}

	strategy, err := spatial.NewPolygonStrategy(s.boundary.Region)
	if err != nil {
		log.Printf("boundary mode unavailable, falling back to bounds: %v", err)
		fallback.Degraded = true
		return spatial.BoundsStrategy{Bounds: s.bounds}, fallback
	}

	return strategy, models.MapView{Mode: models.MapModeBoundary, Boundary: s.boundary.Raw}
}
