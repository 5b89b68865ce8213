package service

import (
	"fmt"
	"math"
	"sync"

	"github.com/felippedeabreu/emocaoalunov3/internal/dataset"
	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
	"github.com/felippedeabreu/emocaoalunov3/internal/spatial"
)

// DatasetService loads the CSV dataset, runs the coordinate sanitizer over
// it and stores the corrected batch. The last correction report is kept for
// the dashboard's info message.
type DatasetService struct {
	repo *repository.StudentRepository
	path string
	opts spatial.SanitizeOptions

	mu         sync.RWMutex
	lastReport spatial.CorrectionReport
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.StudentRepository, path string, opts spatial.SanitizeOptions) *DatasetService {
	return &DatasetService{repo: repo, path: path, opts: opts}
}

// Reload reads the dataset from disk, sanitizes the coordinates and replaces
// the stored records. It returns the correction report and the record count.
func (s *DatasetService) Reload() (spatial.CorrectionReport, int, error) {
	records, err := dataset.Load(s.path)
	if err != nil {
		return spatial.CorrectionReport{}, 0, fmt.Errorf("failed to load dataset: %w", err)
	}

	points := recordPoints(records)
	sanitized, report := spatial.Sanitize(points, s.opts)
	applyPoints(records, sanitized)

	if err := s.repo.ReplaceAll(records); err != nil {
		return spatial.CorrectionReport{}, 0, fmt.Errorf("failed to store dataset: %w", err)
	}

	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	return report, len(records), nil
}

// LastReport returns the correction report of the most recent reload
func (s *DatasetService) LastReport() spatial.CorrectionReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport
}

// recordPoints converts records to spatial points, mapping missing
// coordinates to NaN so the core treats them as non-finite
func recordPoints(records []models.StudentRecord) []spatial.Point {
	points := make([]spatial.Point, len(records))
	for i, rec := range records {
		points[i] = spatial.Point{Lat: math.NaN(), Lon: math.NaN()}
		if rec.Latitude != nil {
			points[i].Lat = *rec.Latitude
		}
		if rec.Longitude != nil {
			points[i].Lon = *rec.Longitude
		}
	}
	return points
}

// applyPoints writes sanitized coordinates back onto the records; NaN
// coordinates stay absent
func applyPoints(records []models.StudentRecord, points []spatial.Point) {
	for i := range records {
		if math.IsNaN(points[i].Lat) {
			records[i].Latitude = nil
		} else {
			v := points[i].Lat
			records[i].Latitude = &v
		}
		if math.IsNaN(points[i].Lon) {
			records[i].Longitude = nil
		} else {
			v := points[i].Lon
			records[i].Longitude = &v
		}
	}
}
