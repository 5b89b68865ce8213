package service

import (
	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
	"github.com/felippedeabreu/emocaoalunov3/internal/spatial"
	"github.com/felippedeabreu/emocaoalunov3/internal/stats"
)

// StatsService computes descriptive statistics over the dataset
type StatsService struct {
	repo *repository.StudentRepository
}

// NewStatsService creates a new stats service
func NewStatsService(repo *repository.StudentRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Describe returns the descriptive summary of every numeric column, keyed by
// the dataset's column names
func (s *StatsService) Describe(filter models.RecordFilter) (map[string]stats.Summary, error) {
	records, _, err := s.repo.List(models.RecordFilter{Emotion: filter.Emotion, Region: filter.Region})
	if err != nil {
		return nil, err
	}

	attendance := make([]float64, 0, len(records))
	performance := make([]float64, 0, len(records))
	scoreCols := make(map[string][]float64)
	for _, rec := range records {
		attendance = append(attendance, rec.Attendance)
		performance = append(performance, rec.Performance)
		for name, v := range rec.Scores {
			scoreCols[name] = append(scoreCols[name], v)
		}
	}

	summary := map[string]stats.Summary{
		"frequencia": stats.Describe(attendance),
		"desempenho": stats.Describe(performance),
	}
	for name, values := range scoreCols {
		summary["score_"+name] = stats.Describe(values)
	}
	return summary, nil
}

// RegionDispersion returns, per region label, the centroid and radius of
// gyration of its geocoded records. Records without valid coordinates are
// skipped.
func (s *StatsService) RegionDispersion() ([]models.RegionDispersion, error) {
	regions, err := s.repo.Regions()
	if err != nil {
		return nil, err
	}

	var result []models.RegionDispersion
	for _, region := range regions {
		records, _, err := s.repo.List(models.RecordFilter{Region: region})
		if err != nil {
			return nil, err
		}

		var points []spatial.Point
		for _, p := range recordPoints(records) {
			if p.Valid() {
				points = append(points, p)
			}
		}
		if len(points) == 0 {
			continue
		}

		result = append(result, models.RegionDispersion{
			Region:       region,
			Count:        len(points),
			Center:       spatial.Centroid(points),
			RadiusMeters: spatial.RadiusOfGyration(points),
		})
	}
	return result, nil
}
