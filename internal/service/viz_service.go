package service

import (
	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
)

// VizService assembles the plain data behind the distribution, scatter and
// parallel-coordinates charts; rendering happens entirely in the frontend
type VizService struct {
	repo *repository.StudentRepository
}

// NewVizService creates a new visualization service
func NewVizService(repo *repository.StudentRepository) *VizService {
	return &VizService{repo: repo}
}

// Distribution returns the record count per dominant emotion
func (s *VizService) Distribution(filter models.RecordFilter) ([]models.EmotionCount, error) {
	return s.repo.EmotionCounts(filter)
}

// Scatter returns attendance × performance pairs labeled by emotion
func (s *VizService) Scatter(filter models.RecordFilter) ([]models.ScatterPoint, error) {
	records, _, err := s.repo.List(models.RecordFilter{Emotion: filter.Emotion, Region: filter.Region})
	if err != nil {
		return nil, err
	}

	points := make([]models.ScatterPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, models.ScatterPoint{
			ID:          rec.ID,
			Region:      rec.Region,
			Emotion:     rec.DominantEmotion,
			Attendance:  rec.Attendance,
			Performance: rec.Performance,
		})
	}
	return points, nil
}

// Parallel returns the parallel-coordinates dimensions: the per-emotion
// scores followed by attendance and performance, colored by performance.
// Score dimensions absent from the dataset are skipped.
func (s *VizService) Parallel(filter models.RecordFilter) (models.ParallelCoords, error) {
	records, _, err := s.repo.List(models.RecordFilter{Emotion: filter.Emotion, Region: filter.Region})
	if err != nil {
		return models.ParallelCoords{}, err
	}

	coords := models.ParallelCoords{ColorBy: "desempenho"}

	for _, emotion := range models.Emotions {
		values := make([]float64, 0, len(records))
		present := false
		for _, rec := range records {
			v, ok := rec.Scores[emotion]
			if ok {
				present = true
			}
			values = append(values, v)
		}
		if present {
			coords.Dimensions = append(coords.Dimensions, models.ParallelDimension{
				Name:   "score_" + emotion,
				Values: values,
			})
		}
	}

	attendance := make([]float64, len(records))
	performance := make([]float64, len(records))
	for i, rec := range records {
		attendance[i] = rec.Attendance
		performance[i] = rec.Performance
	}
	coords.Dimensions = append(coords.Dimensions,
		models.ParallelDimension{Name: "frequencia", Values: attendance},
		models.ParallelDimension{Name: "desempenho", Values: performance},
	)

	return coords, nil
}
