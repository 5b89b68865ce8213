// Package dataset reads the student-emotion CSV into memory. The loader is
// tolerant of the quirks the simulated exports carry: locale decimal commas,
// stray text around numbers, and missing coordinate cells.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/felippedeabreu/emocaoalunov3/internal/models"
)

// numberPattern extracts the first decimal number from a dirty cell,
// e.g. "aprox. -19.45" -> "-19.45"
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Load reads the dataset CSV at path. Latitude/longitude columns are detected
// by header name; unparseable coordinate cells become nil rather than failing
// the whole load.
func Load(path string) ([]models.StudentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("dataset is empty")
	}

	cols := mapColumns(rows[0])
	if cols.lat == -1 || cols.lon == -1 {
		return nil, errors.New("dataset: latitude/longitude columns not found")
	}

	records := make([]models.StudentRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.StudentRecord{
			ID:              cell(row, cols.id),
			Region:          cell(row, cols.region),
			DominantEmotion: cell(row, cols.emotion),
			Latitude:        parseCoordinate(cell(row, cols.lat)),
			Longitude:       parseCoordinate(cell(row, cols.lon)),
		}
		if v, ok := parseNumber(cell(row, cols.attendance)); ok {
			rec.Attendance = v
		}
		if v, ok := parseNumber(cell(row, cols.performance)); ok {
			rec.Performance = v
		}
		for name, idx := range cols.scores {
			if v, ok := parseNumber(cell(row, idx)); ok {
				if rec.Scores == nil {
					rec.Scores = make(map[string]float64, len(cols.scores))
				}
				rec.Scores[name] = v
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

type columnIndex struct {
	id, region, emotion, attendance, performance, lat, lon int
	scores                                                 map[string]int
}

func mapColumns(header []string) columnIndex {
	cols := columnIndex{
		id: -1, region: -1, emotion: -1, attendance: -1, performance: -1,
		lat: -1, lon: -1,
		scores: make(map[string]int),
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch name {
		case "id_aluno", "id":
			cols.id = i
		case "regiao", "region":
			cols.region = i
		case "dominante_emocao", "emocao":
			cols.emotion = i
		case "frequencia", "freq":
			cols.attendance = i
		case "desempenho":
			cols.performance = i
		case "lat", "latitude":
			cols.lat = i
		case "lon", "lng", "long", "longitude":
			cols.lon = i
		default:
			if rest, ok := strings.CutPrefix(name, "score_"); ok && rest != "" {
				cols.scores[rest] = i
			}
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCoordinate normalizes a coordinate cell ("-19,45" -> -19.45) and
// returns nil when no number can be extracted
func parseCoordinate(s string) *float64 {
	v, ok := parseNumber(s)
	if !ok {
		return nil
	}
	return &v
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
