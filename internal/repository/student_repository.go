package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/felippedeabreu/emocaoalunov3/internal/database"
	"github.com/felippedeabreu/emocaoalunov3/internal/models"
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ReplaceAll atomically replaces the stored dataset with the given records,
// preserving their input order
func (r *StudentRepository) ReplaceAll(records []models.StudentRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM students`); err != nil {
			return fmt.Errorf("failed to clear students: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO students (
				id, region, dominant_emotion, attendance, performance,
				latitude, longitude, scores
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			scores, err := json.Marshal(rec.Scores)
			if err != nil {
				return fmt.Errorf("failed to encode scores for %s: %w", rec.ID, err)
			}
			if _, err := stmt.Exec(
				rec.ID,
				rec.Region,
				rec.DominantEmotion,
				rec.Attendance,
				rec.Performance,
				nullableFloat(rec.Latitude),
				nullableFloat(rec.Longitude),
				string(scores),
			); err != nil {
				return fmt.Errorf("failed to insert student %s: %w", rec.ID, err)
			}
		}

		return nil
	})
}

// List retrieves student records matching the filter, in insertion order.
// A zero PageSize disables pagination.
func (r *StudentRepository) List(filter models.RecordFilter) ([]models.StudentRecord, int64, error) {
	where, args := buildWhere(filter.Emotion, filter.Region)

	var total int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	query := `
		SELECT id, region, dominant_emotion, attendance, performance,
			   latitude, longitude, scores
		FROM students` + where + `
		ORDER BY seq`

	queryArgs := args
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += ` LIMIT ? OFFSET ?`
		queryArgs = append(append([]interface{}{}, args...), filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := r.db.Query(query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var records []models.StudentRecord
	for rows.Next() {
		var rec models.StudentRecord
		var lat, lon sql.NullFloat64
		var scores string
		if err := rows.Scan(
			&rec.ID,
			&rec.Region,
			&rec.DominantEmotion,
			&rec.Attendance,
			&rec.Performance,
			&lat,
			&lon,
			&scores,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		if lat.Valid {
			v := lat.Float64
			rec.Latitude = &v
		}
		if lon.Valid {
			v := lon.Float64
			rec.Longitude = &v
		}
		if scores != "" && scores != "{}" && scores != "null" {
			if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
				return nil, 0, fmt.Errorf("failed to decode scores for %s: %w", rec.ID, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate students: %w", err)
	}

	return records, total, nil
}

// Emotions returns the distinct dominant emotion labels, sorted
func (r *StudentRepository) Emotions() ([]string, error) {
	return r.distinct("dominant_emotion")
}

// Regions returns the distinct region labels, sorted
func (r *StudentRepository) Regions() ([]string, error) {
	return r.distinct("region")
}

// EmotionCounts returns the record count per dominant emotion, largest first
func (r *StudentRepository) EmotionCounts(filter models.RecordFilter) ([]models.EmotionCount, error) {
	where, args := buildWhere(filter.Emotion, filter.Region)

	rows, err := r.db.Query(`
		SELECT dominant_emotion, COUNT(*) AS n
		FROM students`+where+`
		GROUP BY dominant_emotion
		ORDER BY n DESC, dominant_emotion`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count emotions: %w", err)
	}
	defer rows.Close()

	var counts []models.EmotionCount
	for rows.Next() {
		var c models.EmotionCount
		if err := rows.Scan(&c.Emotion, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan emotion count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *StudentRepository) distinct(column string) ([]string, error) {
	// column is always one of the fixed identifiers above, never user input
	rows, err := r.db.Query(`SELECT DISTINCT ` + column + ` FROM students WHERE ` + column + ` != '' ORDER BY ` + column)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func buildWhere(emotion, region string) (string, []interface{}) {
	where := ""
	var args []interface{}
	appendCond := func(cond string, arg interface{}) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, arg)
	}

	if emotion != "" {
		appendCond("dominant_emotion = ?", emotion)
	}
	if region != "" {
		appendCond("region = ?", region)
	}
	return where, args
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
