package models

// StudentRecord represents one row of the simulated student-emotion dataset
type StudentRecord struct {
	ID              string             `json:"id" db:"id"`
	Region          string             `json:"region" db:"region"`
	DominantEmotion string             `json:"dominantEmotion" db:"dominant_emotion"`
	Attendance      float64            `json:"attendance" db:"attendance"`   // class attendance frequency
	Performance     float64            `json:"performance" db:"performance"` // academic performance score
	Latitude        *float64           `json:"latitude" db:"latitude"`       // nil when missing or unparseable
	Longitude       *float64           `json:"longitude" db:"longitude"`
	Scores          map[string]float64 `json:"scores,omitempty" db:"scores"` // per-emotion confidence scores
}

// Emotions are the emotion labels of the simulated dataset, in the order the
// parallel-coordinates view presents their score columns
var Emotions = []string{"feliz", "medo", "nervoso", "neutro", "nojo", "triste"}

// StudentRecordsResponse represents a paginated response of student records
type StudentRecordsResponse struct {
	Data       []StudentRecord `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
