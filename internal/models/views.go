package models

import (
	"encoding/json"

	"github.com/felippedeabreu/emocaoalunov3/internal/spatial"
)

// Map view modes
const (
	MapModeBounds   = "bounds"
	MapModeBoundary = "boundary"
)

// MapView is the payload behind the geographic map: the in-region records,
// the point to center the view on, and the count of excluded records for the
// user-facing warning
type MapView struct {
	Records  []StudentRecord `json:"records"`
	Center   spatial.Point   `json:"center"`
	Removed  int             `json:"removed"`
	Mode     string          `json:"mode"`               // mode actually applied
	Degraded bool            `json:"degraded"`           // boundary mode fell back to bounds
	Boundary json.RawMessage `json:"boundary,omitempty"` // region outline for the overlay
}

// EmotionCount is one bar/slice of the emotion distribution charts
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// ScatterPoint is one marker of the attendance × performance scatter plot
type ScatterPoint struct {
	ID          string  `json:"id"`
	Region      string  `json:"region"`
	Emotion     string  `json:"emotion"`
	Attendance  float64 `json:"attendance"`
	Performance float64 `json:"performance"`
}

// ParallelDimension is one axis of the parallel-coordinates plot
type ParallelDimension struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ParallelCoords carries the parallel-coordinates data; lines are colored by
// the named dimension
type ParallelCoords struct {
	Dimensions []ParallelDimension `json:"dimensions"`
	ColorBy    string              `json:"colorBy"`
}

// RegionDispersion summarizes the spatial spread of a region's records
type RegionDispersion struct {
	Region       string        `json:"region"`
	Count        int           `json:"count"`
	Center       spatial.Point `json:"center"`
	RadiusMeters float64       `json:"radiusMeters"`
}
