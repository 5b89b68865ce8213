package models

// RecordFilter represents filter parameters for querying student records
type RecordFilter struct {
	Emotion  string `form:"emotion"` // dominant emotion label
	Region   string `form:"region"`  // region label
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// MapFilter represents filter parameters for the map view
type MapFilter struct {
	Emotion string `form:"emotion"`
	Region  string `form:"region"`
	Mode    string `form:"mode"` // "bounds" or "boundary"
}
