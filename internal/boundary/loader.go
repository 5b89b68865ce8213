// Package boundary loads the region outline from a GeoJSON file. The outline
// is read once at startup and shared read-only afterwards; when it is missing
// or malformed the map service degrades to bounding-box filtering instead.
package boundary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Boundary holds the region polygons plus the original document, which the
// map view returns unmodified for drawing the region outline
type Boundary struct {
	Region orb.MultiPolygon
	Raw    json.RawMessage
}

// Load reads and parses the GeoJSON feature collection at path. Geometries
// other than Polygon/MultiPolygon are ignored; a collection with no polygon
// geometry at all is rejected as malformed.
func Load(path string) (*Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boundary geojson: %w", err)
	}

	var region orb.MultiPolygon
	for _, feat := range fc.Features {
		switch g := feat.Geometry.(type) {
		case orb.Polygon:
			region = append(region, g)
		case orb.MultiPolygon:
			region = append(region, g...)
		}
	}
	if len(region) == 0 {
		return nil, errors.New("boundary geojson contains no polygon geometry")
	}

	return &Boundary{Region: region, Raw: json.RawMessage(data)}, nil
}
