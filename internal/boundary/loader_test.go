package boundary

import (
	"os"
	"path/filepath"
	"testing"
)

const validGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "ES"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-41.9, -21.4], [-39.0, -21.4], [-39.0, -18.0], [-41.9, -18.0], [-41.9, -21.4]]]
      }
    }
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadValidBoundary(t *testing.T) {
	b, err := Load(writeFile(t, "es.geojson", validGeoJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b.Region) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(b.Region))
	}
	if len(b.Raw) == 0 {
		t.Fatal("raw document must be kept for the map overlay")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	if _, err := Load(writeFile(t, "bad.geojson", "{not json")); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestLoadNoPolygons(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[-40.5,-19.5]}}]}`
	if _, err := Load(writeFile(t, "points.geojson", doc)); err == nil {
		t.Fatal("expected error when no polygon geometry is present")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.geojson")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
