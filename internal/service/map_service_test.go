package service

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/felippedeabreu/emocaoalunov3/internal/boundary"
	"github.com/felippedeabreu/emocaoalunov3/internal/database"
	"github.com/felippedeabreu/emocaoalunov3/internal/models"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
	"github.com/felippedeabreu/emocaoalunov3/internal/spatial"
	"github.com/paulmach/orb"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func ptr(v float64) *float64 { return &v }

func seedRecords(t *testing.T, repo *repository.StudentRepository) {
	t.Helper()
	records := []models.StudentRecord{
		{ID: "A001", Region: "Serra", DominantEmotion: "feliz", Latitude: ptr(-19.5), Longitude: ptr(-40.5)},
		{ID: "A002", Region: "Vitória", DominantEmotion: "triste", Latitude: ptr(-20.3), Longitude: ptr(-40.3)},
		{ID: "A003", Region: "Serra", DominantEmotion: "medo", Latitude: ptr(-10.0), Longitude: ptr(-40.5)}, // outside ES
		{ID: "A004", Region: "Serra", DominantEmotion: "neutro"},                                            // missing coordinates
	}
	if err := repo.ReplaceAll(records); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestMapViewBoundsMode(t *testing.T) {
	repo := repository.NewStudentRepository(testDB(t))
	seedRecords(t, repo)

	svc := NewMapService(repo, nil, spatial.EspiritoSantoBounds, spatial.EspiritoSantoCenter)
	view, err := svc.MapView(models.MapFilter{Mode: models.MapModeBounds})
	if err != nil {
		t.Fatalf("map view: %v", err)
	}

	if view.Mode != models.MapModeBounds || view.Degraded {
		t.Fatalf("unexpected mode flags: %+v", view)
	}
	if len(view.Records) != 2 || view.Removed != 2 {
		t.Fatalf("expected 2 kept / 2 removed, got %d kept / %d removed", len(view.Records), view.Removed)
	}
	if view.Records[0].ID != "A001" || view.Records[1].ID != "A002" {
		t.Fatalf("record order not preserved: %+v", view.Records)
	}
	if len(view.Records)+view.Removed != 4 {
		t.Fatal("kept + removed must equal the input size")
	}
}

func TestMapViewBoundaryMode(t *testing.T) {
	repo := repository.NewStudentRepository(testDB(t))
	seedRecords(t, repo)

	bnds := spatial.EspiritoSantoBounds
	b := &boundary.Boundary{
		Region: orb.MultiPolygon{orb.Polygon{orb.Ring{
			{bnds.LonMin, bnds.LatMin},
			{bnds.LonMax, bnds.LatMin},
			{bnds.LonMax, bnds.LatMax},
			{bnds.LonMin, bnds.LatMax},
			{bnds.LonMin, bnds.LatMin},
		}}},
		Raw: []byte(`{"type":"FeatureCollection","features":[]}`),
	}

	svc := NewMapService(repo, b, bnds, spatial.EspiritoSantoCenter)
	view, err := svc.MapView(models.MapFilter{Mode: models.MapModeBoundary})
	if err != nil {
		t.Fatalf("map view: %v", err)
	}

	if view.Mode != models.MapModeBoundary || view.Degraded {
		t.Fatalf("unexpected mode flags: %+v", view)
	}
	if len(view.Boundary) == 0 {
		t.Fatal("boundary mode must return the overlay document")
	}
	if len(view.Records) != 2 || view.Removed != 2 {
		t.Fatalf("expected 2 kept / 2 removed, got %d / %d", len(view.Records), view.Removed)
	}
}

func TestMapViewDegradesWithoutBoundary(t *testing.T) {
	repo := repository.NewStudentRepository(testDB(t))
	seedRecords(t, repo)

	svc := NewMapService(repo, nil, spatial.EspiritoSantoBounds, spatial.EspiritoSantoCenter)
	view, err := svc.MapView(models.MapFilter{Mode: models.MapModeBoundary})
	if err != nil {
		t.Fatalf("map view: %v", err)
	}

	if view.Mode != models.MapModeBounds || !view.Degraded {
		t.Fatalf("expected degraded bounds mode, got %+v", view)
	}
}

func TestMapViewDegradesOnMalformedBoundary(t *testing.T) {
	repo := repository.NewStudentRepository(testDB(t))
	seedRecords(t, repo)

	// Degenerate outer ring: polygon strategy construction fails and the
	// result must match plain bounds mode.
	bad := &boundary.Boundary{
		Region: orb.MultiPolygon{orb.Polygon{orb.Ring{{-41, -21}, {-39, -18}}}},
	}

	svc := NewMapService(repo, bad, spatial.EspiritoSantoBounds, spatial.EspiritoSantoCenter)
	degraded, err := svc.MapView(models.MapFilter{Mode: models.MapModeBoundary})
	if err != nil {
		t.Fatalf("map view: %v", err)
	}

	direct, err := svc.MapView(models.MapFilter{Mode: models.MapModeBounds})
	if err != nil {
		t.Fatalf("map view: %v", err)
	}

	if !degraded.Degraded || degraded.Mode != models.MapModeBounds {
		t.Fatalf("expected degraded mode, got %+v", degraded)
	}
	if len(degraded.Records) != len(direct.Records) || degraded.Removed != direct.Removed {
		t.Fatalf("degraded result differs from bounds mode: %+v vs %+v", degraded, direct)
	}
}

func TestMapViewEmptyDatasetCenterFallback(t *testing.T) {
	repo := repository.NewStudentRepository(testDB(t))

	svc := NewMapService(repo, nil, spatial.EspiritoSantoBounds, spatial.EspiritoSantoCenter)
	view, err := svc.MapView(models.MapFilter{Mode: models.MapModeBounds})
	if err != nil {
		t.Fatalf("map view: %v", err)
	}

	if view.Center != spatial.EspiritoSantoCenter {
		t.Fatalf("expected nominal region center for empty view, got %+v", view.Center)
	}
}
