package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "alunos.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadBasic(t *testing.T) {
	p := writeCSV(t, "id_aluno,regiao,dominante_emocao,frequencia,desempenho,lat,lon,score_feliz,score_triste\n"+
		"A001,Serra,feliz,0.92,7.5,-19.45,-40.32,0.81,0.02\n"+
		"A002,Vitória,triste,0.75,5.1,-20.31,-40.29,0.10,0.77\n")

	records, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.ID != "A001" || r.Region != "Serra" || r.DominantEmotion != "feliz" {
		t.Fatalf("unexpected attributes: %+v", r)
	}
	if r.Latitude == nil || *r.Latitude != -19.45 {
		t.Fatalf("unexpected latitude: %v", r.Latitude)
	}
	if r.Attendance != 0.92 || r.Performance != 7.5 {
		t.Fatalf("unexpected numeric fields: %+v", r)
	}
	if r.Scores["feliz"] != 0.81 || r.Scores["triste"] != 0.02 {
		t.Fatalf("unexpected scores: %+v", r.Scores)
	}
}

func TestLoadDecimalComma(t *testing.T) {
	p := writeCSV(t, "id_aluno,lat,lon\n"+
		"A001,\"-19,45\",\"-40,32\"\n")

	records, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if records[0].Latitude == nil || *records[0].Latitude != -19.45 {
		t.Fatalf("decimal comma latitude not normalized: %v", records[0].Latitude)
	}
	if records[0].Longitude == nil || *records[0].Longitude != -40.32 {
		t.Fatalf("decimal comma longitude not normalized: %v", records[0].Longitude)
	}
}

func TestLoadDirtyCoordinateCell(t *testing.T) {
	p := writeCSV(t, "id_aluno,lat,lon\n"+
		"A001,aprox. -19.45,-40.32\n"+
		"A002,sem dado,-40.29\n")

	records, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if records[0].Latitude == nil || *records[0].Latitude != -19.45 {
		t.Fatalf("expected number extracted from dirty cell, got %v", records[0].Latitude)
	}
	if records[1].Latitude != nil {
		t.Fatalf("expected nil latitude for non-numeric cell, got %v", *records[1].Latitude)
	}
}

func TestLoadMissingCoordinateColumns(t *testing.T) {
	p := writeCSV(t, "id_aluno,regiao\nA001,Serra\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error when lat/lon columns are absent")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
