package recipe

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFormulaCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ResinFormulas.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadCSVAndScale(t *testing.T) {
	path := writeFormulaCSV(t,
		"Resin Type,Material,Qty Per Litre\n"+
			"EPX-100,Epoxide Base,0.6\n"+
			"EPX-100,Hardener H2,0.25\n"+
			"PU-20,Polyol,0.8\n")

	b, err := LoadFromFiles(path, "")
	if err != nil {
		t.Fatalf("LoadFromFiles: %v", err)
	}

	lines := b.MaterialsFor("EPX-100", 5000)
	if len(lines) != 2 {
		t.Fatalf("expected 2 material lines, got %d", len(lines))
	}
	if lines[0].Material != "Epoxide Base" || lines[0].RequiredQty != 3000 {
		t.Errorf("line 0 = %+v, want Epoxide Base 3000", lines[0])
	}
	if lines[1].Material != "Hardener H2" || lines[1].RequiredQty != 1250 {
		t.Errorf("line 1 = %+v, want Hardener H2 1250", lines[1])
	}

	resins := b.Resins()
	if len(resins) != 2 || resins[0] != "EPX-100" || resins[1] != "PU-20" {
		t.Errorf("Resins() = %v", resins)
	}
}

func TestHeaderAliasesAndBOM(t *testing.T) {
	path := writeFormulaCSV(t,
		"\uFEFFresin,raw_material,qty-per-l\n"+
			"EPX-100,Filler,0.1\n")

	b, err := LoadFromFiles(path, "")
	if err != nil {
		t.Fatalf("LoadFromFiles: %v", err)
	}
	lines := b.MaterialsFor("EPX-100", 100)
	if len(lines) != 1 || lines[0].RequiredQty != 10 {
		t.Fatalf("alias header not accepted: %+v", lines)
	}
}

func TestUnknownResinHasNoMaterials(t *testing.T) {
	b := Empty()
	if lines := b.MaterialsFor("UNKNOWN", 1000); len(lines) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", lines)
	}
}

func TestBadHeaderRejected(t *testing.T) {
	path := writeFormulaCSV(t, "a,b,c\nEPX,Base,0.5\n")
	if _, err := LoadFromFiles(path, ""); err == nil {
		t.Fatal("expected header error")
	}
}
