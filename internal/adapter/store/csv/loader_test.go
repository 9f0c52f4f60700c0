package csv

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrageek.io/skychart-api/internal/adapter/store"
	"go.astrageek.io/skychart-api/internal/domain"
)

const sampleCatalog = `hip,vmag,ra_deg,dec_deg
32349,-1.44,101.2885,-16.7131
30438,-0.62,95.9880,-52.6957
71683,-0.01,219.9021,-60.8340
`

// TestParse_ValidCatalog reads a small extract and checks order, values, and
// the degree-to-radian conversion.
func TestParse_ValidCatalog(t *testing.T) {
	stars, err := Parse(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(stars) != 3 {
		t.Fatalf("expected 3 stars, got %d", len(stars))
	}

	// Sirius first, in file order.
	if stars[0].HIP != 32349 {
		t.Errorf("expected HIP 32349 first, got %d", stars[0].HIP)
	}
	if math.Abs(stars[0].VMag-(-1.44)) > 1e-9 {
		t.Errorf("Sirius magnitude: expected -1.44, got %.4f", stars[0].VMag)
	}
	if math.Abs(stars[0].RA-domain.Deg2Rad(101.2885)) > 1e-12 {
		t.Errorf("Sirius RA not converted to radians: %.6f", stars[0].RA)
	}
	if math.Abs(stars[0].Dec-domain.Deg2Rad(-16.7131)) > 1e-12 {
		t.Errorf("Sirius Dec not converted to radians: %.6f", stars[0].Dec)
	}
}

// TestParse_Malformed rejects rows with bad fields instead of skipping them.
func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad header", "id,mag,ra,dec\n1,1.0,10.0,10.0\n"},
		{"non-numeric magnitude", "hip,vmag,ra_deg,dec_deg\n1,bright,10.0,10.0\n"},
		{"ra out of range", "hip,vmag,ra_deg,dec_deg\n1,1.0,360.0,10.0\n"},
		{"dec out of range", "hip,vmag,ra_deg,dec_deg\n1,1.0,10.0,-90.5\n"},
		{"empty catalog", "hip,vmag,ra_deg,dec_deg\n"},
	}

	for _, tt := range tests {
		if _, err := Parse(strings.NewReader(tt.data)); err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		}
	}
}

// TestCatalogStore_LoadAndList round-trips a catalog file through a temp
// data directory.
func TestCatalogStore_LoadAndList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hip_catalog.csv")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s := NewCatalogStore(dir, 0)

	if got := s.MagnitudeCriteria(); got != store.DefaultMagnitudeCriteria {
		t.Errorf("expected default criteria %.1f, got %.1f", store.DefaultMagnitudeCriteria, got)
	}

	stars, err := s.Load("hip")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(stars) != 3 {
		t.Errorf("expected 3 stars, got %d", len(stars))
	}

	catalogs, err := s.ListCatalogs()
	if err != nil {
		t.Fatalf("ListCatalogs: %v", err)
	}
	if len(catalogs) != 1 || catalogs[0] != "hip" {
		t.Errorf("expected [hip], got %v", catalogs)
	}
}

// TestCatalogStore_Missing returns an error for an absent catalog.
func TestCatalogStore_Missing(t *testing.T) {
	s := NewCatalogStore(t.TempDir(), 5.5)
	if _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing catalog")
	}
}
