// Package csv provides CSV-based star catalog loading.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.astrageek.io/skychart-api/internal/adapter/store"
	"go.astrageek.io/skychart-api/internal/domain"
)

// CatalogStore provides access to CSV star catalogs in a data directory.
// Files are named <catalog>_catalog.csv.
type CatalogStore struct {
	dataDir     string
	magCriteria float64
}

// NewCatalogStore creates a CSV-backed catalog store. A non-positive
// magCriteria falls back to store.DefaultMagnitudeCriteria.
func NewCatalogStore(dataDir string, magCriteria float64) *CatalogStore {
	if magCriteria <= 0 {
		magCriteria = store.DefaultMagnitudeCriteria
	}
	return &CatalogStore{
		dataDir:     dataDir,
		magCriteria: magCriteria,
	}
}

// MagnitudeCriteria returns the catalog's faint-limit magnitude.
func (s *CatalogStore) MagnitudeCriteria() float64 {
	return s.magCriteria
}

// Load reads the named catalog and returns its stars in file order.
// Any malformed row is an error: this loader is the boundary that guarantees
// the transform core only ever sees complete records.
func (s *CatalogStore) Load(name string) ([]domain.Star, error) {
	filename := fmt.Sprintf("%s/%s_catalog.csv", s.dataDir, strings.ToLower(name))

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	stars, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}
	return stars, nil
}

// Parse reads star records from CSV data with header hip,vmag,ra_deg,dec_deg.
// Right ascension and declination arrive in degrees and are converted to
// radians here, exactly once.
func Parse(r io.Reader) ([]domain.Star, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	expected := []string{"hip", "vmag", "ra_deg", "dec_deg"}
	if len(header) != len(expected) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expected, header)
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expected[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expected[i], h)
		}
	}

	stars := make([]domain.Star, 0)

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(record) != 4 {
			return nil, fmt.Errorf("invalid CSV record: expected 4 columns, got %d", len(record))
		}

		hip, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid HIP identifier %q: %w", record[0], err)
		}

		vmag, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid magnitude for HIP %d: %w", hip, err)
		}

		raDeg, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid right ascension for HIP %d: %w", hip, err)
		}
		if raDeg < 0 || raDeg >= 360 {
			return nil, fmt.Errorf("right ascension for HIP %d outside [0, 360): %.6f", hip, raDeg)
		}

		decDeg, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid declination for HIP %d: %w", hip, err)
		}
		if decDeg < -90 || decDeg > 90 {
			return nil, fmt.Errorf("declination for HIP %d outside [-90, 90]: %.6f", hip, decDeg)
		}

		stars = append(stars, domain.Star{
			HIP:  hip,
			VMag: vmag,
			RA:   domain.Deg2Rad(raDeg),
			Dec:  domain.Deg2Rad(decDeg),
		})
	}

	if len(stars) == 0 {
		return nil, fmt.Errorf("no stars found in catalog")
	}

	return stars, nil
}

// ListCatalogs returns the catalog names available in the data directory.
func (s *CatalogStore) ListCatalogs() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	catalogs := make([]string, 0)
	suffix := "_catalog.csv"

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, suffix) {
			catalogs = append(catalogs, name[:len(name)-len(suffix)])
		}
	}

	return catalogs, nil
}
