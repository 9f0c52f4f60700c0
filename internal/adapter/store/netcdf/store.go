// Package netcdf provides access to star catalogs distributed as NetCDF
// files, with 1-D vmag/ra/dec variables over a shared star dimension.
package netcdf

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fhs/go-netcdf/netcdf"

	"go.astrageek.io/skychart-api/internal/adapter/store"
	"go.astrageek.io/skychart-api/internal/domain"
)

// Variable and file naming expected in catalog files.
const (
	hipVarName  = "hip"
	vmagVarName = "vmag"
	raVarName   = "ra"  // degrees
	decVarName  = "dec" // degrees

	fileSuffix = "_catalog.nc"
)

// Store provides access to NetCDF star catalogs in a data directory.
// Decoded catalogs are cached; the cache is safe for concurrent readers.
type Store struct {
	dataDir     string
	magCriteria float64

	mu    sync.RWMutex
	cache map[string][]domain.Star
}

// NewStore creates a NetCDF-backed catalog store. A non-positive
// magCriteria falls back to store.DefaultMagnitudeCriteria.
func NewStore(dataDir string, magCriteria float64) *Store {
	if magCriteria <= 0 {
		magCriteria = store.DefaultMagnitudeCriteria
	}
	return &Store{
		dataDir:     dataDir,
		magCriteria: magCriteria,
		cache:       make(map[string][]domain.Star),
	}
}

// MagnitudeCriteria returns the catalog's faint-limit magnitude.
func (s *Store) MagnitudeCriteria() float64 {
	return s.magCriteria
}

// Load reads the named catalog, returning stars in file order. Catalogs are
// decoded once and served from cache afterwards; callers get a copy so the
// cached slice stays immutable.
func (s *Store) Load(name string) ([]domain.Star, error) {
	key := strings.ToLower(name)

	s.mu.RLock()
	if stars, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return append([]domain.Star(nil), stars...), nil
	}
	s.mu.RUnlock()

	path := fmt.Sprintf("%s/%s%s", s.dataDir, key, fileSuffix)
	stars, err := readCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}

	s.mu.Lock()
	s.cache[key] = stars
	s.mu.Unlock()

	return append([]domain.Star(nil), stars...), nil
}

// ListCatalogs returns the catalog names available in the data directory.
func (s *Store) ListCatalogs() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	catalogs := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, fileSuffix) {
			catalogs = append(catalogs, name[:len(name)-len(fileSuffix)])
		}
	}
	return catalogs, nil
}

// readCatalogFile decodes one NetCDF catalog file.
func readCatalogFile(path string) ([]domain.Star, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	vmag, err := readFloat64Var(nc, vmagVarName)
	if err != nil {
		return nil, err
	}
	ra, err := readFloat64Var(nc, raVarName)
	if err != nil {
		return nil, err
	}
	dec, err := readFloat64Var(nc, decVarName)
	if err != nil {
		return nil, err
	}
	if len(ra) != len(vmag) || len(dec) != len(vmag) {
		return nil, fmt.Errorf("variable lengths disagree: vmag=%d ra=%d dec=%d", len(vmag), len(ra), len(dec))
	}

	// HIP identifiers are optional in converted catalogs.
	hip, err := readFloat64Var(nc, hipVarName)
	if err != nil || len(hip) != len(vmag) {
		hip = nil
	}

	stars := make([]domain.Star, 0, len(vmag))
	for i := range vmag {
		if ra[i] < 0 || ra[i] >= 360 {
			return nil, fmt.Errorf("right ascension at index %d outside [0, 360): %.6f", i, ra[i])
		}
		if dec[i] < -90 || dec[i] > 90 {
			return nil, fmt.Errorf("declination at index %d outside [-90, 90]: %.6f", i, dec[i])
		}
		star := domain.Star{
			VMag: vmag[i],
			RA:   domain.Deg2Rad(ra[i]),
			Dec:  domain.Deg2Rad(dec[i]),
		}
		if hip != nil {
			star.HIP = int(hip[i])
		}
		stars = append(stars, star)
	}

	if len(stars) == 0 {
		return nil, fmt.Errorf("no stars found in %s", path)
	}
	return stars, nil
}

// readFloat64Var reads a 1-D variable as float64, converting from the
// narrower numeric types NetCDF catalogs commonly use.
func readFloat64Var(nc netcdf.Dataset, name string) ([]float64, error) {
	v, err := nc.Var(name)
	if err != nil {
		return nil, fmt.Errorf("variable %s not found: %w", name, err)
	}

	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions of %s: %w", name, err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("expected 1D variable %s, got %dD", name, len(dims))
	}

	length, err := dims[0].Len()
	if err != nil {
		return nil, err
	}

	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get type of %s: %w", name, err)
	}

	switch t {
	case netcdf.DOUBLE:
		data := make([]float64, length)
		if err := v.ReadFloat64s(data); err != nil {
			return nil, err
		}
		return data, nil
	case netcdf.FLOAT:
		tmp := make([]float32, length)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, length)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.INT:
		tmp := make([]int32, length)
		if err := v.ReadInt32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, length)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type for variable %s: %v", name, t)
	}
}
