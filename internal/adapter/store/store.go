// Package store defines the catalog access interface shared by the
// CSV and NetCDF star catalog backends.
package store

import "go.astrageek.io/skychart-api/internal/domain"

// DefaultMagnitudeCriteria is the faint limit the stock Hipparcos extract is
// built with: naked-eye stars under decent skies. Backends fall back to it
// when configured with a non-positive value.
const DefaultMagnitudeCriteria = 5.5

// CatalogLoader is the interface for loading star catalog data. Loaders own
// the dirty work: rows missing any required field never reach the caller,
// and angles are delivered in radians.
type CatalogLoader interface {
	// Load returns the ordered star list of the named catalog.
	// The order is the catalog's own and must be stable between calls.
	Load(name string) ([]domain.Star, error)

	// MagnitudeCriteria returns the faint-limit magnitude the catalog was
	// built with; stars at or beyond it plot with zero radius.
	MagnitudeCriteria() float64
}
