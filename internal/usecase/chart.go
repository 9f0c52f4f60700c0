// Package usecase orchestrates the chart pipeline: catalog loading, the
// coordinate transform, and the stereographic projection.
package usecase

import (
	"errors"
	"fmt"
	"time"

	"go.astrageek.io/skychart-api/internal/adapter/store"
	"go.astrageek.io/skychart-api/internal/domain"
)

// ChartRequest encapsulates one sky-chart computation request.
type ChartRequest struct {
	// Observer location in degrees.
	Lat float64
	Lon float64

	// Observation instant; carries its own UTC offset.
	Time time.Time

	// Catalog name (e.g. "hip"). Empty selects the default catalog.
	Catalog string

	// Source selects the catalog backend: "csv" or "netcdf". Empty = csv.
	Source string

	// MagLimit optionally overrides the catalog's magnitude criteria for
	// marker sizing.
	MagLimit *float64

	// AddEcliptic requests an ecliptic overlay. Reserved: carried through to
	// the response metadata, no geometry attached yet.
	AddEcliptic bool
}

// ChartResponse contains the projected chart for an external renderer.
type ChartResponse struct {
	Observer          string            `json:"observer"`
	Time              string            `json:"time"`
	HourAngleDeg      float64           `json:"hour_angle_deg"`
	MagnitudeCriteria float64           `json:"magnitude_criteria"`
	StarCount         int               `json:"star_count"`
	VisibleCount      int               `json:"visible_count"`
	Points            []PointResponse   `json:"points"`
	Meta              map[string]string `json:"meta"`
}

// PointResponse is one plotted star: marker radius plus polar-plane
// coordinates, in catalog order.
type PointResponse struct {
	Radius float64 `json:"radius"`
	Rho    float64 `json:"rho"`
	Phi    float64 `json:"phi"`
}

// ChartUseCase wires catalog loaders to the projection pipeline.
type ChartUseCase struct {
	csvStore    store.CatalogLoader
	netcdfStore store.CatalogLoader
	defaultName string
}

// NewChartUseCase creates a chart use case. netcdfStore may be nil when no
// NetCDF data directory is configured.
func NewChartUseCase(csvStore, netcdfStore store.CatalogLoader, defaultCatalog string) *ChartUseCase {
	if defaultCatalog == "" {
		defaultCatalog = "hip"
	}
	return &ChartUseCase{
		csvStore:    csvStore,
		netcdfStore: netcdfStore,
		defaultName: defaultCatalog,
	}
}

// Validate checks the request before any catalog work happens.
func (r *ChartRequest) Validate() error {
	if r.Lat < -90 || r.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if r.Lon <= -180 || r.Lon > 180 {
		return fmt.Errorf("longitude must be greater than -180 and at most 180")
	}
	if r.Time.IsZero() {
		return fmt.Errorf("observation time is required")
	}
	switch r.Source {
	case "", "csv", "netcdf":
	default:
		return fmt.Errorf("unknown source %q (use csv or netcdf)", r.Source)
	}
	if r.MagLimit != nil && *r.MagLimit <= 0 {
		return fmt.Errorf("mag_limit must be positive")
	}
	return nil
}

// Execute computes the stereographic chart for the request.
func (uc *ChartUseCase) Execute(req ChartRequest) (*ChartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	observer, err := domain.NewObserverConfig(req.Lat, req.Lon, req.Time, req.AddEcliptic)
	if err != nil {
		return nil, err
	}

	loader, source, err := uc.selectLoader(req.Source)
	if err != nil {
		return nil, err
	}

	catalog := req.Catalog
	if catalog == "" {
		catalog = uc.defaultName
	}

	stars, err := loader.Load(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", catalog, err)
	}

	criteria := loader.MagnitudeCriteria()
	if req.MagLimit != nil {
		criteria = *req.MagLimit
	}

	// The rotation depends only on the observer and instant: build it once
	// and reuse it for every star.
	hourAngle := domain.VernalEquinoxHourAngle(observer.Longitude, observer.Instant)
	rotation := domain.NewHorizonRotation(hourAngle, observer.Latitude)

	views := make([]domain.StarView, 0, len(stars))
	for _, star := range stars {
		coords, err := domain.ToHorizontal(star, rotation)
		if err != nil {
			return nil, fmt.Errorf("failed to transform catalog %s: %w", catalog, err)
		}
		views = append(views, domain.StarView{VMag: star.VMag, Coords: coords})
	}

	projections := domain.Project(views, criteria)

	points := make([]PointResponse, len(projections))
	for i, p := range projections {
		points[i] = PointResponse{
			Radius: roundToDecimal(p.Radius, 6),
			Rho:    roundToDecimal(p.Rho, 6),
			Phi:    roundToDecimal(p.Phi, 6),
		}
	}

	response := &ChartResponse{
		Observer:          fmt.Sprintf("%.4f°, %.4f°", req.Lat, req.Lon),
		Time:              req.Time.Format(time.RFC3339),
		HourAngleDeg:      roundToDecimal(domain.Rad2Deg(hourAngle), 6),
		MagnitudeCriteria: criteria,
		StarCount:         len(stars),
		VisibleCount:      len(points),
		Points:            points,
		Meta: map[string]string{
			"catalog":    catalog,
			"source":     source,
			"projection": "stereographic",
		},
	}
	if req.AddEcliptic {
		response.Meta["ecliptic"] = "requested (overlay reserved, not computed)"
	}

	return response, nil
}

// selectLoader picks the catalog backend for the requested source.
func (uc *ChartUseCase) selectLoader(source string) (store.CatalogLoader, string, error) {
	switch source {
	case "", "csv":
		if uc.csvStore == nil {
			return nil, "", errors.New("CSV catalog store is not configured")
		}
		return uc.csvStore, "csv", nil
	case "netcdf":
		if uc.netcdfStore == nil {
			return nil, "", errors.New("NetCDF catalog store is not configured")
		}
		return uc.netcdfStore, "netcdf", nil
	default:
		return nil, "", fmt.Errorf("unknown source %q", source)
	}
}

// roundToDecimal rounds to the given number of decimal places.
func roundToDecimal(val float64, precision int) float64 {
	multiplier := 1.0
	for i := 0; i < precision; i++ {
		multiplier *= 10
	}
	if val < 0 {
		return float64(int(val*multiplier-0.5)) / multiplier
	}
	return float64(int(val*multiplier+0.5)) / multiplier
}
