// Package main computes a one-shot stereographic sky chart and writes the
// projection as JSON for an external renderer.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.astrageek.io/skychart-api/internal/adapter/store"
	"go.astrageek.io/skychart-api/internal/adapter/store/csv"
	"go.astrageek.io/skychart-api/internal/adapter/store/netcdf"
	"go.astrageek.io/skychart-api/internal/usecase"
)

func main() {
	var (
		lat       float64
		lon       float64
		timeStr   string
		dataDir   string
		netcdfDir string
		catalog   string
		source    string
		magLimit  float64
		ecliptic  bool
		outPath   string
	)

	flag.Float64Var(&lat, "lat", 0, "Observer latitude in degrees")
	flag.Float64Var(&lon, "lon", 0, "Observer longitude in degrees (east positive)")
	flag.StringVar(&timeStr, "time", "", "Observation time (RFC3339, default: now)")
	flag.StringVar(&dataDir, "data", "./data", "CSV catalog directory")
	flag.StringVar(&netcdfDir, "netcdf", "", "NetCDF catalog directory (optional)")
	flag.StringVar(&catalog, "catalog", "hip", "Catalog name")
	flag.StringVar(&source, "source", "csv", "Catalog source: csv or netcdf")
	flag.Float64Var(&magLimit, "mag_limit", 0, "Override faint-limit magnitude (0 = catalog default)")
	flag.BoolVar(&ecliptic, "ecliptic", false, "Request an ecliptic overlay (reserved)")
	flag.StringVar(&outPath, "out", "", "Output file (default: stdout)")
	flag.Parse()

	instant := time.Now().UTC()
	if timeStr != "" {
		parsed, err := time.Parse(time.RFC3339, timeStr)
		if err != nil {
			log.Fatalf("Invalid -time (expected RFC3339): %v", err)
		}
		instant = parsed
	}

	var csvLoader store.CatalogLoader = csv.NewCatalogStore(dataDir, 0)
	var netcdfLoader store.CatalogLoader
	if netcdfDir != "" {
		netcdfLoader = netcdf.NewStore(netcdfDir, store.DefaultMagnitudeCriteria)
	}

	uc := usecase.NewChartUseCase(csvLoader, netcdfLoader, catalog)

	req := usecase.ChartRequest{
		Lat:         lat,
		Lon:         lon,
		Time:        instant,
		Catalog:     catalog,
		Source:      source,
		AddEcliptic: ecliptic,
	}
	if magLimit > 0 {
		req.MagLimit = &magLimit
	}

	response, err := uc.Execute(req)
	if err != nil {
		log.Fatalf("Chart computation failed: %v", err)
	}

	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}
	log.Printf("Wrote %d visible stars to %s", response.VisibleCount, outPath)
}
