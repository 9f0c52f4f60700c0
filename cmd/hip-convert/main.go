// Package main converts the Hipparcos hip_main.dat distribution into the
// CSV and NetCDF catalog files the sky-chart stores read.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fhs/go-netcdf/netcdf"

	"go.astrageek.io/skychart-api/internal/domain"
	"go.astrageek.io/skychart-api/internal/hipparcos"
)

func main() {
	var (
		inPath   string
		outDir   string
		name     string
		magLimit float64
		writeNC  bool
	)

	flag.StringVar(&inPath, "in", "", "Path or URL to hip_main.dat")
	flag.StringVar(&outDir, "out", "./data", "Output directory for catalog files")
	flag.StringVar(&name, "name", "hip", "Catalog name (files are <name>_catalog.csv/.nc)")
	flag.Float64Var(&magLimit, "mag_limit", 5.5, "Keep stars at or brighter than this magnitude")
	flag.BoolVar(&writeNC, "netcdf", false, "Also write a NetCDF catalog file")
	flag.Parse()

	if inPath == "" {
		log.Fatal("Missing -in: path or URL to hip_main.dat")
	}

	stars, err := hipparcos.LoadStarsFromPath(inPath, magLimit)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}
	log.Printf("Loaded %d stars at or brighter than magnitude %.2f", len(stars), magLimit)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	csvPath := filepath.Join(outDir, name+"_catalog.csv")
	if err := writeCSV(csvPath, stars); err != nil {
		log.Fatalf("Failed to write CSV catalog: %v", err)
	}
	log.Printf("Wrote %s", csvPath)

	if writeNC {
		ncPath := filepath.Join(outDir, name+"_catalog.nc")
		if err := writeNetCDF(ncPath, stars); err != nil {
			log.Fatalf("Failed to write NetCDF catalog: %v", err)
		}
		log.Printf("Wrote %s", ncPath)
	}
}

// writeCSV writes the catalog with angles back in degrees, the interchange
// unit of the CSV format.
func writeCSV(path string, stars []domain.Star) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"hip", "vmag", "ra_deg", "dec_deg"}); err != nil {
		return err
	}
	for _, star := range stars {
		record := []string{
			strconv.Itoa(star.HIP),
			strconv.FormatFloat(star.VMag, 'f', 2, 64),
			strconv.FormatFloat(domain.Rad2Deg(star.RA), 'f', 8, 64),
			strconv.FormatFloat(domain.Rad2Deg(star.Dec), 'f', 8, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeNetCDF writes hip/vmag/ra/dec over a shared star dimension.
func writeNetCDF(path string, stars []domain.Star) error {
	f, err := netcdf.CreateFile(path, netcdf.CLOBBER)
	if err != nil {
		return fmt.Errorf("failed to create NetCDF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	starDim, err := f.AddDim("star", uint64(len(stars)))
	if err != nil {
		return fmt.Errorf("failed to add dimension: %w", err)
	}

	vhip, err := f.AddVar("hip", netcdf.INT, []netcdf.Dim{starDim})
	if err != nil {
		return fmt.Errorf("failed to add hip variable: %w", err)
	}
	vmag, err := f.AddVar("vmag", netcdf.DOUBLE, []netcdf.Dim{starDim})
	if err != nil {
		return fmt.Errorf("failed to add vmag variable: %w", err)
	}
	vra, err := f.AddVar("ra", netcdf.DOUBLE, []netcdf.Dim{starDim})
	if err != nil {
		return fmt.Errorf("failed to add ra variable: %w", err)
	}
	vdec, err := f.AddVar("dec", netcdf.DOUBLE, []netcdf.Dim{starDim})
	if err != nil {
		return fmt.Errorf("failed to add dec variable: %w", err)
	}

	if err := f.EndDef(); err != nil {
		return fmt.Errorf("failed to end define mode: %w", err)
	}

	hip := make([]int32, len(stars))
	mag := make([]float64, len(stars))
	ra := make([]float64, len(stars))
	dec := make([]float64, len(stars))
	for i, star := range stars {
		hip[i] = int32(star.HIP)
		mag[i] = star.VMag
		ra[i] = domain.Rad2Deg(star.RA)
		dec[i] = domain.Rad2Deg(star.Dec)
	}

	if err := vhip.WriteInt32s(hip); err != nil {
		return fmt.Errorf("failed to write hip: %w", err)
	}
	if err := vmag.WriteFloat64s(mag); err != nil {
		return fmt.Errorf("failed to write vmag: %w", err)
	}
	if err := vra.WriteFloat64s(ra); err != nil {
		return fmt.Errorf("failed to write ra: %w", err)
	}
	if err := vdec.WriteFloat64s(dec); err != nil {
		return fmt.Errorf("failed to write dec: %w", err)
	}

	return nil
}
