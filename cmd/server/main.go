// Package main provides the sky-chart API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"go.astrageek.io/skychart-api/internal/adapter/store"
	"go.astrageek.io/skychart-api/internal/adapter/store/csv"
	"go.astrageek.io/skychart-api/internal/adapter/store/netcdf"
	httpHandler "go.astrageek.io/skychart-api/internal/http"
	"go.astrageek.io/skychart-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("skychart-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	dataDir := getEnv("DATA_DIR", "./data")
	netcdfDir := getEnv("NETCDF_DIR", "")
	defaultCatalog := getEnv("DEFAULT_CATALOG", "hip")
	magCriteria := getEnvFloat("MAG_CRITERIA", store.DefaultMagnitudeCriteria)

	log.Printf("Starting sky-chart API server...")
	log.Printf("Port: %s", port)
	log.Printf("Data directory: %s", dataDir)
	log.Printf("Default catalog: %s", defaultCatalog)
	log.Printf("Magnitude criteria: %.2f", magCriteria)

	// Initialize stores.
	csvStore := csv.NewCatalogStore(dataDir, magCriteria)
	var csvLoader store.CatalogLoader = csvStore

	var netcdfLoader store.CatalogLoader
	if netcdfDir != "" {
		log.Printf("NetCDF directory: %s", netcdfDir)
		netcdfLoader = netcdf.NewStore(netcdfDir, magCriteria)
	} else {
		log.Printf("NetCDF store disabled (NETCDF_DIR not set)")
	}

	if catalogs, err := csvStore.ListCatalogs(); err == nil {
		log.Printf("CSV catalogs available: %v", catalogs)
	}

	// Initialize use case.
	chartUC := usecase.NewChartUseCase(csvLoader, netcdfLoader, defaultCatalog)

	// Setup router.
	router := httpHandler.SetupRouter(chartUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/skychart")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Warning: ignoring non-numeric %s=%q", key, value)
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Sky-chart API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  skychart-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  DATA_DIR                CSV catalog directory (default: ./data)")
	fmt.Println("  NETCDF_DIR              NetCDF catalog directory (optional)")
	fmt.Println("  DEFAULT_CATALOG         Catalog served when none is requested (default: hip)")
	fmt.Println("  MAG_CRITERIA            Faint-limit magnitude for marker sizing (default: 5.5)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health        Health check")
	fmt.Println("  GET /v1/skychart   Stereographic sky-chart projection")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  skychart-api")
	fmt.Println()
	fmt.Println("  # Chart for Cape Town tonight")
	fmt.Println("  curl 'http://localhost:8080/v1/skychart?lat=-33.92&lon=18.42&time=2025-03-01T22:00:00%2B02:00'")
	fmt.Println()
}
