package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.astrageek.io/skychart-api/internal/usecase"
)

// Handler handles HTTP requests for sky-chart projections.
type Handler struct {
	chartUC *usecase.ChartUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(chartUC *usecase.ChartUseCase) *Handler {
	return &Handler{
		chartUC: chartUC,
	}
}

// GetSkyChart handles GET /v1/skychart.
func (h *Handler) GetSkyChart(c *gin.Context) {
	// Parse query parameters.
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	timeStr := c.Query("time")
	catalog := c.Query("catalog")
	source := c.Query("source")
	magLimitStr := c.Query("mag_limit")
	eclipticStr := c.Query("ecliptic")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon parameters are required"})
		return
	}
	if timeStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time parameter is required (RFC3339)"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
		return
	}

	// RFC3339 keeps the civil offset explicit; local-time ambiguity stays on
	// the client side of this boundary.
	instant, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid time (expected RFC3339): %v", err)})
		return
	}

	req := usecase.ChartRequest{
		Lat:     lat,
		Lon:     lon,
		Time:    instant,
		Catalog: catalog,
		Source:  source,
	}

	if magLimitStr != "" {
		magLimit, err := strconv.ParseFloat(magLimitStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid mag_limit: %v", err)})
			return
		}
		req.MagLimit = &magLimit
	}

	if eclipticStr != "" {
		ecliptic, err := strconv.ParseBool(eclipticStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid ecliptic flag: %v", err)})
			return
		}
		req.AddEcliptic = ecliptic
	}

	response, err := h.chartUC.Execute(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
