package domain

import (
	"errors"
	"math"
	"testing"
	"time"
)

// TestNewObserverConfig_ConvertsToRadians checks degree inputs are normalized
// exactly once at construction.
func TestNewObserverConfig_ConvertsToRadians(t *testing.T) {
	instant := time.Date(2021, 3, 1, 6, 0, 0, 0, time.UTC)

	cfg, err := NewObserverConfig(45.0, -77.0, instant, false)
	if err != nil {
		t.Fatalf("NewObserverConfig: %v", err)
	}

	if math.Abs(cfg.Latitude-math.Pi/4) > 1e-12 {
		t.Errorf("latitude: expected π/4, got %.12f", cfg.Latitude)
	}
	if math.Abs(cfg.Longitude-Deg2Rad(-77.0)) > 1e-12 {
		t.Errorf("longitude: expected %.12f, got %.12f", Deg2Rad(-77.0), cfg.Longitude)
	}
	if !cfg.Instant.Equal(instant) {
		t.Errorf("instant changed: %v", cfg.Instant)
	}
}

// TestNewObserverConfig_Ranges exercises the boundary values on both axes.
func TestNewObserverConfig_Ranges(t *testing.T) {
	instant := time.Date(2021, 3, 1, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{"north pole", 90, 0, false},
		{"south pole", -90, 0, false},
		{"antimeridian east", 0, 180, false},
		{"latitude too high", 90.0001, 0, true},
		{"latitude too low", -90.0001, 0, true},
		{"antimeridian west excluded", 0, -180, true},
		{"longitude too high", 0, 180.0001, true},
	}

	for _, tt := range tests {
		_, err := NewObserverConfig(tt.lat, tt.lon, instant, false)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		}
		if tt.wantErr && err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

// TestNewObserverConfig_ZeroInstant rejects a missing observation time.
func TestNewObserverConfig_ZeroInstant(t *testing.T) {
	_, err := NewObserverConfig(0, 0, time.Time{}, false)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero instant, got %v", err)
	}
}
