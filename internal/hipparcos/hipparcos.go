// Package hipparcos reads the pipe-delimited hip_main.dat distribution of
// the Hipparcos catalogue, from a local file or an HTTP mirror.
package hipparcos

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.astrageek.io/skychart-api/internal/domain"
)

// Field indexes in a pipe-delimited hip_main.dat line.
const (
	fieldHIP  = 1 // HIP identifier.
	fieldVMag = 5 // Visual magnitude.
	fieldRA   = 8 // Right ascension, degrees (ICRS).
	fieldDec  = 9 // Declination, degrees (ICRS).

	minFields = 10
)

// ParseLine parses a single hip_main.dat line into a Star. Lines missing the
// HIP identifier, magnitude, or either coordinate return an error; callers
// skip such lines so the downstream pipeline only ever sees complete records.
func ParseLine(line string) (domain.Star, error) {
	fields := strings.Split(line, "|")
	if len(fields) < minFields {
		return domain.Star{}, fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields))
	}

	hip, err := strconv.Atoi(strings.TrimSpace(fields[fieldHIP]))
	if err != nil {
		return domain.Star{}, fmt.Errorf("invalid HIP identifier %q: %w", fields[fieldHIP], err)
	}

	vmag, err := parseField(fields[fieldVMag])
	if err != nil {
		return domain.Star{}, fmt.Errorf("HIP %d: invalid magnitude: %w", hip, err)
	}

	raDeg, err := parseField(fields[fieldRA])
	if err != nil {
		return domain.Star{}, fmt.Errorf("HIP %d: invalid right ascension: %w", hip, err)
	}
	if raDeg < 0 || raDeg >= 360 {
		return domain.Star{}, fmt.Errorf("HIP %d: right ascension outside [0, 360): %.6f", hip, raDeg)
	}

	decDeg, err := parseField(fields[fieldDec])
	if err != nil {
		return domain.Star{}, fmt.Errorf("HIP %d: invalid declination: %w", hip, err)
	}
	if decDeg < -90 || decDeg > 90 {
		return domain.Star{}, fmt.Errorf("HIP %d: declination outside [-90, 90]: %.6f", hip, decDeg)
	}

	return domain.Star{
		HIP:  hip,
		VMag: vmag,
		RA:   domain.Deg2Rad(raDeg),
		Dec:  domain.Deg2Rad(decDeg),
	}, nil
}

func parseField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	return strconv.ParseFloat(s, 64)
}

// LoadStars scans reader for catalogue lines, keeping stars at or brighter
// than magLimit. Incomplete lines are skipped; the catalogue's own order is
// preserved.
func LoadStars(r io.Reader, magLimit float64) ([]domain.Star, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	stars := make([]domain.Star, 0, 4096)

	for scanner.Scan() {
		line := scanner.Text()
		star, err := ParseLine(line)
		if err != nil {
			continue
		}
		if star.VMag > magLimit {
			continue
		}
		stars = append(stars, star)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan catalogue data: %w", err)
	}
	if len(stars) == 0 {
		return nil, fmt.Errorf("no stars brighter than %.2f found", magLimit)
	}
	return stars, nil
}

// LoadStarsFromPath loads catalogue data from a local path or HTTP URL.
func LoadStarsFromPath(pathOrURL string, magLimit float64) ([]domain.Star, error) {
	data, err := loadBytes(pathOrURL)
	if err != nil {
		return nil, err
	}
	return LoadStars(bytes.NewReader(data), magLimit)
}

func loadBytes(path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, http.NoBody)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(path)
}
