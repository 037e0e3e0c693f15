// Package Geo provides the bounding-box type used to filter locations
// by coordinate inclusion.
package Geo

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundingBox is an axis-aligned rectangle in (longitude, latitude) space.
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// ParseBoundingBox parses the "minLon,minLat,maxLon,maxLat" query format.
func ParseBoundingBox(raw string) (BoundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return BoundingBox{}, fmt.Errorf("bounding box must have exactly 4 values, got %d", len(parts))
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("invalid bounding box value %q", part)
		}
		values[i] = value
	}

	return BoundingBox{
		MinLon: values[0],
		MinLat: values[1],
		MaxLon: values[2],
		MaxLat: values[3],
	}, nil
}

// Contains reports whether the point lies within the box, bounds inclusive.
func (b BoundingBox) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}
