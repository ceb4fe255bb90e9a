package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

const EarthRadiusKm = 6371.0088

// DistanceKm is the great-circle distance between two points in kilometres.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// FormatDistanceKm renders a distance the way catalog labels are written ("2.3 km").
func FormatDistanceKm(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// ParseDistanceKm reads a "2.3 km" label. Empty or malformed labels read as 0.
func ParseDistanceKm(label string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), "km")), 64)
	if err != nil {
		return 0
	}
	return v
}
