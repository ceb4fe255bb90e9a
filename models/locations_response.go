package models

import (
	"time"

	"crowd-server/models/location"
)

// LocationsResponse wraps a list of derived locations.
type LocationsResponse struct {
	Locations   []location.Location `json:"locations"`
	Total       int                 `json:"total"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// NearbyLocation is a location annotated with its distance from the query point.
type NearbyLocation struct {
	location.Location
	DistanceKm float64 `json:"distance_km"`
}

type NearbyLocationsResponse struct {
	Locations []NearbyLocation `json:"locations"`
	Total     int              `json:"total"`
}

// BestTimeComparison is one column of the side-by-side best time view.
type BestTimeComparison struct {
	LocationID   string                 `json:"location_id"`
	Name         string                 `json:"name"`
	Category     location.Category      `json:"type"`
	CrowdLevel   location.CrowdLevel    `json:"crowd_level"`
	BestTime     string                 `json:"best_time"`
	PopularTimes []location.PopularTime `json:"popular_times"`
}

type PopularTimesResponse struct {
	LocationID   string                 `json:"location_id"`
	BestTime     string                 `json:"best_time"`
	PopularTimes []location.PopularTime `json:"popular_times"`
}
