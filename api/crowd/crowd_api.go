package crowd

import (
	"context"

	"crowd-server/models"
	"crowd-server/models/location"
)

// CrowdAPI is a Go client for the crowd HTTP API.
type CrowdAPI interface {
	ListLocations(ctx context.Context, category, sortBy string) (*models.LocationsResponse, error)
	GetLocation(ctx context.Context, id string) (*location.Location, error)
	GetPopularTimes(ctx context.Context, id string) (*models.PopularTimesResponse, error)
	GetNearby(ctx context.Context, lat, lon, radiusKm float64) (*models.NearbyLocationsResponse, error)
	GetStats(ctx context.Context) (*models.CrowdStats, error)
	CompareBestTimes(ctx context.Context, ids ...string) ([]models.BestTimeComparison, error)
	CreateAlert(ctx context.Context, locationID string, condition location.CrowdLevel) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
}
