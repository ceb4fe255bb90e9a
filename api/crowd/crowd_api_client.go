package crowd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"crowd-server/api"
	"crowd-server/models"
	"crowd-server/models/location"
)

const (
	LOCATIONS_ENDPOINT     = "/v1/locations"
	NEARBY_ENDPOINT        = "/v1/locations/nearby"
	STATS_ENDPOINT         = "/v1/locations/stats"
	COMPARE_ENDPOINT       = "/v1/locations/compare"
	POPULAR_TIMES_ENDPOINT = "/v1/locations/%s/popular-times"
	ALERTS_ENDPOINT        = "/v1/alerts"
)

type CrowdApiClient struct {
	httpClient *api.HTTPClient
}

var _ CrowdAPI = (*CrowdApiClient)(nil)

func NewCrowdApiClient(httpClient *api.HTTPClient) *CrowdApiClient {
	return &CrowdApiClient{httpClient: httpClient}
}

func (c *CrowdApiClient) ListLocations(ctx context.Context, category, sortBy string) (*models.LocationsResponse, error) {
	params := url.Values{}
	if category != "" {
		params.Set("type", category)
	}
	if sortBy != "" {
		params.Set("sort", sortBy)
	}
	var resp models.LocationsResponse
	if err := c.httpClient.Request(ctx, http.MethodGet, withQuery(LOCATIONS_ENDPOINT, params), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *CrowdApiClient) GetLocation(ctx context.Context, id string) (*location.Location, error) {
	var l location.Location
	if err := c.httpClient.Request(ctx, http.MethodGet, LOCATIONS_ENDPOINT+"/"+url.PathEscape(id), nil, nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *CrowdApiClient) GetPopularTimes(ctx context.Context, id string) (*models.PopularTimesResponse, error) {
	var resp models.PopularTimesResponse
	endpoint := fmt.Sprintf(POPULAR_TIMES_ENDPOINT, url.PathEscape(id))
	if err := c.httpClient.Request(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *CrowdApiClient) GetNearby(ctx context.Context, lat, lon, radiusKm float64) (*models.NearbyLocationsResponse, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var resp models.NearbyLocationsResponse
	if err := c.httpClient.Request(ctx, http.MethodGet, withQuery(NEARBY_ENDPOINT, params), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *CrowdApiClient) GetStats(ctx context.Context) (*models.CrowdStats, error) {
	var stats models.CrowdStats
	if err := c.httpClient.Request(ctx, http.MethodGet, STATS_ENDPOINT, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *CrowdApiClient) CompareBestTimes(ctx context.Context, ids ...string) ([]models.BestTimeComparison, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))

	var resp []models.BestTimeComparison
	if err := c.httpClient.Request(ctx, http.MethodGet, withQuery(COMPARE_ENDPOINT, params), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *CrowdApiClient) CreateAlert(ctx context.Context, locationID string, condition location.CrowdLevel) (*models.Alert, error) {
	req := models.CreateAlertRequest{LocationID: locationID, Condition: string(condition)}
	var alert models.Alert
	if err := c.httpClient.Request(ctx, http.MethodPost, ALERTS_ENDPOINT, nil, req, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (c *CrowdApiClient) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := c.httpClient.Request(ctx, http.MethodGet, ALERTS_ENDPOINT, nil, nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *CrowdApiClient) DeleteAlert(ctx context.Context, id string) error {
	return c.httpClient.Request(ctx, http.MethodDelete, ALERTS_ENDPOINT+"/"+url.PathEscape(id), nil, nil, nil)
}

func withQuery(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}
