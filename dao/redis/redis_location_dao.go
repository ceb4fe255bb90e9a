package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"crowd-server/db"
	"crowd-server/models"
	"crowd-server/models/location"
)

const LOCATIONS_GEO_KEY_V1 = "locations_geo_v1"
const LOCATIONS_GEO_PLACE_MEMBER_FORMAT_V1 = "locations_geo_place_v1:%s"

// POPULAR_TIMES_KEY_FORMAT caches one weekday's profile per location.
const POPULAR_TIMES_KEY_FORMAT = "popular_times_v1:%s_%d"

// ALERT_KEY_FORMAT stores crowd alerts by id.
const ALERT_KEY_FORMAT = "alert_v1:%s"

// RedisLocationDAO persists location snapshots, popularity profiles and alerts in Redis.
type RedisLocationDAO struct {
	client db.RedisClient
}

func NewRedisLocationDAO(client db.RedisClient) *RedisLocationDAO {
	return &RedisLocationDAO{client: client}
}

// UpsertLocation stores the location in the geo index together with its JSON.
func (dao *RedisLocationDAO) UpsertLocation(ctx context.Context, l location.Location) error {
	member := fmt.Sprintf(LOCATIONS_GEO_PLACE_MEMBER_FORMAT_V1, l.ID)
	if err := dao.client.AddLocationWithJSON(ctx, LOCATIONS_GEO_KEY_V1, member, l.Lat, l.Lng, l); err != nil {
		return fmt.Errorf("[RedisLocationDAO] failed to upsert location %s: %w", l.ID, err)
	}
	return nil
}

// DeleteLocation removes a location from the geo index together with its JSON.
func (dao *RedisLocationDAO) DeleteLocation(ctx context.Context, id string) error {
	member := fmt.Sprintf(LOCATIONS_GEO_PLACE_MEMBER_FORMAT_V1, id)
	if err := dao.client.RemoveLocation(ctx, LOCATIONS_GEO_KEY_V1, member); err != nil {
		return fmt.Errorf("[RedisLocationDAO] failed to delete location %s: %w", id, err)
	}
	return nil
}

// GetNearbyLocations returns stored locations within radiusKm, nearest first.
func (dao *RedisLocationDAO) GetNearbyLocations(ctx context.Context, lat, lon, radiusKm float64) ([]location.Location, error) {
	raw, err := dao.client.GetLocationsWithinRadius(ctx, LOCATIONS_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisLocationDAO] failed to get locations: %w", err)
	}

	locations := make([]location.Location, len(raw))
	for i, s := range raw {
		if err := json.Unmarshal([]byte(s), &locations[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location JSON: %w", err)
		}
	}
	return locations, nil
}

// ListLocationIDs returns the ids of every stored location.
func (dao *RedisLocationDAO) ListLocationIDs(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(LOCATIONS_GEO_PLACE_MEMBER_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list location keys: %w", err)
	}
	prefix := fmt.Sprintf(LOCATIONS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetPopularTimes caches a location's profile for one weekday.
func (dao *RedisLocationDAO) SetPopularTimes(ctx context.Context, id string, day time.Weekday, profile []location.PopularTime) error {
	key := fmt.Sprintf(POPULAR_TIMES_KEY_FORMAT, id, int(day))
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal popular times for location %s day %d: %w", id, day, err)
	}
	if err := dao.client.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to set popular times in redis: %w", err)
	}
	return nil
}

// GetPopularTimes returns the cached profile, or nil on a cache miss.
func (dao *RedisLocationDAO) GetPopularTimes(ctx context.Context, id string, day time.Weekday) ([]location.PopularTime, error) {
	key := fmt.Sprintf(POPULAR_TIMES_KEY_FORMAT, id, int(day))
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get popular times from redis: %w", err)
	}
	var profile []location.PopularTime
	if err := json.Unmarshal([]byte(str), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal popular times JSON: %w", err)
	}
	return profile, nil
}

func (dao *RedisLocationDAO) SetAlert(ctx context.Context, a models.Alert) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal alert %s: %w", a.ID, err)
	}
	if err := dao.client.Set(ctx, fmt.Sprintf(ALERT_KEY_FORMAT, a.ID), string(data)); err != nil {
		return fmt.Errorf("failed to set alert in redis: %w", err)
	}
	return nil
}

// GetAlert returns the alert, or nil if it does not exist.
func (dao *RedisLocationDAO) GetAlert(ctx context.Context, id string) (*models.Alert, error) {
	str, err := dao.client.Get(ctx, fmt.Sprintf(ALERT_KEY_FORMAT, id))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert from redis: %w", err)
	}
	var a models.Alert
	if err := json.Unmarshal([]byte(str), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert JSON: %w", err)
	}
	return &a, nil
}

// ListAlerts returns every stored alert, oldest first.
func (dao *RedisLocationDAO) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(ALERT_KEY_FORMAT, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list alert keys: %w", err)
	}
	prefix := fmt.Sprintf(ALERT_KEY_FORMAT, "")

	alerts := make([]models.Alert, 0, len(keys))
	for _, k := range keys {
		a, err := dao.GetAlert(ctx, strings.TrimPrefix(k, prefix))
		if err != nil {
			return nil, err
		}
		if a != nil {
			alerts = append(alerts, *a)
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.Before(alerts[j].CreatedAt)
	})
	return alerts, nil
}

func (dao *RedisLocationDAO) DeleteAlert(ctx context.Context, id string) error {
	key := fmt.Sprintf(ALERT_KEY_FORMAT, id)
	if err := dao.client.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete alert key %s: %w", key, err)
	}
	return nil
}
