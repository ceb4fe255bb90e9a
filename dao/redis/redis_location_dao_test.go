package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"crowd-server/db"
	"crowd-server/models"
	"crowd-server/models/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocationDAO_UpsertLocation_Success(t *testing.T) {
	ctx := context.Background()
	mockClient := db.NewMockRedisClient()
	dao := NewRedisLocationDAO(mockClient)

	l := location.Location{ID: "31", Name: "Chennai Central Station", Lat: 13.0827, Lng: 80.2707, Category: location.CategoryTransit, Capacity: 15000}
	require.NoError(t, dao.UpsertLocation(ctx, l))

	stored, err := mockClient.Get(ctx, "locations_geo_place_v1:31")
	require.NoError(t, err)

	var got location.Location
	require.NoError(t, json.Unmarshal([]byte(stored), &got))
	assert.Equal(t, "Chennai Central Station", got.Name)
	assert.Equal(t, location.CategoryTransit, got.Category)
}

func TestRedisLocationDAO_DeleteLocation(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisLocationDAO(db.NewMockRedisClient())

	require.NoError(t, dao.UpsertLocation(ctx, location.Location{ID: "31", Lat: 13.0827, Lng: 80.2707}))
	require.NoError(t, dao.UpsertLocation(ctx, location.Location{ID: "32", Lat: 13.0732, Lng: 80.2609}))
	require.NoError(t, dao.DeleteLocation(ctx, "31"))

	ids, err := dao.ListLocationIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"32"}, ids)

	nearby, err := dao.GetNearbyLocations(ctx, 13.0827, 80.2707, 5)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "32", nearby[0].ID)
}

func TestRedisLocationDAO_GetNearbyLocations(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisLocationDAO(db.NewMockRedisClient())

	_ = dao.UpsertLocation(ctx, location.Location{ID: "31", Lat: 13.0827, Lng: 80.2707})
	_ = dao.UpsertLocation(ctx, location.Location{ID: "32", Lat: 13.0732, Lng: 80.2609})
	_ = dao.UpsertLocation(ctx, location.Location{ID: "34", Lat: 12.9229, Lng: 80.1275})

	nearby, err := dao.GetNearbyLocations(ctx, 13.0827, 80.2707, 3)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "31", nearby[0].ID)
	assert.Equal(t, "32", nearby[1].ID)

	ids, err := dao.ListLocationIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"31", "32", "34"}, ids)
}

func TestRedisLocationDAO_GetNearbyLocations_NoResults(t *testing.T) {
	dao := NewRedisLocationDAO(db.NewMockRedisClient())

	nearby, err := dao.GetNearbyLocations(context.Background(), 13.0827, 80.2707, 1)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestRedisLocationDAO_PopularTimes(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisLocationDAO(db.NewMockRedisClient())

	miss, err := dao.GetPopularTimes(ctx, "1", time.Monday)
	require.NoError(t, err)
	assert.Nil(t, miss)

	profile := []location.PopularTime{{Hour: "00:00", Score: 0}, {Hour: "01:00", Score: 12, IsNow: true}}
	require.NoError(t, dao.SetPopularTimes(ctx, "1", time.Monday, profile))

	got, err := dao.GetPopularTimes(ctx, "1", time.Monday)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	other, err := dao.GetPopularTimes(ctx, "1", time.Tuesday)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestRedisLocationDAO_Alerts(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisLocationDAO(db.NewMockRedisClient())

	t0 := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	first := models.Alert{ID: "b", LocationID: "1", Condition: location.CrowdLevelLow, IsActive: true, CreatedAt: t0}
	second := models.Alert{ID: "a", LocationID: "4", Condition: location.CrowdLevelMedium, CreatedAt: t0.Add(time.Minute)}
	require.NoError(t, dao.SetAlert(ctx, first))
	require.NoError(t, dao.SetAlert(ctx, second))

	alerts, err := dao.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "b", alerts[0].ID)
	assert.Equal(t, "a", alerts[1].ID)

	require.NoError(t, dao.DeleteAlert(ctx, "b"))
	gone, err := dao.GetAlert(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
