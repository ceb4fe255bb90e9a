package services

import (
	"testing"

	"crowd-server/metrics"
	"crowd-server/models"
	"crowd-server/models/location"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertService_CreateAlert(t *testing.T) {
	f := newFixture(t)

	a, err := f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "55", Condition: "low"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Government Museum", a.LocationName)
	assert.Equal(t, location.CrowdLevelLow, a.Condition)
	assert.True(t, a.IsActive)

	stored, err := f.alerts.GetAlert(f.ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.LocationID, stored.LocationID)
}

func TestAlertService_CreateAlert_Invalid(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		req     models.CreateAlertRequest
		wantErr error
	}{
		{"missing location", models.CreateAlertRequest{Condition: "low"}, ErrInvalidRequest},
		{"high is not a condition", models.CreateAlertRequest{LocationID: "1", Condition: "high"}, ErrInvalidRequest},
		{"unknown location", models.CreateAlertRequest{LocationID: "999", Condition: "medium"}, ErrLocationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.alerts.CreateAlert(f.ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAlertService_SetActiveAndDelete(t *testing.T) {
	f := newFixture(t)

	a, err := f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "1", Condition: "medium"})
	require.NoError(t, err)

	paused, err := f.alerts.SetActive(f.ctx, a.ID, false)
	require.NoError(t, err)
	assert.False(t, paused.IsActive)

	list, err := f.alerts.ListAlerts(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsActive)

	require.NoError(t, f.alerts.DeleteAlert(f.ctx, a.ID))
	assert.ErrorIs(t, f.alerts.DeleteAlert(f.ctx, a.ID), ErrAlertNotFound)
	_, err = f.alerts.SetActive(f.ctx, a.ID, true)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestAlertService_Evaluate(t *testing.T) {
	f := newFixture(t)

	quiet, err := f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "55", Condition: "medium"})
	require.NoError(t, err)
	_, err = f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "1", Condition: "low"})
	require.NoError(t, err)
	paused, err := f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "55", Condition: "low"})
	require.NoError(t, err)
	_, err = f.alerts.SetActive(f.ctx, paused.ID, false)
	require.NoError(t, err)

	triggered, err := f.alerts.Evaluate(f.ctx, f.locations.Snapshot(f.ctx))
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Equal(t, quiet.ID, triggered[0].Alert.ID)
	assert.Equal(t, location.CrowdLevelLow, triggered[0].Location.CrowdLevel)
}

func TestAlertService_Evaluate_FiresOncePerCrossing(t *testing.T) {
	f := newFixture(t)
	counter := metrics.AlertsTriggeredTotal.WithLabelValues("low")
	before := testutil.ToFloat64(counter)

	quiet, err := f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "55", Condition: "low"})
	require.NoError(t, err)

	first, err := f.alerts.Evaluate(f.ctx, f.locations.Snapshot(f.ctx))
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, first[0].Alert.Triggered)

	again, err := f.alerts.Evaluate(f.ctx, f.locations.Snapshot(f.ctx))
	require.NoError(t, err)
	assert.Empty(t, again, "still quiet, nothing new to report")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	_, err = f.alerts.SetActive(f.ctx, quiet.ID, false)
	require.NoError(t, err)
	resumed, err := f.alerts.SetActive(f.ctx, quiet.ID, true)
	require.NoError(t, err)
	assert.False(t, resumed.Triggered)

	rearmed, err := f.alerts.Evaluate(f.ctx, f.locations.Snapshot(f.ctx))
	require.NoError(t, err)
	assert.Len(t, rearmed, 1)
}

func TestAlertService_Evaluate_RearmsWhenConditionClears(t *testing.T) {
	f := newFixture(t)

	// "1" is high at the fixture time, so a low alert left triggered clears.
	a, err := f.alerts.CreateAlert(f.ctx, models.CreateAlertRequest{LocationID: "1", Condition: "low"})
	require.NoError(t, err)
	a.Triggered = true
	require.NoError(t, f.dao.SetAlert(f.ctx, *a))

	triggered, err := f.alerts.Evaluate(f.ctx, f.locations.Snapshot(f.ctx))
	require.NoError(t, err)
	assert.Empty(t, triggered)

	stored, err := f.alerts.GetAlert(f.ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, stored.Triggered)
}

func TestAlertMatches(t *testing.T) {
	low := models.Alert{Condition: location.CrowdLevelLow}
	medium := models.Alert{Condition: location.CrowdLevelMedium}

	assert.True(t, low.Matches(location.CrowdLevelLow))
	assert.False(t, low.Matches(location.CrowdLevelMedium))
	assert.True(t, medium.Matches(location.CrowdLevelLow))
	assert.True(t, medium.Matches(location.CrowdLevelMedium))
	assert.False(t, medium.Matches(location.CrowdLevelHigh))
}
