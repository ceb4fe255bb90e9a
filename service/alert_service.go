package services

import (
	"context"
	"fmt"

	"crowd-server/dao/redis"
	"crowd-server/logging"
	"crowd-server/metrics"
	"crowd-server/models"
	"crowd-server/models/location"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AlertService manages "tell me when it gets quiet" alerts.
type AlertService struct {
	alertDao  *redis.RedisLocationDAO
	locations *LocationService
	validate  *validator.Validate
	log       zerolog.Logger
}

func NewAlertService(alertDao *redis.RedisLocationDAO, locations *LocationService) *AlertService {
	return &AlertService{
		alertDao:  alertDao,
		locations: locations,
		validate:  validator.New(),
		log:       logging.Component("AlertService"),
	}
}

// CreateAlert validates and stores a new active alert.
func (as *AlertService) CreateAlert(ctx context.Context, req models.CreateAlertRequest) (*models.Alert, error) {
	if err := as.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	loc, err := as.locations.GetLocation(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	alert := models.Alert{
		ID:           uuid.NewString(),
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Condition:    location.CrowdLevel(req.Condition),
		IsActive:     true,
		CreatedAt:    as.locations.Now().UTC(),
	}
	if err := as.alertDao.SetAlert(ctx, alert); err != nil {
		return nil, err
	}

	as.log.Info().Str("alert_id", alert.ID).Str("location_id", alert.LocationID).
		Str("condition", string(alert.Condition)).Msg("alert created")
	return &alert, nil
}

func (as *AlertService) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return as.alertDao.ListAlerts(ctx)
}

func (as *AlertService) GetAlert(ctx context.Context, id string) (*models.Alert, error) {
	alert, err := as.alertDao.GetAlert(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	}
	return alert, nil
}

func (as *AlertService) DeleteAlert(ctx context.Context, id string) error {
	if _, err := as.GetAlert(ctx, id); err != nil {
		return err
	}
	if err := as.alertDao.DeleteAlert(ctx, id); err != nil {
		return err
	}
	as.log.Info().Str("alert_id", id).Msg("alert deleted")
	return nil
}

// SetActive pauses or resumes an alert. Resuming re-arms it.
func (as *AlertService) SetActive(ctx context.Context, id string, active bool) (*models.Alert, error) {
	alert, err := as.GetAlert(ctx, id)
	if err != nil {
		return nil, err
	}
	if active && !alert.IsActive {
		alert.Triggered = false
	}
	alert.IsActive = active
	if err := as.alertDao.SetAlert(ctx, *alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// Evaluate returns the active alerts whose location has just come to satisfy
// the condition. An alert that keeps matching does not fire again until its
// location leaves the condition.
func (as *AlertService) Evaluate(ctx context.Context, snapshot []location.Location) ([]models.TriggeredAlert, error) {
	alerts, err := as.alertDao.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, nil
	}

	byID := make(map[string]location.Location, len(snapshot))
	for _, l := range snapshot {
		byID[l.ID] = l
	}

	var triggered []models.TriggeredAlert
	for _, a := range alerts {
		if !a.IsActive {
			continue
		}
		l, ok := byID[a.LocationID]
		matches := ok && a.Matches(l.CrowdLevel)
		if matches == a.Triggered {
			continue
		}

		a.Triggered = matches
		if err := as.alertDao.SetAlert(ctx, a); err != nil {
			as.log.Warn().Err(err).Str("alert_id", a.ID).Msg("failed to store alert state")
		}
		if !matches {
			as.log.Debug().Str("alert_id", a.ID).Msg("alert re-armed")
			continue
		}

		l.PopularTimes = nil
		triggered = append(triggered, models.TriggeredAlert{Alert: a, Location: l})
		metrics.AlertsTriggeredTotal.WithLabelValues(string(a.Condition)).Inc()
		as.log.Info().Str("alert_id", a.ID).Str("location_id", l.ID).
			Str("level", string(l.CrowdLevel)).Msg("alert condition met")
	}
	return triggered, nil
}
