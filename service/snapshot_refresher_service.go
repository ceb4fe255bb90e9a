package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crowd-server/dao/redis"
	"crowd-server/logging"
	"crowd-server/metrics"
	"crowd-server/models"
	"crowd-server/models/location"
	"crowd-server/stream"

	"github.com/rs/zerolog"
)

// Broadcaster receives the messages produced by a refresh.
type Broadcaster interface {
	Broadcast(messageType string, data interface{})
}

// SnapshotRefresherService periodically derives the catalog, stores it in
// Redis and pushes it to stream clients.
type SnapshotRefresherService struct {
	locations   *LocationService
	alerts      *AlertService
	locationDao *redis.RedisLocationDAO
	broadcaster Broadcaster
	log         zerolog.Logger
}

func NewSnapshotRefresherService(
	locations *LocationService,
	alerts *AlertService,
	locationDao *redis.RedisLocationDAO,
	broadcaster Broadcaster,
) *SnapshotRefresherService {
	return &SnapshotRefresherService{
		locations:   locations,
		alerts:      alerts,
		locationDao: locationDao,
		broadcaster: broadcaster,
		log:         logging.Component("SnapshotRefresherService"),
	}
}

// StartPeriodicJob launches the background loop at the given interval. It
// stops when ctx is cancelled.
func (sr *SnapshotRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go sr.startPeriodicJob(ctx, interval)
}

func (sr *SnapshotRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			sr.log.Info().Msg("periodic snapshot refresher stopped")
			return
		case <-ticker.C:
			sr.log.Debug().Msg("running periodic snapshot refresher job")
			if err := sr.RefreshSnapshot(ctx); err != nil {
				sr.log.Error().Err(err).Msg("RefreshSnapshot returned error")
			}
		}
	}
}

// RefreshSnapshot derives every location at the current time, then indexes,
// caches, broadcasts and evaluates alerts. The snapshot is broadcast even when
// Redis is unavailable; storage and alert errors are returned afterwards.
func (sr *SnapshotRefresherService) RefreshSnapshot(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.RecordRefresh(err, time.Since(start)) }()

	now := sr.locations.Now()
	snapshot := sr.locations.sim.Snapshot(now)

	var low, medium, high int
	for _, l := range snapshot {
		switch l.CrowdLevel {
		case location.CrowdLevelLow:
			low++
		case location.CrowdLevelMedium:
			medium++
		default:
			high++
		}
	}
	metrics.SetLevelCounts(low, medium, high)

	storeErr := sr.store(ctx, snapshot, now.Weekday())

	if sr.broadcaster != nil {
		sr.broadcaster.Broadcast(stream.MessageTypeSnapshot, &models.LocationsResponse{
			Locations:   stripProfiles(snapshot),
			Total:       len(snapshot),
			GeneratedAt: now,
		})
	}

	triggered, alertErr := sr.alerts.Evaluate(ctx, snapshot)
	if alertErr != nil {
		alertErr = fmt.Errorf("failed to evaluate alerts: %w", alertErr)
	}
	if sr.broadcaster != nil {
		for _, t := range triggered {
			sr.broadcaster.Broadcast(stream.MessageTypeAlert, t)
		}
	}

	sr.log.Info().
		Int("locations", len(snapshot)).
		Int("low", low).Int("medium", medium).Int("high", high).
		Int("alerts_triggered", len(triggered)).
		Dur("took", time.Since(start)).
		Msg("snapshot refreshed")
	return errors.Join(storeErr, alertErr)
}

// store indexes the snapshot, caches today's profiles and removes indexed
// locations that left the catalog.
func (sr *SnapshotRefresherService) store(ctx context.Context, snapshot []location.Location, day time.Weekday) error {
	current := make(map[string]bool, len(snapshot))
	failed := 0
	var lastErr error
	for _, l := range snapshot {
		current[l.ID] = true

		profile := l.PopularTimes
		indexed := l
		indexed.PopularTimes = nil
		if err := sr.locationDao.UpsertLocation(ctx, indexed); err != nil {
			sr.log.Warn().Err(err).Str("location_id", l.ID).Msg("upsert failed")
			lastErr = err
			failed++
			continue
		}
		if err := sr.locationDao.SetPopularTimes(ctx, l.ID, day, profile); err != nil {
			sr.log.Warn().Err(err).Str("location_id", l.ID).Msg("caching popular times failed")
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to store %d of %d locations: %w", failed, len(snapshot), lastErr)
	}

	stored, err := sr.locationDao.ListLocationIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range stored {
		if current[id] {
			continue
		}
		if err := sr.locationDao.DeleteLocation(ctx, id); err != nil {
			return err
		}
		sr.log.Info().Str("location_id", id).Msg("removed location no longer in catalog")
	}
	return nil
}

func stripProfiles(snapshot []location.Location) []location.Location {
	out := make([]location.Location, len(snapshot))
	for i, l := range snapshot {
		l.PopularTimes = nil
		out[i] = l
	}
	return out
}
