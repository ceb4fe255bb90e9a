package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"crowd-server/dao/redis"
	"crowd-server/logging"
	"crowd-server/models"
	"crowd-server/models/location"
	"crowd-server/simulator"
	"crowd-server/util"

	"github.com/rs/zerolog"
)

// MAX_COMPARE_LOCATIONS bounds the side-by-side best time view.
const MAX_COMPARE_LOCATIONS = 3

const (
	SORT_BY_CROWD    = "crowd"
	SORT_BY_DISTANCE = "distance"
	SORT_BY_NAME     = "name"
)

// CATEGORY_ALL disables the category filter.
const CATEGORY_ALL = "all"

// LocationFilter narrows and orders ListLocations.
type LocationFilter struct {
	Category string
	SortBy   string
}

// LocationService serves derived location views at the current time.
type LocationService struct {
	sim         *simulator.Simulator
	locationDao *redis.RedisLocationDAO
	tz          *time.Location
	now         func() time.Time
	log         zerolog.Logger
}

func NewLocationService(sim *simulator.Simulator, locationDao *redis.RedisLocationDAO, tz *time.Location) *LocationService {
	if tz == nil {
		tz = time.Local
	}
	return &LocationService{
		sim:         sim,
		locationDao: locationDao,
		tz:          tz,
		now:         time.Now,
		log:         logging.Component("LocationService"),
	}
}

// SetClock replaces the wall clock.
func (ls *LocationService) SetClock(now func() time.Time) {
	ls.now = now
}

// Now returns the current time in the configured time zone.
func (ls *LocationService) Now() time.Time {
	return ls.now().In(ls.tz)
}

// Snapshot derives every catalog location at the current time.
func (ls *LocationService) Snapshot(ctx context.Context) []location.Location {
	return ls.sim.Snapshot(ls.Now())
}

func (ls *LocationService) ListLocations(ctx context.Context, filter LocationFilter) ([]location.Location, error) {
	var category location.Category
	if filter.Category != "" && !strings.EqualFold(filter.Category, CATEGORY_ALL) {
		c, err := location.ParseCategory(filter.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		category = c
	}

	var less func(a, b location.Location) bool
	switch strings.ToLower(filter.SortBy) {
	case "":
	case SORT_BY_CROWD:
		less = func(a, b location.Location) bool { return a.CrowdLevel.Rank() < b.CrowdLevel.Rank() }
	case SORT_BY_DISTANCE:
		less = func(a, b location.Location) bool {
			return util.ParseDistanceKm(a.Distance) < util.ParseDistanceKm(b.Distance)
		}
	case SORT_BY_NAME:
		less = func(a, b location.Location) bool { return a.Name < b.Name }
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidRequest, filter.SortBy)
	}

	snapshot := ls.Snapshot(ctx)
	out := make([]location.Location, 0, len(snapshot))
	for _, l := range snapshot {
		if category != "" && l.Category != category {
			continue
		}
		out = append(out, l)
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out, nil
}

func (ls *LocationService) GetLocation(ctx context.Context, id string) (*location.Location, error) {
	static, ok := ls.findStatic(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, id)
	}
	derived := ls.sim.Derive(static, ls.Now())
	return &derived, nil
}

// GetPopularTimes returns today's profile, served from the Redis cache when the
// refresher has already stored it.
func (ls *LocationService) GetPopularTimes(ctx context.Context, id string) (*models.PopularTimesResponse, error) {
	static, ok := ls.findStatic(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, id)
	}
	now := ls.Now()

	profile, err := ls.locationDao.GetPopularTimes(ctx, id, now.Weekday())
	if err != nil {
		ls.log.Warn().Err(err).Str("location_id", id).Msg("popular times cache read failed")
	}
	if len(profile) != 24 {
		profile = simulator.PopularTimes(static.Category, id, now)
		if err := ls.locationDao.SetPopularTimes(ctx, id, now.Weekday(), profile); err != nil {
			ls.log.Warn().Err(err).Str("location_id", id).Msg("popular times cache write failed")
		}
	}
	for i := range profile {
		profile[i].IsNow = i == now.Hour()
	}

	return &models.PopularTimesResponse{
		LocationID:   id,
		BestTime:     simulator.BestTimeToVisit(profile, static.Category),
		PopularTimes: profile,
	}, nil
}

func (ls *LocationService) GetCrowdStats(ctx context.Context) *models.CrowdStats {
	now := ls.Now()
	stats := &models.CrowdStats{GeneratedAt: now}
	for _, l := range ls.sim.Snapshot(now) {
		switch l.CrowdLevel {
		case location.CrowdLevelLow:
			stats.Low++
		case location.CrowdLevelMedium:
			stats.Medium++
		case location.CrowdLevelHigh:
			stats.High++
		}
		stats.Total++
		stats.TotalPeople += l.CurrentCount
	}
	return stats
}

// CompareBestTimes lines up the profiles of up to MAX_COMPARE_LOCATIONS locations.
func (ls *LocationService) CompareBestTimes(ctx context.Context, ids []string) ([]models.BestTimeComparison, error) {
	if len(ids) > MAX_COMPARE_LOCATIONS {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyLocations, len(ids), MAX_COMPARE_LOCATIONS)
	}

	now := ls.Now()
	out := make([]models.BestTimeComparison, 0, len(ids))
	for _, id := range ids {
		static, ok := ls.findStatic(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, id)
		}
		l := ls.sim.Derive(static, now)
		out = append(out, models.BestTimeComparison{
			LocationID:   l.ID,
			Name:         l.Name,
			Category:     l.Category,
			CrowdLevel:   l.CrowdLevel,
			BestTime:     l.BestTime,
			PopularTimes: l.PopularTimes,
		})
	}
	return out, nil
}

// GetNearby returns the indexed locations within radiusKm of (lat, lng), nearest first.
func (ls *LocationService) GetNearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyLocation, error) {
	indexed, err := ls.locationDao.GetNearbyLocations(ctx, lat, lng, radiusKm)
	if err != nil {
		return nil, err
	}

	now := ls.Now()
	out := make([]models.NearbyLocation, 0, len(indexed))
	for _, l := range indexed {
		static, ok := ls.findStatic(l.ID)
		if !ok {
			ls.log.Debug().Str("location_id", l.ID).Msg("indexed location no longer in catalog")
			continue
		}
		derived := ls.sim.Derive(static, now)
		derived.PopularTimes = nil
		out = append(out, models.NearbyLocation{
			Location:   derived,
			DistanceKm: util.DistanceKm(lat, lng, derived.Lat, derived.Lng),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}

func (ls *LocationService) Categories() []location.CategoryInfo {
	out := make([]location.CategoryInfo, 0, len(location.AllCategories))
	for _, c := range location.AllCategories {
		out = append(out, location.CategoryInfo{ID: c, Label: c.Label(), Icon: c.Icon()})
	}
	return out
}

func (ls *LocationService) findStatic(id string) (location.Location, bool) {
	for _, l := range ls.sim.Catalog() {
		if l.ID == id {
			return l, true
		}
	}
	return location.Location{}, false
}
