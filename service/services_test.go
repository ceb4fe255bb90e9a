package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"crowd-server/dao/redis"
	"crowd-server/db"
	"crowd-server/models/location"
	"crowd-server/simulator"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// monday19 is Monday 2026-10-19 19:00 IST. At that time with no jitter
// "1" holds 4935 people (high), "2" is forced to 7600 (high) and the
// museum "55" is closed (low).
var monday19 = time.Date(2026, time.October, 19, 19, 0, 0, 0, ist)

var testCatalog = []location.Location{
	{ID: "1", Name: "Express Avenue Mall", Lat: 13.0569, Lng: 80.2633, Category: location.CategoryMall, Capacity: 5000, Distance: "2.3 km"},
	{ID: "2", Name: "Phoenix MarketCity", Lat: 12.9941, Lng: 80.2187, Category: location.CategoryMall, Capacity: 8000, Distance: "5.1 km", ForceHigh: true},
	{ID: "55", Name: "Government Museum", Lat: 13.0695, Lng: 80.2547, Category: location.CategoryMuseum, Capacity: 5000, Distance: "1.3 km"},
}

type recordedMessage struct {
	Type string
	Data interface{}
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []recordedMessage
}

func (b *recordingBroadcaster) Broadcast(messageType string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, recordedMessage{Type: messageType, Data: data})
}

func (b *recordingBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.messages))
	for i, m := range b.messages {
		out[i] = m.Type
	}
	return out
}

type fixture struct {
	ctx         context.Context
	dao         *redis.RedisLocationDAO
	locations   *LocationService
	alerts      *AlertService
	refresher   *SnapshotRefresherService
	broadcaster *recordingBroadcaster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dao := redis.NewRedisLocationDAO(db.NewMockRedisClient())
	sim := simulator.NewSimulator(
		simulator.WithCatalog(testCatalog),
		simulator.WithJitter(func() float64 { return 0 }),
	)

	locations := NewLocationService(sim, dao, ist)
	locations.SetClock(func() time.Time { return monday19 })
	alerts := NewAlertService(dao, locations)
	broadcaster := &recordingBroadcaster{}

	return &fixture{
		ctx:         context.Background(),
		dao:         dao,
		locations:   locations,
		alerts:      alerts,
		refresher:   NewSnapshotRefresherService(locations, alerts, dao, broadcaster),
		broadcaster: broadcaster,
	}
}

func ids(locs []location.Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.ID
	}
	return out
}

