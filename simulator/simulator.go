// Package simulator generates believable crowd data for the location catalog
// without any sensor backend. Everything except the live jitter in
// CurrentOccupancy is a pure function of its inputs and the time passed in.
package simulator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"crowd-server/models/location"
)

const (
	forceHighRatio = 0.95

	lowThresholdPct    = 30
	mediumThresholdPct = 60
)

// Simulator derives occupancy, profiles and recommendations for a catalog.
type Simulator struct {
	catalog []location.Location
	jitter  func() float64
}

type Option func(*Simulator)

// WithCatalog replaces the compiled-in catalog.
func WithCatalog(catalog []location.Location) Option {
	return func(s *Simulator) {
		s.catalog = catalog
	}
}

// WithJitter replaces the live sensor noise source. fn must return a value in [-0.01, 0.01].
func WithJitter(fn func() float64) Option {
	return func(s *Simulator) {
		s.jitter = fn
	}
}

func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		catalog: DefaultCatalog(),
		jitter:  liveJitter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func liveJitter() float64 {
	return (rand.Float64() - 0.5) * 0.02
}

// Catalog returns a copy of the static location records.
func (s *Simulator) Catalog() []location.Location {
	out := make([]location.Location, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Snapshot derives every catalog location at now.
func (s *Simulator) Snapshot(now time.Time) []location.Location {
	out := make([]location.Location, 0, len(s.catalog))
	for _, loc := range s.catalog {
		out = append(out, s.Derive(loc, now))
	}
	return out
}

// Derive fills in the derived fields of a static location record.
func (s *Simulator) Derive(loc location.Location, now time.Time) location.Location {
	count := s.CurrentOccupancy(loc.Capacity, loc.Category, loc.ID, now)
	if loc.ForceHigh {
		count = int(math.Floor(float64(loc.Capacity) * forceHighRatio))
	}
	profile := PopularTimes(loc.Category, loc.ID, now)

	loc.CurrentCount = count
	loc.CrowdLevel = CrowdLevelFor(count, loc.Capacity)
	loc.Trend = TrendFor(loc.ID)
	loc.PopularTimes = profile
	loc.BestTime = BestTimeToVisit(profile, loc.Category)
	return loc
}

// TimeMultiplier returns how busy a location is at hour on weekday, in [0,1].
// Hours where the category's base curve is zero always return exactly zero.
func TimeMultiplier(hour int, category location.Category, locationID string, weekday time.Weekday) float64 {
	pattern := BasePattern(category)
	if hour < 0 || hour > 23 {
		return 0
	}
	base := pattern[hour]
	if base == 0 {
		return 0
	}

	seed := seedIDNum(locationID)*9973 + uint64(hour)*7919 + uint64(weekday)*1337
	rng := NewSeededRandom(seed)

	amplitude := 0.7 + rng.Next()*0.6
	noise := (rng.Next() - 0.5) * 0.35

	value := base*dayMultiplier(category, hour, weekday)*amplitude + noise
	return clamp01(value)
}

// CurrentOccupancy returns the head count at now, in [0, capacity].
// The result carries live jitter and is not repeatable across calls.
func (s *Simulator) CurrentOccupancy(capacity int, category location.Category, locationID string, now time.Time) int {
	multiplier := TimeMultiplier(now.Hour(), category, locationID, now.Weekday())

	minuteWave := math.Sin(float64(now.Minute())/15*math.Pi) * 0.05
	bias := PopularityBias(locationID)

	count := int(math.Floor(float64(capacity) * (multiplier + minuteWave + s.jitter()) * bias))
	return max(0, min(capacity, count))
}

// PopularityBias is the fixed per-location multiplier in [0.8, 1.2).
func PopularityBias(locationID string) float64 {
	n, ok := leadingInt(locationID)
	if !ok || n == 0 {
		n = 1
	}
	return 0.8 + float64((n*37)%40)/100
}

// CrowdLevelFor classifies count/capacity: <=30% low, <=60% medium, else high.
func CrowdLevelFor(count, capacity int) location.CrowdLevel {
	if capacity <= 0 {
		panic(fmt.Sprintf("simulator: capacity must be positive, got %d", capacity))
	}
	// Compared in integers so that exactly 30% and 60% land on the lower level.
	scaled, limit := int64(count)*100, int64(capacity)
	switch {
	case scaled <= lowThresholdPct*limit:
		return location.CrowdLevelLow
	case scaled <= mediumThresholdPct*limit:
		return location.CrowdLevelMedium
	default:
		return location.CrowdLevelHigh
	}
}

// TrendFor derives a stable trend from the location id.
func TrendFor(locationID string) location.Trend {
	n, _ := leadingInt(locationID)
	v := (n * 7) % 10
	switch {
	case v > 6:
		return location.TrendRising
	case v > 3:
		return location.TrendFalling
	default:
		return location.TrendStable
	}
}

// PopularTimes builds the 24 hour profile for now's weekday, marking now's hour.
func PopularTimes(category location.Category, locationID string, now time.Time) []location.PopularTime {
	weekday := now.Weekday()
	current := now.Hour()

	profile := make([]location.PopularTime, 24)
	for hour := 0; hour < 24; hour++ {
		v := TimeMultiplier(hour, category, locationID, weekday)
		profile[hour] = location.PopularTime{
			Hour:  fmt.Sprintf("%02d:00", hour),
			Score: int(math.Round(v * 100)),
			IsNow: hour == current,
		}
	}
	return profile
}

// BestTimeToVisit picks the quietest two hour window inside the category's
// operating hours. Ties keep the earliest window.
func BestTimeToVisit(profile []location.PopularTime, category location.Category) string {
	hours := HoursFor(category)

	best := hours.Open
	minAvg := math.Inf(1)
	for i := hours.Open; i < hours.Close-1; i++ {
		avg := float64(profile[i].Score+profile[i+1].Score) / 2
		if avg < minAvg {
			minAvg = avg
			best = i
		}
	}

	end := min(best+2, hours.Close)
	return FormatHour(best) + " - " + FormatHour(end)
}

// FormatHour renders an hour of day (0-24) as a 12 hour label.
func FormatHour(h int) string {
	switch {
	case h == 0 || h == 24:
		return "12am"
	case h == 12:
		return "12pm"
	case h > 12:
		return fmt.Sprintf("%dpm", h-12)
	default:
		return fmt.Sprintf("%dam", h)
	}
}

// seedIDNum is the numeric id used for seeding, falling back to the first byte.
func seedIDNum(locationID string) uint64 {
	if n, ok := leadingInt(locationID); ok && n != 0 {
		return uint64(n)
	}
	if locationID == "" {
		return 0
	}
	return uint64(locationID[0])
}

// leadingInt parses the leading decimal digits of s.
func leadingInt(s string) (int, bool) {
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		if digits > 9 {
			break
		}
	}
	return n, digits > 0
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
