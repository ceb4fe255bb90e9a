package simulator

import (
	"strings"
	"testing"
	"time"

	"crowd-server/models/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// monday19 is Monday 2026-10-19 19:00 IST.
var monday19 = time.Date(2026, time.October, 19, 19, 0, 0, 0, ist)

func noJitter() float64 { return 0 }

func TestSeededRandom_GoldenValues(t *testing.T) {
	tests := []struct {
		seed   uint64
		states []uint64
		draws  []float64
	}{
		{
			seed:   0,
			states: []uint64{12345, 1406932606, 654583775, 1449466924, 229283573},
			draws:  []float64{5.748588591814041e-06, 0.6551540484651923, 0.30481432331725955, 0.6749606337398291, 0.10676848376169801},
		},
		{
			seed:   12345,
			states: []uint64{1406932606, 654583775, 1449466924, 229283573, 1109335178},
			draws:  []float64{0.6551540484651923, 0.30481432331725955, 0.6749606337398291, 0.10676848376169801, 0.5165744470432401},
		},
	}

	for _, tt := range tests {
		rng := NewSeededRandom(tt.seed)
		for i := range tt.draws {
			got := rng.Next()
			assert.Equal(t, tt.states[i], rng.State(), "seed %d state %d", tt.seed, i)
			assert.Equal(t, tt.draws[i], got, "seed %d draw %d", tt.seed, i)
		}
	}
}

func TestSeededRandom_Repeatable(t *testing.T) {
	a, b := NewSeededRandom(987654321), NewSeededRandom(987654321)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestTimeMultiplier_ClosedHoursAreZero(t *testing.T) {
	for _, c := range location.AllCategories {
		pattern := BasePattern(c)
		for hour := 0; hour < 24; hour++ {
			if pattern[hour] != 0 {
				continue
			}
			for day := time.Sunday; day <= time.Saturday; day++ {
				for _, id := range []string{"1", "21", "70", "abc"} {
					assert.Equal(t, 0.0, TimeMultiplier(hour, c, id, day), "%s hour %d day %s id %s", c, hour, day, id)
				}
			}
		}
	}

	assert.Equal(t, 0.0, TimeMultiplier(3, location.CategoryMall, "1", time.Wednesday))
	assert.Equal(t, 0.0, TimeMultiplier(2, location.CategoryPark, "29", time.Sunday))
}

func TestTimeMultiplier_InRange(t *testing.T) {
	for _, c := range location.AllCategories {
		for hour := 0; hour < 24; hour++ {
			for day := time.Sunday; day <= time.Saturday; day++ {
				v := TimeMultiplier(hour, c, "42", day)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestTimeMultiplier_MallWeekdayEvening(t *testing.T) {
	v := TimeMultiplier(19, location.CategoryMall, "1", time.Monday)
	assert.InDelta(t, 0.8436707269540056, v, 1e-12)
	assert.GreaterOrEqual(t, v, 0.455)
	assert.LessOrEqual(t, v, 1.0)

	// Saturday boost pushes the same slot over the ceiling.
	assert.Equal(t, 1.0, TimeMultiplier(19, location.CategoryMall, "1", time.Saturday))
}

func TestTimeMultiplier_StableWithinDay(t *testing.T) {
	a := TimeMultiplier(8, location.CategoryTransit, "31", time.Tuesday)
	b := TimeMultiplier(8, location.CategoryTransit, "31", time.Tuesday)
	assert.Equal(t, a, b)
}

func TestTimeMultiplier_UnknownCategoryPanics(t *testing.T) {
	assert.Panics(t, func() {
		TimeMultiplier(12, location.Category("stadium"), "1", time.Monday)
	})
}

func TestCurrentOccupancy_Pinned(t *testing.T) {
	sim := NewSimulator(WithJitter(noJitter))
	// floor(5000 * 0.84367 * 1.17)
	assert.Equal(t, 4935, sim.CurrentOccupancy(5000, location.CategoryMall, "1", monday19))
}

func TestCurrentOccupancy_Bounds(t *testing.T) {
	jitters := []func() float64{
		func() float64 { return -0.01 },
		func() float64 { return 0.01 },
		liveJitter,
	}
	start := time.Date(2026, time.October, 18, 0, 0, 0, 0, ist)

	for _, j := range jitters {
		sim := NewSimulator(WithJitter(j))
		for _, loc := range sim.Catalog() {
			for m := 0; m < 7*24*60; m += 37 {
				now := start.Add(time.Duration(m) * time.Minute)
				count := sim.CurrentOccupancy(loc.Capacity, loc.Category, loc.ID, now)
				require.GreaterOrEqual(t, count, 0)
				require.LessOrEqual(t, count, loc.Capacity)
			}
		}
	}
}

func TestDerive_ForceHigh(t *testing.T) {
	sim := NewSimulator()
	loc := location.Location{ID: "2", Category: location.CategoryMall, Capacity: 8000, ForceHigh: true}

	for _, hour := range []int{0, 3, 12, 19, 23} {
		now := time.Date(2026, time.October, 19, hour, 17, 0, 0, ist)
		got := sim.Derive(loc, now)
		assert.Equal(t, 7600, got.CurrentCount)
		assert.Equal(t, location.CrowdLevelHigh, got.CrowdLevel)
	}
}

func TestCrowdLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		count, capacity int
		want            location.CrowdLevel
	}{
		{0, 100, location.CrowdLevelLow},
		{30, 100, location.CrowdLevelLow},
		{3000, 10000, location.CrowdLevelLow},
		{3001, 10000, location.CrowdLevelMedium},
		{300000001, 1000000000, location.CrowdLevelMedium},
		{60, 100, location.CrowdLevelMedium},
		{600000001, 1000000000, location.CrowdLevelHigh},
		{61, 100, location.CrowdLevelHigh},
		{100, 100, location.CrowdLevelHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CrowdLevelFor(tt.count, tt.capacity), "%d/%d", tt.count, tt.capacity)
	}
}

func TestCrowdLevelFor_Monotonic(t *testing.T) {
	capacity := 997
	prev := CrowdLevelFor(0, capacity)
	for count := 1; count <= capacity; count++ {
		cur := CrowdLevelFor(count, capacity)
		require.LessOrEqual(t, cur.Rank(), prev.Rank(), "level went down at %d", count)
		prev = cur
	}
}

func TestPopularTimes_Shape(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, time.October, 19, hour, 30, 0, 0, ist)
		profile := PopularTimes(location.CategoryTransit, "31", now)
		require.Len(t, profile, 24)

		nowCount := 0
		for i, p := range profile {
			assert.True(t, strings.HasSuffix(p.Hour, ":00"))
			assert.GreaterOrEqual(t, p.Score, 0)
			assert.LessOrEqual(t, p.Score, 100)
			if p.IsNow {
				nowCount++
				assert.Equal(t, hour, i)
			}
		}
		assert.Equal(t, 1, nowCount)
	}
}

func TestPopularTimes_MuseumWednesday(t *testing.T) {
	now := time.Date(2026, time.October, 21, 10, 0, 0, 0, ist)
	profile := PopularTimes(location.CategoryMuseum, "55", now)

	want := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 47, 63, 70, 63, 50, 62, 13, 15, 0, 0, 0, 0, 0, 0}
	for i, p := range profile {
		assert.Equal(t, want[i], p.Score, "hour %d", i)
	}
	assert.Equal(t, "9am - 11am", BestTimeToVisit(profile, location.CategoryMuseum))
}

func TestBestTimeToVisit_StaysInsideOperatingHours(t *testing.T) {
	start := time.Date(2026, time.October, 18, 12, 0, 0, 0, ist)
	for d := 0; d < 7; d++ {
		now := start.AddDate(0, 0, d)
		for _, loc := range DefaultCatalog() {
			if loc.Category != location.CategoryMuseum {
				continue
			}
			profile := PopularTimes(loc.Category, loc.ID, now)
			got := BestTimeToVisit(profile, loc.Category)

			parts := strings.Split(got, " - ")
			require.Len(t, parts, 2)
			startHour := parseLabel(t, parts[0])
			endHour := parseLabel(t, parts[1])
			assert.GreaterOrEqual(t, startHour, 9, got)
			assert.LessOrEqual(t, endHour, 17, got)
		}
	}
}

func TestBestTimeToVisit_FirstMinimumWins(t *testing.T) {
	profile := make([]location.PopularTime, 24)
	for i := range profile {
		profile[i].Score = 50
	}
	assert.Equal(t, "10am - 12pm", BestTimeToVisit(profile, location.CategoryMall))

	profile[20].Score, profile[21].Score = 0, 0
	assert.Equal(t, "8pm - 10pm", BestTimeToVisit(profile, location.CategoryMall))
}

func TestBestTimeToVisit_TollClampsAtMidnight(t *testing.T) {
	profile := make([]location.PopularTime, 24)
	for i := range profile {
		profile[i].Score = 90
	}
	profile[22].Score, profile[23].Score = 1, 1
	assert.Equal(t, "10pm - 12am", BestTimeToVisit(profile, location.CategoryToll))
}

func TestFormatHour(t *testing.T) {
	cases := map[int]string{0: "12am", 5: "5am", 11: "11am", 12: "12pm", 13: "1pm", 23: "11pm", 24: "12am"}
	for h, want := range cases {
		assert.Equal(t, want, FormatHour(h))
	}
}

func TestTrendFor(t *testing.T) {
	assert.Equal(t, location.TrendRising, TrendFor("1"))  // 7
	assert.Equal(t, location.TrendFalling, TrendFor("2")) // 4
	assert.Equal(t, location.TrendStable, TrendFor("3"))  // 1
	assert.Equal(t, location.TrendStable, TrendFor("x"))
}

func TestPopularityBias(t *testing.T) {
	assert.InDelta(t, 1.17, PopularityBias("1"), 1e-9)
	assert.InDelta(t, 1.14, PopularityBias("2"), 1e-9)
	assert.InDelta(t, 1.17, PopularityBias("abc"), 1e-9)
	for _, loc := range DefaultCatalog() {
		b := PopularityBias(loc.ID)
		assert.GreaterOrEqual(t, b, 0.8)
		assert.Less(t, b, 1.2)
	}
}

func TestSnapshot_DoesNotMutateCatalog(t *testing.T) {
	sim := NewSimulator(WithJitter(noJitter))
	snap := sim.Snapshot(monday19)

	require.Len(t, snap, len(DefaultCatalog()))
	for _, loc := range snap {
		assert.Len(t, loc.PopularTimes, 24)
		assert.NotEmpty(t, loc.BestTime)
	}
	for _, loc := range sim.Catalog() {
		assert.Empty(t, loc.PopularTimes)
		assert.Zero(t, loc.CurrentCount)
	}
}

func TestDefaultCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, loc := range DefaultCatalog() {
		assert.False(t, seen[loc.ID], "duplicate id %s", loc.ID)
		seen[loc.ID] = true
		assert.Positive(t, loc.Capacity)
		assert.NotPanics(t, func() { BasePattern(loc.Category) })
	}
	assert.Len(t, seen, 70)
}

func parseLabel(t *testing.T, label string) int {
	t.Helper()
	for h := 1; h <= 24; h++ {
		if FormatHour(h) == label {
			return h
		}
	}
	t.Fatalf("unparseable hour label %q", label)
	return -1
}
