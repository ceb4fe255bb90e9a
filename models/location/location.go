package location

import "fmt"

// CrowdLevel is the coarse classification of occupancy.
type CrowdLevel string

const (
	CrowdLevelLow    CrowdLevel = "low"
	CrowdLevelMedium CrowdLevel = "medium"
	CrowdLevelHigh   CrowdLevel = "high"
)

// Rank orders levels from busiest (0) to quietest (2).
func (l CrowdLevel) Rank() int {
	switch l {
	case CrowdLevelHigh:
		return 0
	case CrowdLevelMedium:
		return 1
	default:
		return 2
	}
}

// Color is the hex color the dashboard paints the level with.
func (l CrowdLevel) Color() string {
	switch l {
	case CrowdLevelLow:
		return "#10B981"
	case CrowdLevelMedium:
		return "#F59E0B"
	default:
		return "#EF4444"
	}
}

// Trend is the direction a location's crowd is heading.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// PopularTime is one hour of a 24 hour popularity profile.
type PopularTime struct {
	Hour  string `json:"hour"`
	Score int    `json:"score"`
	IsNow bool   `json:"is_now"`
}

// Location is a point of interest. Static fields come from the catalog, the
// rest is recomputed by the simulator on every read.
type Location struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Category  Category `json:"type"`
	Capacity  int      `json:"capacity"`
	Distance  string   `json:"distance,omitempty"`
	ForceHigh bool     `json:"force_high,omitempty"`

	CurrentCount int           `json:"current_count"`
	CrowdLevel   CrowdLevel    `json:"crowd_level"`
	Trend        Trend         `json:"trend"`
	BestTime     string        `json:"best_time"`
	PopularTimes []PopularTime `json:"popular_times,omitempty"`
}

func (l *Location) ToString() string {
	return fmt.Sprintf("Location(id=%s, name=%s, type=%s, count=%d/%d, level=%s)",
		l.ID, l.Name, l.Category, l.CurrentCount, l.Capacity, l.CrowdLevel)
}
