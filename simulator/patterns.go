package simulator

import (
	"fmt"
	"time"

	"crowd-server/models/location"
)

// Hand-authored busyness per hour of day (index 0 = midnight).
var (
	mallPattern = [24]float64{
		0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.05, 0.15, 0.35,
		0.55, 0.6, 0.5, 0.45, 0.55, 0.7,
		0.85, 0.9, 0.75, 0.5, 0.2, 0.0,
	}
	foodCourtPattern = [24]float64{
		0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.1, 0.2, 0.5,
		0.95, 0.85, 0.6, 0.4, 0.35, 0.5,
		0.75, 0.9, 0.8, 0.5, 0.15, 0.0,
	}
	marketPattern = [24]float64{
		0.0, 0.0, 0.0, 0.05, 0.15, 0.4,
		0.7, 0.85, 0.75, 0.6, 0.5, 0.45,
		0.4, 0.4, 0.45, 0.55, 0.7, 0.85,
		0.75, 0.55, 0.35, 0.15, 0.0, 0.0,
	}
	transitPattern = [24]float64{
		0.05, 0.02, 0.02, 0.05, 0.15, 0.4,
		0.7, 0.9, 0.95, 0.75, 0.5, 0.4,
		0.45, 0.45, 0.5, 0.6, 0.75, 0.95,
		0.9, 0.7, 0.5, 0.35, 0.2, 0.1,
	}
	parkPattern = [24]float64{
		0.0, 0.0, 0.0, 0.0, 0.05, 0.35,
		0.75, 0.85, 0.6, 0.35, 0.25, 0.2,
		0.15, 0.15, 0.2, 0.3, 0.55, 0.8,
		0.7, 0.4, 0.0, 0.0, 0.0, 0.0,
	}
	museumPattern = [24]float64{
		0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.15, 0.35, 0.6,
		0.7, 0.75, 0.65, 0.5, 0.35, 0.1,
		0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	}
	tollPattern = [24]float64{
		0.15, 0.1, 0.08, 0.1, 0.25, 0.5,
		0.75, 0.9, 0.85, 0.7, 0.55, 0.5,
		0.5, 0.5, 0.55, 0.65, 0.8, 0.95,
		0.85, 0.65, 0.45, 0.35, 0.25, 0.2,
	}
)

// BasePattern returns the daily curve for a category.
// Panics on a category outside the closed set.
func BasePattern(c location.Category) *[24]float64 {
	switch c {
	case location.CategoryMall:
		return &mallPattern
	case location.CategoryFoodCourt:
		return &foodCourtPattern
	case location.CategoryPark:
		return &parkPattern
	case location.CategoryTransit:
		return &transitPattern
	case location.CategoryMarket:
		return &marketPattern
	case location.CategoryMuseum:
		return &museumPattern
	case location.CategoryToll:
		return &tollPattern
	}
	panic(fmt.Sprintf("simulator: no base pattern for category %q", string(c)))
}

// OperatingHours is the open window of a category. Close is exclusive and may be 24.
type OperatingHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// HoursFor returns the operating window for a category.
// Panics on a category outside the closed set.
func HoursFor(c location.Category) OperatingHours {
	switch c {
	case location.CategoryMall, location.CategoryFoodCourt:
		return OperatingHours{Open: 10, Close: 22}
	case location.CategoryPark:
		return OperatingHours{Open: 5, Close: 19}
	case location.CategoryTransit:
		return OperatingHours{Open: 4, Close: 23}
	case location.CategoryMarket:
		return OperatingHours{Open: 6, Close: 21}
	case location.CategoryMuseum:
		return OperatingHours{Open: 9, Close: 17}
	case location.CategoryToll:
		return OperatingHours{Open: 0, Close: 24}
	}
	panic(fmt.Sprintf("simulator: no operating hours for category %q", string(c)))
}

// dayMultiplier scales the base curve by weekday.
func dayMultiplier(c location.Category, hour int, weekday time.Weekday) float64 {
	if isWeekend(weekday) {
		switch c {
		case location.CategoryMall, location.CategoryPark, location.CategoryFoodCourt:
			return 1.4
		case location.CategoryTransit:
			return 0.7
		}
		return 1.0
	}
	if c == location.CategoryTransit || c == location.CategoryToll {
		if (hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 20) {
			return 1.3
		}
	}
	return 1.0
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
