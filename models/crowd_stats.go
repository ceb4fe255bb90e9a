package models

import "time"

// CrowdStats summarises a snapshot by crowd level.
type CrowdStats struct {
	Low         int       `json:"low"`
	Medium      int       `json:"medium"`
	High        int       `json:"high"`
	Total       int       `json:"total"`
	TotalPeople int       `json:"total_people"`
	GeneratedAt time.Time `json:"generated_at"`
}
