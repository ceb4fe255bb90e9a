package models

import (
	"time"

	"crowd-server/models/location"
)

// Alert asks to be told when a location's crowd falls to Condition.
type Alert struct {
	ID           string              `json:"id"`
	LocationID   string              `json:"location_id"`
	LocationName string              `json:"location_name"`
	Condition    location.CrowdLevel `json:"condition"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
	// Triggered is set while the condition holds, so an alert fires once per
	// crossing rather than on every refresh.
	Triggered bool `json:"triggered"`
}

// Matches reports whether a location at level satisfies the alert condition.
// A "medium" alert also fires when the crowd is already low.
func (a *Alert) Matches(level location.CrowdLevel) bool {
	switch a.Condition {
	case location.CrowdLevelLow:
		return level == location.CrowdLevelLow
	case location.CrowdLevelMedium:
		return level == location.CrowdLevelLow || level == location.CrowdLevelMedium
	}
	return false
}

// CreateAlertRequest is the body of POST /v1/alerts.
type CreateAlertRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	Condition  string `json:"condition" validate:"required,oneof=low medium"`
}

// SetAlertActiveRequest is the body of PUT /v1/alerts/{id}/active.
type SetAlertActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// TriggeredAlert pairs an alert with the location state that fired it.
type TriggeredAlert struct {
	Alert    Alert             `json:"alert"`
	Location location.Location `json:"location"`
}
