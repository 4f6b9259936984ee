package domain

import "time"

// EventType discriminates broadcast payloads; dashboard clients key their
// behavior off this field.
type EventType string

const (
	EventGeofenceAlert    EventType = "geofence_alert"
	EventLocationUpdate   EventType = "location_update"
	EventRouteDeviation   EventType = "route_deviation"
	EventAlert            EventType = "alert"
	EventConnectionStatus EventType = "connection_status"
)

// GeofenceAlert is broadcast when a tourist's position puts them in a
// warning or danger zone.
type GeofenceAlert struct {
	Type       EventType   `json:"type"`
	TouristID  string      `json:"tourist_id"`
	AlertLevel Severity    `json:"alert_level"`
	Status     Status      `json:"status"`
	Violations []Violation `json:"violations"`
	Location   Coordinate  `json:"location"`
	Timestamp  time.Time   `json:"timestamp"`
	Message    string      `json:"message"`
}

// LocationUpdate is broadcast on every processed position update.
type LocationUpdate struct {
	Type       EventType   `json:"type"`
	TouristID  string      `json:"tourist_id"`
	Lat        float64     `json:"lat"`
	Lng        float64     `json:"lng"`
	Status     Status      `json:"status"`
	Violations []Violation `json:"geofence_violations"`
	Timestamp  time.Time   `json:"timestamp"`
}

// RouteDeviation is broadcast when a tourist strays beyond the deviation
// threshold from their planned location for the day.
type RouteDeviation struct {
	Type               EventType  `json:"type"`
	TouristID          string     `json:"tourist_id"`
	CurrentLocation    Coordinate `json:"current_location"`
	PlannedLocation    Coordinate `json:"planned_location"`
	DeviationDistance  float64    `json:"deviation_distance"`
	PlannedDestination string     `json:"planned_destination"`
	Timestamp          time.Time  `json:"timestamp"`
	Message            string     `json:"message"`
}

// Alert is the generic manually-raised alert (SOS, reported geofence breach).
type Alert struct {
	Type      EventType `json:"type"`
	TouristID string    `json:"tourist_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ConnectionStatus greets a dashboard observer on connect.
type ConnectionStatus struct {
	Type      EventType `json:"type"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
