package domain

import (
	"errors"
	"time"
)

var ErrTouristNotFound = errors.New("tourist not found")

// ItineraryDay is one planned day of a tourist's trip. Date is a
// YYYY-MM-DD calendar date.
type ItineraryDay struct {
	Date          string `json:"date"`
	Location      string `json:"location"`
	Activities    string `json:"activities"`
	Accommodation string `json:"accommodation"`
}

type Tourist struct {
	TouristID     string         `json:"tourist_id"`
	FullName      string         `json:"full_name"`
	Nationality   string         `json:"nationality"`
	Destination   string         `json:"destination"`
	Accommodation string         `json:"accommodation"`
	Itinerary     []ItineraryDay `json:"itinerary"`
}

// TouristLocation is the latest known position and derived safety status for
// one tourist. Persistence is last-write-wins keyed by TouristID.
type TouristLocation struct {
	TouristID   string    `json:"tourist_id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Status      Status    `json:"status"`
	LastUpdated time.Time `json:"last_updated"`
}

// DashboardLocation is the monitoring-dashboard view of a tourist's latest
// position.
type DashboardLocation struct {
	TouristID string  `json:"tourist_id"`
	FullName  string  `json:"full_name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Status    Status  `json:"status"`
}
