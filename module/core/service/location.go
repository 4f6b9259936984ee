package service

import (
	"context"
	"log"
	"time"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database"
)

type geofenceChecker interface {
	Check(ctx context.Context, touristID string, lat, lng float64) (*GeofenceResult, error)
}

// LocationService drives position updates end to end: geofence evaluation,
// status persistence, and dashboard fan-out. It also serves the read side for
// the monitoring dashboard.
type LocationService struct {
	locations   database.LocationRepository
	geofence    geofenceChecker
	broadcaster Broadcaster
}

func NewLocationService(locations database.LocationRepository, geofence geofenceChecker, b Broadcaster) *LocationService {
	return &LocationService{
		locations:   locations,
		geofence:    geofence,
		broadcaster: b,
	}
}

// UpdateLocation processes one position update. The geofence check persists
// the position and derived status and raises any warranted alert; on top of
// that every processed update is broadcast to the dashboards. Broadcast
// failure never fails the update.
func (s *LocationService) UpdateLocation(ctx context.Context, touristID string, lat, lng float64) (*GeofenceResult, error) {
	result, err := s.geofence.Check(ctx, touristID, lat, lng)
	if err != nil {
		return nil, err
	}

	update := domain.LocationUpdate{
		Type:       domain.EventLocationUpdate,
		TouristID:  touristID,
		Lat:        lat,
		Lng:        lng,
		Status:     result.Status,
		Violations: result.Violations,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.broadcaster.BroadcastJSON(update); err != nil {
		log.Printf("broadcast location update: %v", err)
	}

	return result, nil
}

// RaiseAlert records a manually reported status (SOS, reported geofence
// breach) and broadcasts the generic alert event.
func (s *LocationService) RaiseAlert(ctx context.Context, touristID, message string, status domain.Status) error {
	if err := s.locations.UpdateStatus(ctx, touristID, status, time.Now().UTC()); err != nil {
		return err
	}

	alert := domain.Alert{
		Type:      domain.EventAlert,
		TouristID: touristID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.broadcaster.BroadcastJSON(alert); err != nil {
		log.Printf("broadcast alert: %v", err)
	}
	return nil
}

func (s *LocationService) GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error) {
	return s.locations.GetLatest(ctx, touristID)
}

// GetAllLocations returns every tourist's latest position for the dashboard map.
func (s *LocationService) GetAllLocations(ctx context.Context) ([]domain.DashboardLocation, error) {
	return s.locations.GetAll(ctx)
}
