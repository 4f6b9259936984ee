package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/publisher"
)

const earthRadiusMeters = 6371000

// Broadcaster fans an event out to the connected dashboard observers.
// Delivery failures are absorbed by the implementation; only payload
// marshalling can error.
type Broadcaster interface {
	BroadcastJSON(v any) error
}

type GeofenceService struct {
	zones       []domain.Zone
	locations   database.LocationRepository
	publisher   publisher.AlertPublisher
	broadcaster Broadcaster
}

func NewGeofenceService(zones []domain.Zone, locations database.LocationRepository, pub publisher.AlertPublisher, b Broadcaster) *GeofenceService {
	return &GeofenceService{
		zones:       zones,
		locations:   locations,
		publisher:   pub,
		broadcaster: b,
	}
}

// Zones returns the zone catalog in insertion order.
func (s *GeofenceService) Zones() []domain.Zone {
	return s.zones
}

// Evaluate reports every zone containing the position, in catalog order.
// The boundary is inclusive: a point exactly on the radius is inside.
func (s *GeofenceService) Evaluate(lat, lng float64) []domain.Violation {
	var violations []domain.Violation
	for _, z := range s.zones {
		dist := haversine(lat, lng, z.Center.Lat, z.Center.Lng)
		if dist <= z.RadiusMeters {
			violations = append(violations, domain.Violation{
				Zone:               z,
				DistanceFromCenter: round2(dist),
				ViolationType:      domain.ViolationInsideZone,
			})
		}
	}
	return violations
}

// Classify reduces a violation set to an overall status and alert severity.
// Tier priority is danger > warning > safe regardless of distance or order.
func Classify(violations []domain.Violation) (domain.Status, domain.Severity) {
	if len(violations) == 0 {
		return domain.StatusSafe, domain.SeverityNone
	}
	hasDanger, hasWarning := false, false
	for _, v := range violations {
		switch v.Zone.ZoneType {
		case domain.TierDanger:
			hasDanger = true
		case domain.TierWarning:
			hasWarning = true
		}
	}
	switch {
	case hasDanger:
		return domain.StatusDanger, domain.SeverityHigh
	case hasWarning:
		return domain.StatusWarning, domain.SeverityMedium
	default:
		return domain.StatusSafe, domain.SeverityLow
	}
}

// Recommendations returns the advisory list for a violation set. The category
// depends only on whether danger or warning zones are present.
func Recommendations(violations []domain.Violation) []string {
	hasDanger, hasWarning := false, false
	for _, v := range violations {
		switch v.Zone.ZoneType {
		case domain.TierDanger:
			hasDanger = true
		case domain.TierWarning:
			hasWarning = true
		}
	}
	switch {
	case hasDanger:
		return []string{
			"You are in a high-risk area. Consider leaving immediately.",
			"Keep emergency contacts readily available.",
			"Avoid traveling alone in this area.",
			"Use official transportation services only.",
		}
	case hasWarning:
		return []string{
			"Exercise extra caution in this area.",
			"Avoid this area during late hours.",
			"Keep valuables secure and out of sight.",
			"Share your location with emergency contacts.",
		}
	default:
		return []string{
			"You are in a safe area.",
			"Continue following your planned itinerary.",
			"Maintain general safety awareness.",
		}
	}
}

// GeofenceResult is what one geofence check returns to the caller.
type GeofenceResult struct {
	TouristID       string             `json:"tourist_id"`
	Status          domain.Status      `json:"status"`
	AlertLevel      domain.Severity    `json:"alert_level"`
	Violations      []domain.Violation `json:"violations"`
	SafeZonesNearby []domain.Violation `json:"safe_zones_nearby"`
	Recommendations []string           `json:"recommendations"`
}

// Check evaluates a tourist's position against the zone catalog, persists the
// derived status, and raises alerts when the severity warrants it. Alert
// delivery is best-effort and never fails the check; a store failure does.
func (s *GeofenceService) Check(ctx context.Context, touristID string, lat, lng float64) (*GeofenceResult, error) {
	violations := s.Evaluate(lat, lng)
	status, level := Classify(violations)
	now := time.Now().UTC()

	err := s.locations.Upsert(ctx, &domain.TouristLocation{
		TouristID:   touristID,
		Lat:         lat,
		Lng:         lng,
		Status:      status,
		LastUpdated: now,
	})
	if err != nil {
		return nil, fmt.Errorf("persist location status: %w", err)
	}

	if level == domain.SeverityHigh || level == domain.SeverityMedium {
		alert := &domain.GeofenceAlert{
			Type:       domain.EventGeofenceAlert,
			TouristID:  touristID,
			AlertLevel: level,
			Status:     status,
			Violations: violations,
			Location:   domain.Coordinate{Lat: lat, Lng: lng},
			Timestamp:  now,
			Message:    fmt.Sprintf("Tourist entered %s zone: %s", status, violations[0].Zone.Name),
		}
		if err := s.broadcaster.BroadcastJSON(alert); err != nil {
			log.Printf("broadcast geofence alert: %v", err)
		}
		if err := s.publisher.PublishAlert(ctx, alert); err != nil {
			log.Printf("publish geofence alert: %v", err)
		}
	}

	var safeNearby []domain.Violation
	for _, v := range violations {
		if v.Zone.ZoneType == domain.TierSafe {
			safeNearby = append(safeNearby, v)
		}
	}

	return &GeofenceResult{
		TouristID:       touristID,
		Status:          status,
		AlertLevel:      level,
		Violations:      violations,
		SafeZonesNearby: safeNearby,
		Recommendations: Recommendations(violations),
	}, nil
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
