package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database"
)

// deviationThresholdMeters is how far a tourist may stray from the day's
// planned location before a deviation alert is raised.
const deviationThresholdMeters = 5000

const dateLayout = "2006-01-02"

// RouteDeviationService compares live positions against the itinerary entry
// planned for the current UTC calendar date.
type RouteDeviationService struct {
	tourists    database.TouristRepository
	coords      map[string]domain.Coordinate
	fallback    domain.Coordinate
	broadcaster Broadcaster
	now         func() time.Time
}

func NewRouteDeviationService(tourists database.TouristRepository, coords map[string]domain.Coordinate, fallback domain.Coordinate, b Broadcaster) *RouteDeviationService {
	return &RouteDeviationService{
		tourists:    tourists,
		coords:      coords,
		fallback:    fallback,
		broadcaster: b,
		now:         time.Now,
	}
}

// DeviationResult reports the outcome of one route-deviation check. A missing
// plan for today is a normal outcome, flagged by Message with Deviation false.
type DeviationResult struct {
	Deviation         bool               `json:"deviation"`
	DeviationDistance float64            `json:"deviation_distance,omitempty"`
	PlannedLocation   string             `json:"planned_location,omitempty"`
	Threshold         float64            `json:"threshold,omitempty"`
	Current           *domain.Coordinate `json:"current,omitempty"`
	Planned           *domain.Coordinate `json:"planned,omitempty"`
	Message           string             `json:"message,omitempty"`
}

// Check finds today's itinerary entry for the tourist, resolves its planned
// location to reference coordinates, and flags a deviation beyond the
// threshold. A deviation is broadcast to the dashboards; broadcast failure
// never fails the check.
func (s *RouteDeviationService) Check(ctx context.Context, touristID string, lat, lng float64) (*DeviationResult, error) {
	tourist, err := s.tourists.GetByID(ctx, touristID)
	if err != nil {
		return nil, err
	}

	if len(tourist.Itinerary) == 0 {
		return &DeviationResult{Deviation: false, Message: "No itinerary to check against"}, nil
	}

	today := s.now().UTC().Format(dateLayout)
	var plan *domain.ItineraryDay
	for i := range tourist.Itinerary {
		day, err := time.Parse(dateLayout, tourist.Itinerary[i].Date)
		if err != nil {
			continue
		}
		if day.Format(dateLayout) == today {
			plan = &tourist.Itinerary[i]
			break
		}
	}
	if plan == nil {
		return &DeviationResult{Deviation: false, Message: "No plan for today"}, nil
	}

	planned := s.resolve(plan.Location)
	dist := haversine(lat, lng, planned.Lat, planned.Lng)
	current := domain.Coordinate{Lat: lat, Lng: lng}
	deviating := dist > deviationThresholdMeters

	if deviating {
		event := domain.RouteDeviation{
			Type:               domain.EventRouteDeviation,
			TouristID:          touristID,
			CurrentLocation:    current,
			PlannedLocation:    planned,
			DeviationDistance:  round2(dist),
			PlannedDestination: plan.Location,
			Timestamp:          time.Now().UTC(),
			Message:            fmt.Sprintf("Tourist is %.1fkm away from planned destination: %s", dist/1000, plan.Location),
		}
		if err := s.broadcaster.BroadcastJSON(event); err != nil {
			log.Printf("broadcast route deviation: %v", err)
		}
	}

	return &DeviationResult{
		Deviation:         deviating,
		DeviationDistance: round2(dist),
		PlannedLocation:   plan.Location,
		Threshold:         deviationThresholdMeters,
		Current:           &current,
		Planned:           &planned,
	}, nil
}

// resolve maps a planned location name to reference coordinates. Unknown
// names fall back to the default coordinate.
func (s *RouteDeviationService) resolve(name string) domain.Coordinate {
	if c, ok := s.coords[canonicalLocation(name)]; ok {
		return c
	}
	return s.fallback
}

// canonicalLocation trims and title-cases a location name so lookups match
// the table keys ("new york" -> "New York", "thdc-dam" -> "Thdc-Dam").
func canonicalLocation(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	b.Grow(len(name))
	prevLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
