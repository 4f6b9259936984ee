package service

import (
	"context"
	"testing"
	"time"

	"github.com/Suraj8267/Tourist/module/core/domain"
)

type mockTouristRepo struct {
	getByIDFn func(ctx context.Context, touristID string) (*domain.Tourist, error)
}

func (m *mockTouristRepo) GetByID(ctx context.Context, touristID string) (*domain.Tourist, error) {
	return m.getByIDFn(ctx, touristID)
}

func testCoords() map[string]domain.Coordinate {
	return map[string]domain.Coordinate{
		"Delhi":  {Lat: 28.6139, Lng: 77.2090},
		"Mumbai": {Lat: 19.0760, Lng: 72.8777},
	}
}

var testFallback = domain.Coordinate{Lat: 28.6139, Lng: 77.2090}

func deviationService(t *testing.T, tourist *domain.Tourist, bc *mockBroadcaster) *RouteDeviationService {
	t.Helper()
	repo := &mockTouristRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Tourist, error) {
			return tourist, nil
		},
	}
	svc := NewRouteDeviationService(repo, testCoords(), testFallback, bc)
	svc.now = func() time.Time {
		return time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func touristWithPlan(location string) *domain.Tourist {
	return &domain.Tourist{
		TouristID: "TOURIST_A1B2C3D4",
		Itinerary: []domain.ItineraryDay{
			{Date: "2025-05-05", Location: "Mumbai"},
			{Date: "2025-05-06", Location: location},
			{Date: "2025-05-07", Location: "Mumbai"},
		},
	}
}

func TestCheckDeviation_AtPlannedLocation(t *testing.T) {
	bc := &mockBroadcaster{}
	svc := deviationService(t, touristWithPlan("Delhi"), bc)

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Deviation {
		t.Error("expected no deviation at the planned location")
	}
	if result.DeviationDistance != 0 {
		t.Errorf("expected distance 0, got %f", result.DeviationDistance)
	}
	if result.PlannedLocation != "Delhi" {
		t.Errorf("expected planned location Delhi, got %s", result.PlannedLocation)
	}
	if len(bc.events) != 0 {
		t.Errorf("expected no broadcast, got %d", len(bc.events))
	}
}

func TestCheckDeviation_BeyondThreshold(t *testing.T) {
	bc := &mockBroadcaster{}
	svc := deviationService(t, touristWithPlan("Delhi"), bc)

	// ~6km north of the Delhi reference coordinate
	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6679, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Deviation {
		t.Fatal("expected deviation")
	}
	if result.DeviationDistance < 5900 || result.DeviationDistance > 6100 {
		t.Errorf("expected ~6000m, got %f", result.DeviationDistance)
	}

	if len(bc.events) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(bc.events))
	}
	event, ok := bc.events[0].(domain.RouteDeviation)
	if !ok {
		t.Fatalf("expected domain.RouteDeviation, got %T", bc.events[0])
	}
	if event.Type != domain.EventRouteDeviation {
		t.Errorf("expected route_deviation event, got %s", event.Type)
	}
	if event.PlannedDestination != "Delhi" {
		t.Errorf("expected planned destination Delhi, got %s", event.PlannedDestination)
	}
	if event.Message != "Tourist is 6.0km away from planned destination: Delhi" {
		t.Errorf("unexpected message: %s", event.Message)
	}
}

func TestCheckDeviation_NoPlanForToday(t *testing.T) {
	bc := &mockBroadcaster{}
	tourist := &domain.Tourist{
		TouristID: "TOURIST_A1B2C3D4",
		Itinerary: []domain.ItineraryDay{{Date: "2025-05-01", Location: "Mumbai"}},
	}
	svc := deviationService(t, tourist, bc)

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Deviation {
		t.Error("expected no deviation without a plan")
	}
	if result.Message != "No plan for today" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestCheckDeviation_EmptyItinerary(t *testing.T) {
	bc := &mockBroadcaster{}
	svc := deviationService(t, &domain.Tourist{TouristID: "TOURIST_A1B2C3D4"}, bc)

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Deviation {
		t.Error("expected no deviation without an itinerary")
	}
	if result.Message != "No itinerary to check against" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestCheckDeviation_MalformedDatesSkipped(t *testing.T) {
	bc := &mockBroadcaster{}
	tourist := &domain.Tourist{
		TouristID: "TOURIST_A1B2C3D4",
		Itinerary: []domain.ItineraryDay{
			{Date: "not-a-date", Location: "Mumbai"},
			{Date: "2025-05-06", Location: "Delhi"},
		},
	}
	svc := deviationService(t, tourist, bc)

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PlannedLocation != "Delhi" {
		t.Errorf("expected the valid entry to match, got %q", result.PlannedLocation)
	}
}

func TestCheckDeviation_UnknownLocationUsesFallback(t *testing.T) {
	bc := &mockBroadcaster{}
	svc := deviationService(t, touristWithPlan("Atlantis"), bc)

	// position at the fallback coordinate: resolved plan falls back there too
	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", testFallback.Lat, testFallback.Lng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Deviation {
		t.Error("expected no deviation against the fallback coordinate")
	}
}

func TestCheckDeviation_TouristNotFound(t *testing.T) {
	repo := &mockTouristRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Tourist, error) {
			return nil, domain.ErrTouristNotFound
		},
	}
	svc := NewRouteDeviationService(repo, testCoords(), testFallback, &mockBroadcaster{})

	if _, err := svc.Check(context.Background(), "UNKNOWN", 0, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestCanonicalLocation(t *testing.T) {
	cases := map[string]string{
		"  delhi ": "Delhi",
		"new york": "New York",
		"thdc-dam": "Thdc-Dam",
		"MUMBAI":   "Mumbai",
		"New York": "New York",
	}
	for in, want := range cases {
		if got := canonicalLocation(in); got != want {
			t.Errorf("canonicalLocation(%q) = %q, want %q", in, got, want)
		}
	}
}
