package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Suraj8267/Tourist/module/core/domain"
)

type mockLocationRepo struct {
	upsertFn       func(ctx context.Context, loc *domain.TouristLocation) error
	updateStatusFn func(ctx context.Context, touristID string, status domain.Status, updatedAt time.Time) error
	getLatestFn    func(ctx context.Context, touristID string) (*domain.TouristLocation, error)
	getAllFn       func(ctx context.Context) ([]domain.DashboardLocation, error)

	upserts []*domain.TouristLocation
}

func (m *mockLocationRepo) Upsert(ctx context.Context, loc *domain.TouristLocation) error {
	m.upserts = append(m.upserts, loc)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, loc)
	}
	return nil
}

func (m *mockLocationRepo) UpdateStatus(ctx context.Context, touristID string, status domain.Status, updatedAt time.Time) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, touristID, status, updatedAt)
	}
	return nil
}

func (m *mockLocationRepo) GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error) {
	return m.getLatestFn(ctx, touristID)
}

func (m *mockLocationRepo) GetAll(ctx context.Context) ([]domain.DashboardLocation, error) {
	return m.getAllFn(ctx)
}

type mockAlertPublisher struct {
	publishFn func(ctx context.Context, alert *domain.GeofenceAlert) error
	calls     []*domain.GeofenceAlert
}

func (m *mockAlertPublisher) PublishAlert(ctx context.Context, alert *domain.GeofenceAlert) error {
	m.calls = append(m.calls, alert)
	if m.publishFn != nil {
		return m.publishFn(ctx, alert)
	}
	return nil
}

type mockBroadcaster struct {
	broadcastFn func(v any) error
	events      []any
}

func (m *mockBroadcaster) BroadcastJSON(v any) error {
	m.events = append(m.events, v)
	if m.broadcastFn != nil {
		return m.broadcastFn(v)
	}
	return nil
}

func dangerZone() domain.Zone {
	return domain.Zone{
		ZoneID:       "delhi_danger_1",
		Name:         "High Crime Area - East Delhi",
		Center:       domain.Coordinate{Lat: 28.6500, Lng: 77.3000},
		RadiusMeters: 1000,
		ZoneType:     domain.TierDanger,
	}
}

func warningZone() domain.Zone {
	return domain.Zone{
		ZoneID:       "mumbai_warning_1",
		Name:         "Industrial Zone - Mumbai",
		Center:       domain.Coordinate{Lat: 19.0500, Lng: 72.9000},
		RadiusMeters: 800,
		ZoneType:     domain.TierWarning,
	}
}

func safeZone() domain.Zone {
	return domain.Zone{
		ZoneID:       "delhi_central",
		Name:         "Central Delhi - Tourist Areas",
		Center:       domain.Coordinate{Lat: 28.6139, Lng: 77.2090},
		RadiusMeters: 2000,
		ZoneType:     domain.TierSafe,
	}
}

func TestHaversine(t *testing.T) {
	// same point is 0
	if d := haversine(28.6139, 77.2090, 28.6139, 77.2090); d != 0 {
		t.Errorf("expected 0, got %f", d)
	}

	// symmetric
	d1 := haversine(28.6139, 77.2090, 19.0760, 72.8777)
	d2 := haversine(19.0760, 72.8777, 28.6139, 77.2090)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("expected symmetry, got %f and %f", d1, d2)
	}

	// Delhi to Mumbai is roughly 1150km
	if d1 < 1_100_000 || d1 > 1_200_000 {
		t.Errorf("expected ~1150km, got %f", d1)
	}
}

func TestEvaluate_AtZoneCenter(t *testing.T) {
	svc := NewGeofenceService([]domain.Zone{dangerZone()}, &mockLocationRepo{}, &mockAlertPublisher{}, &mockBroadcaster{})

	violations := svc.Evaluate(28.6500, 77.3000)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].DistanceFromCenter != 0 {
		t.Errorf("expected distance 0, got %f", violations[0].DistanceFromCenter)
	}
	if violations[0].ViolationType != domain.ViolationInsideZone {
		t.Errorf("expected inside_zone, got %s", violations[0].ViolationType)
	}
}

func TestEvaluate_BoundaryInclusive(t *testing.T) {
	// a point ~900m north of the zone center; set the radius to exactly that
	// distance so the position sits on the boundary
	lat, lng := 28.6581, 77.3000
	z := dangerZone()
	dist := haversine(lat, lng, z.Center.Lat, z.Center.Lng)

	z.RadiusMeters = dist
	svc := NewGeofenceService([]domain.Zone{z}, &mockLocationRepo{}, &mockAlertPublisher{}, &mockBroadcaster{})
	if got := svc.Evaluate(lat, lng); len(got) != 1 {
		t.Fatalf("boundary point should violate, got %d violations", len(got))
	}

	z.RadiusMeters = dist - 1
	svc = NewGeofenceService([]domain.Zone{z}, &mockLocationRepo{}, &mockAlertPublisher{}, &mockBroadcaster{})
	if got := svc.Evaluate(lat, lng); len(got) != 0 {
		t.Fatalf("point past the radius should not violate, got %d violations", len(got))
	}
}

func TestEvaluate_OverlappingZonesKeepOrder(t *testing.T) {
	inner := dangerZone()
	outer := dangerZone()
	outer.ZoneID = "delhi_danger_wide"
	outer.ZoneType = domain.TierSafe
	outer.RadiusMeters = 5000

	svc := NewGeofenceService([]domain.Zone{inner, outer}, &mockLocationRepo{}, &mockAlertPublisher{}, &mockBroadcaster{})
	violations := svc.Evaluate(28.6500, 77.3000)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(violations))
	}
	if violations[0].Zone.ZoneID != "delhi_danger_1" || violations[1].Zone.ZoneID != "delhi_danger_wide" {
		t.Errorf("violations out of catalog order: %s, %s", violations[0].Zone.ZoneID, violations[1].Zone.ZoneID)
	}
}

func TestClassify(t *testing.T) {
	danger := domain.Violation{Zone: dangerZone()}
	warning := domain.Violation{Zone: warningZone()}
	safe := domain.Violation{Zone: safeZone()}

	cases := []struct {
		name       string
		violations []domain.Violation
		status     domain.Status
		severity   domain.Severity
	}{
		{"none", nil, domain.StatusSafe, domain.SeverityNone},
		{"only safe", []domain.Violation{safe}, domain.StatusSafe, domain.SeverityLow},
		{"warning", []domain.Violation{safe, warning}, domain.StatusWarning, domain.SeverityMedium},
		{"danger beats warning", []domain.Violation{warning, danger}, domain.StatusDanger, domain.SeverityHigh},
		{"danger regardless of order", []domain.Violation{danger, warning, safe}, domain.StatusDanger, domain.SeverityHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, severity := Classify(tc.violations)
			if status != tc.status || severity != tc.severity {
				t.Errorf("expected (%s,%s), got (%s,%s)", tc.status, tc.severity, status, severity)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	danger := domain.Violation{Zone: dangerZone()}
	warning := domain.Violation{Zone: warningZone()}
	safe := domain.Violation{Zone: safeZone()}

	if got := Recommendations([]domain.Violation{safe, warning, danger}); len(got) != 4 {
		t.Errorf("danger present: expected 4 recommendations, got %d", len(got))
	}
	if got := Recommendations([]domain.Violation{safe, warning}); len(got) != 4 {
		t.Errorf("warning present: expected 4 recommendations, got %d", len(got))
	}
	if got := Recommendations([]domain.Violation{safe}); len(got) != 3 {
		t.Errorf("only safe: expected 3 recommendations, got %d", len(got))
	}
	if got := Recommendations(nil); len(got) != 3 {
		t.Errorf("no violations: expected 3 recommendations, got %d", len(got))
	}
}

func TestCheck_DangerZoneAlerts(t *testing.T) {
	repo := &mockLocationRepo{}
	pub := &mockAlertPublisher{}
	bc := &mockBroadcaster{}
	svc := NewGeofenceService([]domain.Zone{dangerZone()}, repo, pub, bc)

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6500, 77.3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != domain.StatusDanger || result.AlertLevel != domain.SeverityHigh {
		t.Errorf("expected danger/high, got %s/%s", result.Status, result.AlertLevel)
	}
	if len(result.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(result.Violations))
	}
	if len(result.SafeZonesNearby) != 0 {
		t.Errorf("expected no safe zones nearby, got %d", len(result.SafeZonesNearby))
	}
	if len(result.Recommendations) != 4 {
		t.Errorf("expected the 4-item danger advisory, got %d items", len(result.Recommendations))
	}

	if len(repo.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(repo.upserts))
	}
	if repo.upserts[0].Status != domain.StatusDanger {
		t.Errorf("persisted status %s, expected danger", repo.upserts[0].Status)
	}

	if len(bc.events) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(bc.events))
	}
	alert, ok := bc.events[0].(*domain.GeofenceAlert)
	if !ok {
		t.Fatalf("expected *domain.GeofenceAlert, got %T", bc.events[0])
	}
	if alert.Type != domain.EventGeofenceAlert {
		t.Errorf("expected geofence_alert event, got %s", alert.Type)
	}
	if alert.Message != "Tourist entered danger zone: High Crime Area - East Delhi" {
		t.Errorf("unexpected message: %s", alert.Message)
	}

	if len(pub.calls) != 1 {
		t.Errorf("expected 1 published alert, got %d", len(pub.calls))
	}
}

func TestCheck_SafeZoneDoesNotAlert(t *testing.T) {
	repo := &mockLocationRepo{}
	pub := &mockAlertPublisher{}
	bc := &mockBroadcaster{}
	svc := NewGeofenceService([]domain.Zone{safeZone()}, repo, pub, bc)

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.StatusSafe || result.AlertLevel != domain.SeverityLow {
		t.Errorf("expected safe/low, got %s/%s", result.Status, result.AlertLevel)
	}
	if len(result.SafeZonesNearby) != 1 {
		t.Errorf("expected 1 safe zone nearby, got %d", len(result.SafeZonesNearby))
	}
	if len(bc.events) != 0 {
		t.Errorf("expected no broadcast, got %d", len(bc.events))
	}
	if len(pub.calls) != 0 {
		t.Errorf("expected no published alerts, got %d", len(pub.calls))
	}
}

func TestCheck_StoreError(t *testing.T) {
	repo := &mockLocationRepo{
		upsertFn: func(_ context.Context, _ *domain.TouristLocation) error {
			return errors.New("db down")
		},
	}
	svc := NewGeofenceService([]domain.Zone{dangerZone()}, repo, &mockAlertPublisher{}, &mockBroadcaster{})

	if _, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6500, 77.3000); err == nil {
		t.Fatal("expected error")
	}
}

func TestCheck_PublishFailureDoesNotFailCheck(t *testing.T) {
	pub := &mockAlertPublisher{
		publishFn: func(_ context.Context, _ *domain.GeofenceAlert) error {
			return errors.New("rabbitmq down")
		},
	}
	svc := NewGeofenceService([]domain.Zone{dangerZone()}, &mockLocationRepo{}, pub, &mockBroadcaster{})

	result, err := svc.Check(context.Background(), "TOURIST_A1B2C3D4", 28.6500, 77.3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.StatusDanger {
		t.Errorf("expected danger, got %s", result.Status)
	}
}
