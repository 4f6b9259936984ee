package domain

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ZoneTier string

const (
	TierSafe    ZoneTier = "safe"
	TierWarning ZoneTier = "warning"
	TierDanger  ZoneTier = "danger"
)

// Zone is a named circular safety region. The catalog is fixed at process
// start; zones are never created or mutated at runtime.
type Zone struct {
	ZoneID       string     `json:"zone_id"`
	Name         string     `json:"name"`
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
	ZoneType     ZoneTier   `json:"zone_type"`
	Description  string     `json:"description"`
}

type ViolationKind string

const ViolationInsideZone ViolationKind = "inside_zone"

// Violation records that a position fell within a zone's radius.
type Violation struct {
	Zone               Zone          `json:"zone"`
	DistanceFromCenter float64       `json:"distance_from_center"`
	ViolationType      ViolationKind `json:"violation_type"`
}

type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)
