package service

import (
	"time"

	"github.com/Suraj8267/Tourist/module/core/catalog"
	"github.com/Suraj8267/Tourist/module/core/domain"
)

// SafetyScoreService serves static per-location safety assessments.
type SafetyScoreService struct {
	profiles map[string]catalog.SafetyProfile
}

func NewSafetyScoreService(profiles map[string]catalog.SafetyProfile) *SafetyScoreService {
	return &SafetyScoreService{profiles: profiles}
}

type SafetyScore struct {
	Location    string        `json:"location"`
	SafetyScore int           `json:"safety_score"`
	RiskFactors []string      `json:"risk_factors"`
	SafetyTips  []string      `json:"safety_tips"`
	LastUpdated time.Time     `json:"last_updated"`
	Category    domain.Status `json:"category"`
}

// Score looks up the safety profile for a location name, falling back to the
// default profile for unknown locations.
func (s *SafetyScoreService) Score(location string) SafetyScore {
	profile, ok := s.profiles[canonicalLocation(location)]
	if !ok {
		profile = s.profiles[catalog.DefaultProfileKey]
	}
	return SafetyScore{
		Location:    location,
		SafetyScore: profile.Score,
		RiskFactors: profile.Factors,
		SafetyTips:  profile.Tips,
		LastUpdated: time.Now().UTC(),
		Category:    SafetyCategory(profile.Score),
	}
}

// SafetyCategory maps a numeric safety score to a status band.
func SafetyCategory(score int) domain.Status {
	switch {
	case score >= 90:
		return domain.StatusSafe
	case score >= 70:
		return domain.StatusWarning
	default:
		return domain.StatusDanger
	}
}
