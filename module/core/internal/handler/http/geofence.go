package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/service"
)

type geofenceService interface {
	Zones() []domain.Zone
	Check(ctx context.Context, touristID string, lat, lng float64) (*service.GeofenceResult, error)
}

type locationService interface {
	UpdateLocation(ctx context.Context, touristID string, lat, lng float64) (*service.GeofenceResult, error)
}

type deviationService interface {
	Check(ctx context.Context, touristID string, lat, lng float64) (*service.DeviationResult, error)
}

type safetyService interface {
	Score(location string) service.SafetyScore
}

type locationRequest struct {
	TouristID string  `json:"tourist_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type GeofenceHandler struct {
	geofenceSvc  geofenceService
	locationSvc  locationService
	deviationSvc deviationService
	safetySvc    safetyService
}

func NewGeofenceHandler(geofenceSvc geofenceService, locationSvc locationService, deviationSvc deviationService, safetySvc safetyService) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceSvc:  geofenceSvc,
		locationSvc:  locationSvc,
		deviationSvc: deviationSvc,
		safetySvc:    safetySvc,
	}
}

func (h *GeofenceHandler) Register(r *gin.RouterGroup) {
	r.GET("/geofence/zones", h.GetZones)
	r.POST("/geofence/check", h.CheckGeofence)
	r.POST("/update-location", h.UpdateLocation)
	r.POST("/check-route-deviation", h.CheckRouteDeviation)
	r.GET("/safety-scores/:location", h.GetSafetyScore)
}

func (h *GeofenceHandler) GetZones(c *gin.Context) {
	zones := h.geofenceSvc.Zones()

	counts := map[domain.ZoneTier]int{}
	for _, z := range zones {
		counts[z.ZoneType]++
	}

	c.JSON(http.StatusOK, gin.H{
		"zones":       zones,
		"total_zones": len(zones),
		"zone_types": gin.H{
			"safe":    counts[domain.TierSafe],
			"warning": counts[domain.TierWarning],
			"danger":  counts[domain.TierDanger],
		},
	})
}

func (h *GeofenceHandler) CheckGeofence(c *gin.Context) {
	req, ok := bindLocationRequest(c)
	if !ok {
		return
	}

	result, err := h.geofenceSvc.Check(c.Request.Context(), req.TouristID, req.Lat, req.Lng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "geofence check failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GeofenceHandler) UpdateLocation(c *gin.Context) {
	req, ok := bindLocationRequest(c)
	if !ok {
		return
	}

	result, err := h.locationSvc.UpdateLocation(c.Request.Context(), req.TouristID, req.Lat, req.Lng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "location update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Location updated successfully",
		"geofence_status": result.Status,
		"violations":      result.Violations,
		"recommendations": result.Recommendations,
	})
}

func (h *GeofenceHandler) CheckRouteDeviation(c *gin.Context) {
	req, ok := bindLocationRequest(c)
	if !ok {
		return
	}

	result, err := h.deviationSvc.Check(c.Request.Context(), req.TouristID, req.Lat, req.Lng)
	if err != nil {
		if errors.Is(err, domain.ErrTouristNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tourist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "route deviation check failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GeofenceHandler) GetSafetyScore(c *gin.Context) {
	location := c.Param("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}

	c.JSON(http.StatusOK, h.safetySvc.Score(location))
}

func bindLocationRequest(c *gin.Context) (*locationRequest, bool) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	if err := validateLocationRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

func validateLocationRequest(req *locationRequest) error {
	if req.TouristID == "" {
		return fmt.Errorf("tourist_id: required")
	}
	if req.Lat < -90 || req.Lat > 90 {
		return fmt.Errorf("lat: must be between -90 and 90")
	}
	if req.Lng < -180 || req.Lng > 180 {
		return fmt.Errorf("lng: must be between -180 and 180")
	}
	return nil
}
