package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/hub"
)

type touristService interface {
	Get(ctx context.Context, touristID string) (*domain.Tourist, error)
}

type dashboardLocationService interface {
	GetAllLocations(ctx context.Context) ([]domain.DashboardLocation, error)
	RaiseAlert(ctx context.Context, touristID, message string, status domain.Status) error
}

type observerHub interface {
	Register(o hub.Observer)
	Unregister(o hub.Observer)
}

type alertRequest struct {
	TouristID string `json:"tourist_id"`
	Message   string `json:"message"`
	AlertType string `json:"alert_type"`
}

// DashboardHandler serves the monitoring-dashboard read side, manual alerts,
// and the live WebSocket feed.
type DashboardHandler struct {
	touristSvc  touristService
	locationSvc dashboardLocationService
	hub         observerHub
}

func NewDashboardHandler(touristSvc touristService, locationSvc dashboardLocationService, h observerHub) *DashboardHandler {
	return &DashboardHandler{
		touristSvc:  touristSvc,
		locationSvc: locationSvc,
		hub:         h,
	}
}

func (h *DashboardHandler) Register(r *gin.RouterGroup) {
	r.GET("/tourists/:tourist_id", h.GetTourist)
	r.GET("/police/locations", h.GetAllLocations)
	r.POST("/geofence-alert", h.GeofenceAlert)
	r.POST("/sos-alert", h.SOSAlert)
	r.GET("/ws/police-dashboard", h.Dashboard)
}

func (h *DashboardHandler) GetTourist(c *gin.Context) {
	tourist, err := h.touristSvc.Get(c.Request.Context(), c.Param("tourist_id"))
	if err != nil {
		if errors.Is(err, domain.ErrTouristNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tourist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tourist"})
		return
	}

	c.JSON(http.StatusOK, tourist)
}

func (h *DashboardHandler) GetAllLocations(c *gin.Context) {
	locations, err := h.locationSvc.GetAllLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// GeofenceAlert records a manually reported geofence breach as warning.
func (h *DashboardHandler) GeofenceAlert(c *gin.Context) {
	h.manualAlert(c, domain.StatusWarning, "Geo-fence alert received")
}

// SOSAlert records an SOS from the tourist as danger.
func (h *DashboardHandler) SOSAlert(c *gin.Context) {
	h.manualAlert(c, domain.StatusDanger, "SOS alert received")
}

func (h *DashboardHandler) manualAlert(c *gin.Context, status domain.Status, response string) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.TouristID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tourist_id: required"})
		return
	}

	if err := h.locationSvc.RaiseAlert(c.Request.Context(), req.TouristID, req.Message, status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": response})
}
