package core

import (
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Suraj8267/Tourist/module/core/catalog"
	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/hub"
	handler "github.com/Suraj8267/Tourist/module/core/internal/handler/http"
	"github.com/Suraj8267/Tourist/module/core/internal/handler/subscriber"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database/postgres"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/publisher/rabbitmq"
	"github.com/Suraj8267/Tourist/module/core/service"
)

type Module struct {
	GeofenceSvc  *service.GeofenceService
	LocationSvc  *service.LocationService
	DeviationSvc *service.RouteDeviationService

	geofenceHandler  *handler.GeofenceHandler
	dashboardHandler *handler.DashboardHandler
	subscriber       *subscriber.LocationSubscriber
}

// Build wires the safety core. The zone catalog, location coordinate table,
// and safety profiles are static configuration injected here; nothing mutates
// them at runtime.
func Build(
	db *sql.DB,
	amqpConn *amqp.Connection,
	mqttClient mqtt.Client,
	broadcastHub *hub.Hub,
	zones []domain.Zone,
	coords map[string]domain.Coordinate,
	profiles map[string]catalog.SafetyProfile,
) (*Module, error) {
	touristRepo := postgres.NewTouristRepo(db)
	locationRepo := postgres.NewLocationRepo(db)

	alertPub, err := rabbitmq.NewAlertPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}

	geofenceSvc := service.NewGeofenceService(zones, locationRepo, alertPub, broadcastHub)
	locationSvc := service.NewLocationService(locationRepo, geofenceSvc, broadcastHub)
	deviationSvc := service.NewRouteDeviationService(touristRepo, coords, catalog.DefaultCoordinate, broadcastHub)
	safetySvc := service.NewSafetyScoreService(profiles)
	touristSvc := service.NewTouristService(touristRepo)

	gh := handler.NewGeofenceHandler(geofenceSvc, locationSvc, deviationSvc, safetySvc)
	dh := handler.NewDashboardHandler(touristSvc, locationSvc, broadcastHub)
	sub := subscriber.NewLocationSubscriber(mqttClient, locationSvc)

	return &Module{
		GeofenceSvc:      geofenceSvc,
		LocationSvc:      locationSvc,
		DeviationSvc:     deviationSvc,
		geofenceHandler:  gh,
		dashboardHandler: dh,
		subscriber:       sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.geofenceHandler.Register(r)
	m.dashboardHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}
