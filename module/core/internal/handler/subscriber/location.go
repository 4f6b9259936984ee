package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Suraj8267/Tourist/module/core/service"
)

const topicPattern = "/tourists/+/location"

type locationService interface {
	UpdateLocation(ctx context.Context, touristID string, lat, lng float64) (*service.GeofenceResult, error)
}

type locationMessage struct {
	TouristID string  `json:"tourist_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
}

// LocationSubscriber feeds tourist-device positions from MQTT into the
// location-update pipeline.
type LocationSubscriber struct {
	client      mqtt.Client
	locationSvc locationService
}

func NewLocationSubscriber(client mqtt.Client, locationSvc locationService) *LocationSubscriber {
	return &LocationSubscriber{
		client:      client,
		locationSvc: locationSvc,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid location message: %v", err)
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		log.Printf("validation error: %v", err)
		return
	}

	if _, err := s.locationSvc.UpdateLocation(context.Background(), raw.TouristID, raw.Lat, raw.Lng); err != nil {
		log.Printf("location update error: %v", err)
	}
}

func validateLocationMessage(msg *locationMessage) error {
	if msg.TouristID == "" {
		return fmt.Errorf("tourist_id: required")
	}
	if msg.Lat < -90 || msg.Lat > 90 {
		return fmt.Errorf("lat: must be between -90 and 90")
	}
	if msg.Lng < -180 || msg.Lng > 180 {
		return fmt.Errorf("lng: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
