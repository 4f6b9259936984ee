package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Suraj8267/Tourist/config"
	"github.com/Suraj8267/Tourist/module/core"
	"github.com/Suraj8267/Tourist/module/core/catalog"
	"github.com/Suraj8267/Tourist/module/core/hub"
)

func main() {
	cfg := config.Load()

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	broadcastHub := hub.New()

	coreModule, err := core.Build(
		db, amqpConn, mqttClient, broadcastHub,
		catalog.Zones(), catalog.LocationCoordinates(), catalog.SafetyProfiles(),
	)
	if err != nil {
		log.Fatalf("core module: %v", err)
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient)
	health.Register(r)

	coreModule.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
