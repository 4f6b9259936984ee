package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type locationMessage struct {
	TouristID string  `json:"tourist_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
}

func randomTouristID() string {
	const hexdigits = "0123456789ABCDEF"
	b := make([]byte, 8)
	for i := range b {
		b[i] = hexdigits[rand.Intn(len(hexdigits))]
	}
	return "TOURIST_" + string(b)
}

func randomLat() float64 {
	return -90 + rand.Float64()*180
}

func randomLng() float64 {
	return -180 + rand.Float64()*360
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("tourist-mock-publisher")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	touristPool := make([]string, 5)
	for i := range touristPool {
		touristPool[i] = randomTouristID()
	}

	log.Printf("connected to %s, publishing every %ds...", broker, intervalSec)
	log.Printf("tourist pool: %v", touristPool)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		tid := touristPool[rand.Intn(len(touristPool))]

		var lat, lng float64
		// 30% chance to wander into the East Delhi danger zone (28.6500, 77.3000)
		if rand.Float64() < 0.3 {
			lat = 28.6500 + (rand.Float64()-0.5)*0.005
			lng = 77.3000 + (rand.Float64()-0.5)*0.005
		} else {
			lat = randomLat()
			lng = randomLng()
		}

		msg := locationMessage{
			TouristID: tid,
			Lat:       lat,
			Lng:       lng,
			Timestamp: time.Now().Unix(),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/tourists/%s/location", tid)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
