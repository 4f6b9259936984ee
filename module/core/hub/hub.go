// Package hub owns the set of live dashboard observer connections and fans
// alert/update events out to all of them.
package hub

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Observer is one connected dashboard client. Send must either deliver the
// payload or fail within a bounded time; a failed Send is treated as a
// disconnect and the observer is dropped from the hub.
type Observer interface {
	Send(payload []byte) error
}

// Hub is safe for concurrent Register/Unregister/Broadcast. It is the only
// piece of core-owned shared mutable state; construct one and pass it to
// whatever publishes or subscribes.
type Hub struct {
	mu        sync.Mutex
	observers map[Observer]struct{}
}

func New() *Hub {
	return &Hub{observers: make(map[Observer]struct{})}
}

func (h *Hub) Register(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers[o] = struct{}{}
	log.Printf("dashboard connected, total connections: %d", len(h.observers))
}

// Unregister removes an observer if present. Idempotent.
func (h *Hub) Unregister(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.observers[o]; ok {
		delete(h.observers, o)
		log.Printf("dashboard disconnected, total connections: %d", len(h.observers))
	}
}

// Count returns the number of active observers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Broadcast delivers payload to every currently registered observer. A
// failing observer never aborts delivery to the rest; all observers whose
// send failed are removed before Broadcast returns.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	targets := make([]Observer, 0, len(h.observers))
	for o := range h.observers {
		targets = append(targets, o)
	}
	h.mu.Unlock()

	var failed []Observer
	for _, o := range targets {
		if err := o.Send(payload); err != nil {
			log.Printf("broadcast send failed, dropping observer: %v", err)
			failed = append(failed, o)
		}
	}

	if len(failed) == 0 {
		return
	}
	h.mu.Lock()
	for _, o := range failed {
		delete(h.observers, o)
	}
	h.mu.Unlock()
}

// BroadcastJSON marshals v and broadcasts it. Only marshalling can fail;
// delivery errors are absorbed by Broadcast.
func (h *Hub) BroadcastJSON(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal broadcast payload: %w", err)
	}
	h.Broadcast(payload)
	return nil
}
