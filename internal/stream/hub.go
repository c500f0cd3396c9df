// Package stream fans physics ticks out to WebSocket subscribers. It
// is the serving side of the tickstream tool: one poller session pulls
// ticks from the bridge and the hub broadcasts them to every connected
// client.
package stream

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"tickbridge/logging"
	"tickbridge/telemetry"
)

const defaultWriteWait = 5 * time.Second

// Metric keys recorded by the hub.
const (
	metricSubscribers       = "stream_subscribers"
	metricBroadcasts        = "stream_broadcasts"
	metricBroadcastFailures = "stream_broadcast_failures"
)

// HubConfig tunes the hub.
type HubConfig struct {
	// WriteWait bounds a single subscriber write. Defaults to 5s.
	WriteWait time.Duration
	// Logger receives hub diagnostics. Nil discards them.
	Logger telemetry.Logger
	// Events receives structured join/leave/failure events. Nil
	// discards them.
	Events logging.Publisher
	// Metrics receives subscriber and broadcast counts. Nil discards
	// them.
	Metrics telemetry.Metrics
}

// Hub owns the live subscriber set. Broadcasts copy the set under the
// lock and write outside it, so one slow client cannot stall the rest
// beyond the write deadline.
type Hub struct {
	cfg    HubConfig
	nextID atomic.Uint64

	mu          sync.Mutex
	subscribers map[uint64]*subscriber
}

type subscriber struct {
	id   uint64
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewHub creates an empty hub.
func NewHub(cfg HubConfig) *Hub {
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = defaultWriteWait
	}
	if cfg.Events == nil {
		cfg.Events = logging.NopPublisher()
	}
	return &Hub{
		cfg:         cfg,
		subscribers: make(map[uint64]*subscriber),
	}
}

// Subscribe registers a connection and returns its subscriber handle.
func (h *Hub) Subscribe(conn *websocket.Conn) *subscriber {
	sub := &subscriber{id: h.nextID.Add(1), conn: conn}
	h.mu.Lock()
	h.subscribers[sub.id] = sub
	count := len(h.subscribers)
	h.mu.Unlock()

	if h.cfg.Metrics != nil {
		h.cfg.Metrics.Store(metricSubscribers, uint64(count))
	}
	h.cfg.Events.Publish(context.Background(), logging.Event{
		Type:     logging.EventSubscriberJoin,
		Time:     time.Now(),
		Severity: logging.SeverityInfo,
		Extra:    map[string]any{"subscriber": sub.id},
	})
	return sub
}

// Disconnect removes a subscriber and closes its connection.
func (h *Hub) Disconnect(sub *subscriber) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	_, known := h.subscribers[sub.id]
	delete(h.subscribers, sub.id)
	count := len(h.subscribers)
	h.mu.Unlock()
	if !known {
		return
	}

	if h.cfg.Metrics != nil {
		h.cfg.Metrics.Store(metricSubscribers, uint64(count))
	}
	sub.mu.Lock()
	sub.conn.Close()
	sub.mu.Unlock()

	h.cfg.Events.Publish(context.Background(), logging.Event{
		Type:     logging.EventSubscriberLeave,
		Time:     time.Now(),
		Severity: logging.SeverityInfo,
		Extra:    map[string]any{"subscriber": sub.id},
	})
}

// SubscriberCount reports how many connections are registered.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Broadcast sends one message to every subscriber. Subscribers whose
// write fails are disconnected.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	if h.cfg.Metrics != nil {
		h.cfg.Metrics.Add(metricBroadcasts, 1)
	}
	for _, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err == nil {
			continue
		}
		if h.cfg.Metrics != nil {
			h.cfg.Metrics.Add(metricBroadcastFailures, 1)
		}
		if h.cfg.Logger != nil {
			h.cfg.Logger.Printf("stream: dropping subscriber %d: %v", sub.id, err)
		}
		h.cfg.Events.Publish(context.Background(), logging.Event{
			Type:     logging.EventBroadcastFailure,
			Time:     time.Now(),
			Severity: logging.SeverityWarn,
			Extra:    map[string]any{"subscriber": sub.id, "error": err.Error()},
		})
		h.Disconnect(sub)
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()
	for _, sub := range subs {
		h.Disconnect(sub)
	}
}
