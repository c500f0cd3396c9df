package stream

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"tickbridge"
	"tickbridge/game"
	"tickbridge/telemetry"
)

// HandlerConfig tunes the HTTP surface.
type HandlerConfig struct {
	Logger   telemetry.Logger
	Counters *telemetry.PollCounters
}

// Handler serves the WebSocket endpoint plus health and telemetry.
type Handler struct {
	hub      *Hub
	client   *tickbridge.Client
	logger   telemetry.Logger
	counters *telemetry.PollCounters
	upgrader websocket.Upgrader
}

// NewHandler wires the HTTP surface over a hub and a bridge client.
func NewHandler(hub *Hub, client *tickbridge.Client, cfg HandlerConfig) *Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	return &Handler{
		hub:      hub,
		client:   client,
		logger:   cfg.Logger,
		counters: cfg.Counters,
		upgrader: upgrader,
	}
}

// Register attaches the handler's routes to a mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ws", h.HandleWS)
	mux.HandleFunc("/healthz", h.HandleHealth)
	mux.HandleFunc("/telemetry", h.HandleTelemetry)
}

// HandleWS upgrades the connection and subscribes it to the tick feed.
// Inbound messages carry controller input to forward to the engine.
func (h *Handler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logf("stream: upgrade failed: %v", err)
		return
	}

	sub := h.hub.Subscribe(conn)
	defer h.hub.Disconnect(sub)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logf("stream: discarding malformed message from subscriber %d: %v", sub.id, err)
			continue
		}

		switch msg.Type {
		case "input":
			ack := inputAckMessage{Ver: ProtocolVersion, Type: "inputAck", Accepted: true}
			if err := h.client.SendPlayerInput(msg.PlayerIndex, msg.Controls); err != nil {
				ack.Accepted = false
				ack.Reason = err.Error()
			}
			h.writeJSON(sub, ack)
		case "chat":
			ack := inputAckMessage{Ver: ProtocolVersion, Type: "chatAck", Accepted: true}
			if err := h.client.SendChat(msg.PlayerIndex, msg.TeamOnly, msg.Text); err != nil {
				ack.Accepted = false
				ack.Reason = err.Error()
			}
			h.writeJSON(sub, ack)
		default:
			h.logf("stream: unknown message type %q from subscriber %d", msg.Type, sub.id)
		}
	}
}

// HandleHealth reports liveness and the subscriber count.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"subscribers": h.hub.SubscriberCount(),
	})
}

// HandleTelemetry serves the poll counter snapshot.
func (h *Handler) HandleTelemetry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.counters.Snapshot())
}

func (h *Handler) writeJSON(sub *subscriber, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logf("stream: failed to marshal response for subscriber %d: %v", sub.id, err)
		return
	}
	sub.mu.Lock()
	err = sub.conn.WriteMessage(websocket.TextMessage, data)
	sub.mu.Unlock()
	if err != nil {
		h.hub.Disconnect(sub)
	}
}

func (h *Handler) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

type clientMessage struct {
	Ver         int                  `json:"ver,omitempty"`
	Type        string               `json:"type"`
	PlayerIndex int32                `json:"playerIndex"`
	Controls    game.ControllerState `json:"controls"`
	TeamOnly    bool                 `json:"teamOnly"`
	Text        string               `json:"text"`
}

type inputAckMessage struct {
	Ver      int    `json:"ver"`
	Type     string `json:"type"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}
