package stream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tickbridge"
	"tickbridge/game"
	"tickbridge/logging"
)

// ProtocolVersion tags every outbound message so clients can reject
// frames from a mismatched server.
const ProtocolVersion = 1

// pumpPollTimeout keeps the pump loop responsive to stop requests. A
// timeout here is not fatal; the pump reports it and keeps polling.
const pumpPollTimeout = time.Second

type tickMessage struct {
	Ver   int              `json:"ver"`
	Type  string           `json:"type"`
	Frame int32            `json:"frame"`
	Tick  game.PhysicsTick `json:"tick"`
}

// Pump pulls ticks through one poller session and broadcasts them.
type Pump struct {
	hub       *Hub
	physicist *tickbridge.Physicist
	events    logging.Publisher
}

// NewPump wires a pump over a hub and a poller session. The session
// must not be shared with any other consumer.
func NewPump(hub *Hub, physicist *tickbridge.Physicist) *Pump {
	return &Pump{hub: hub, physicist: physicist, events: hub.cfg.Events}
}

// Run broadcasts ticks until the stop channel closes.
func (p *Pump) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		tick, err := p.physicist.NextWithTimeout(pumpPollTimeout)
		if err != nil {
			severity := logging.SeverityWarn
			eventType := logging.EventPollTimeout
			if !errors.Is(err, tickbridge.ErrPollTimeout) {
				severity = logging.SeverityError
				eventType = logging.EventEngineAbsent
			}
			p.events.Publish(context.Background(), logging.Event{
				Type:     eventType,
				Time:     time.Now(),
				Severity: severity,
				Extra:    map[string]any{"error": err.Error()},
			})
			continue
		}

		frame := int32(0)
		if tick.Ball != nil {
			frame = tick.Ball.Frame
		}
		data, err := json.Marshal(tickMessage{
			Ver:   ProtocolVersion,
			Type:  "tick",
			Frame: frame,
			Tick:  tick,
		})
		if err != nil {
			if p.hub.cfg.Logger != nil {
				p.hub.cfg.Logger.Printf("stream: failed to marshal tick %d: %v", frame, err)
			}
			continue
		}

		p.events.Publish(context.Background(), logging.Event{
			Type:     logging.EventTickDelivered,
			Time:     time.Now(),
			Severity: logging.SeverityDebug,
			Frame:    int64(frame),
		})
		p.hub.Broadcast(data)
	}
}
