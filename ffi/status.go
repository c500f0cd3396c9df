package ffi

import "fmt"

// Status is the raw outcome code returned by every native entry point.
// StatusSuccess is the only success value; every other value is a
// distinct failure kind. The bridge never interprets failure kinds, it
// only carries them to the caller.
type Status int32

const (
	StatusSuccess Status = iota
	StatusBufferOverfilled
	StatusMessageTooLarge
	StatusInvalidPlayerCount
	StatusInvalidPlayerIndex
	StatusInvalidName
	StatusInvalidTeam
	StatusInvalidGameValues
	StatusInvalidThrottle
	StatusInvalidSteer
	StatusInvalidRenderType
	StatusChatRateExceeded
	StatusNotInitialized
)

var statusNames = map[Status]string{
	StatusSuccess:            "success",
	StatusBufferOverfilled:   "buffer_overfilled",
	StatusMessageTooLarge:    "message_too_large",
	StatusInvalidPlayerCount: "invalid_player_count",
	StatusInvalidPlayerIndex: "invalid_player_index",
	StatusInvalidName:        "invalid_name",
	StatusInvalidTeam:        "invalid_team",
	StatusInvalidGameValues:  "invalid_game_values",
	StatusInvalidThrottle:    "invalid_throttle",
	StatusInvalidSteer:       "invalid_steer",
	StatusInvalidRenderType:  "invalid_render_type",
	StatusChatRateExceeded:   "chat_rate_exceeded",
	StatusNotInitialized:     "not_initialized",
}

// String returns the canonical short name for the status, or a numeric
// fallback for codes introduced by newer engine builds.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int32(s))
}
