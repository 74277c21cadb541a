package websocket

import "encoding/json"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventNotification Event = "notification"
	EventPong         Event = "pong"
	EventError        Event = "error"
)

// NotificationEvent carries a newly created notification to the client. Data
// is the JSON document published by the notification service.
type NotificationEvent struct {
	Event Event           `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type PongResponse struct {
	Event Event `json:"event"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
