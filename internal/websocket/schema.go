package websocket

import "github.com/coursehub/coursehub-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is the only message a results subscriber sends.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventSnapshot Event = "snapshot"
	EventResult   Event = "result_recorded"
	EventError    Event = "error"
	EventPong     Event = "pong"
)

// SnapshotResponse is sent once after connecting, with the latest alerts.
type SnapshotResponse struct {
	Event    Event                   `json:"event"`
	CourseID int                     `json:"course_id"`
	Alerts   []model.ExamResultAlert `json:"alerts"`
}

// ResultResponse carries one alert as it is published.
type ResultResponse struct {
	Event Event                 `json:"event"`
	Alert model.ExamResultAlert `json:"alert"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
