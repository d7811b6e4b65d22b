package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/response"
	ws "github.com/coursehub/coursehub-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// recentAlertsLimit caps the snapshot sent when a teacher connects.
const recentAlertsLimit = 20

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// AlertLister reads persisted alerts.
type AlertLister interface {
	ListByCourse(ctx context.Context, courseID, limit int) ([]model.ExamResultAlert, error)
}

// subscribeFunc subscribes to a Redis channel and returns its message feed
// together with a function releasing the subscription.
type subscribeFunc func(ctx context.Context, channel string) (<-chan *redis.Message, func() error)

// ResultStreamHandler streams exam result alerts of a course to its teacher.
type ResultStreamHandler struct {
	courses   CourseService
	alerts    AlertLister
	subscribe subscribeFunc
	log       zerolog.Logger
	upgrader  websocket.Upgrader
}

// NewResultStreamHandler creates a new ResultStreamHandler.
func NewResultStreamHandler(courses CourseService, alerts AlertLister, rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *ResultStreamHandler {
	return &ResultStreamHandler{
		courses: courses,
		alerts:  alerts,
		subscribe: func(ctx context.Context, channel string) (<-chan *redis.Message, func() error) {
			pubsub := rdb.Subscribe(ctx, channel)
			return pubsub.Channel(), pubsub.Close
		},
		log:      log.With().Str("component", "result_stream_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// StreamResults godoc
// WS /ws/v1/teacher/courses/:id/results?token=...
// Sends a snapshot of recent alerts, then every alert published for the course.
func (h *ResultStreamHandler) StreamResults(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	course, err := h.courses.GetByID(ctx, courseID)
	if err != nil {
		fail(c, err)
		return
	}
	if course.TeacherID != claims.UserID {
		response.Fail(c, http.StatusForbidden, response.ErrNotCourseTeacher)
		return
	}
	recent, err := h.alerts.ListByCourse(ctx, courseID, recentAlertsLimit)
	if err != nil {
		fail(c, err)
		return
	}
	if recent == nil {
		recent = []model.ExamResultAlert{}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("teacher_id", claims.UserID).Int("course_id", courseID).Logger()
	wsLog.Info().Msg("Teacher subscribed to results")

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, unsubscribe := h.subscribe(streamCtx, config.CacheKey.CourseResultsChannel(courseID))
	defer func() { _ = unsubscribe() }()

	if err := ws.WriteTyped(conn, ws.SnapshotResponse{Event: ws.EventSnapshot, CourseID: courseID, Alerts: recent}); err != nil {
		return
	}

	// The reader goroutine only hands pings over; all writes happen below.
	pings := make(chan struct{}, 1)
	go func() {
		defer cancel()
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				}
				return
			}
			if msg.Action == ws.ActionPing {
				select {
				case pings <- struct{}{}:
				default:
				}
			}
		}
	}()

	for {
		select {
		case <-streamCtx.Done():
			wsLog.Debug().Msg("Result stream closed")
			return

		case <-pings:
			if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
				return
			}

		case msg, ok := <-messages:
			if !ok {
				_ = ws.WriteError(conn, "results subscription ended")
				ws.Close(conn, websocket.CloseGoingAway, "subscription ended")
				return
			}
			var alert model.ExamResultAlert
			if err := json.Unmarshal([]byte(msg.Payload), &alert); err != nil {
				wsLog.Warn().Err(err).Msg("Invalid alert on results channel")
				continue
			}
			if err := ws.WriteTyped(conn, ws.ResultResponse{Event: ws.EventResult, Alert: alert}); err != nil {
				return
			}
		}
	}
}
