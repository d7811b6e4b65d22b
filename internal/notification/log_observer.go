package notification

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/rs/zerolog"
)

// LogObserver writes each recorded result to the log. Used when Redis alerts
// are disabled.
type LogObserver struct {
	log zerolog.Logger
}

func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log.With().Str("component", "result_log_observer").Logger()}
}

func (o *LogObserver) OnExamResultRecorded(_ context.Context, result model.ExamResult) error {
	o.log.Info().
		Int("result_id", result.ID).
		Int("enrollment_id", result.EnrollmentID).
		Int("exam_id", result.ExamID).
		Float64("points_scored", result.PointsScored).
		Bool("is_passed", result.IsPassed).
		Msg("Exam result recorded")
	return nil
}
