package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrIncompleteResult is returned when a result lacks the enrollment or exam
// needed to build an alert.
var ErrIncompleteResult = errors.New("exam result is missing enrollment or exam")

// NewAlert builds the alert payload for a result with populated back-references.
func NewAlert(result model.ExamResult, recordedAt time.Time) (model.ExamResultAlert, error) {
	if result.Enrollment == nil || result.Exam == nil {
		return model.ExamResultAlert{}, ErrIncompleteResult
	}
	return model.ExamResultAlert{
		ResultID:     result.ID,
		CourseID:     result.Enrollment.CourseID,
		StudentID:    result.Enrollment.StudentID,
		ExamID:       result.ExamID,
		ExamType:     result.Exam.Type,
		PointsScored: result.PointsScored,
		TotalPoints:  result.Exam.TotalPoints,
		IsPassed:     result.IsPassed,
		RecordedAt:   recordedAt.UTC(),
	}, nil
}

// QueueObserver pushes alerts onto the Redis list drained by the alert worker.
type QueueObserver struct {
	rdb   redis.Cmdable
	queue string
	now   func() time.Time
}

// NewQueueObserver creates a QueueObserver on the exam result alerts queue.
func NewQueueObserver(rdb redis.Cmdable) *QueueObserver {
	return &QueueObserver{
		rdb:   rdb,
		queue: config.WorkerKey.ExamResultAlertsQueue,
		now:   time.Now,
	}
}

func (o *QueueObserver) OnExamResultRecorded(ctx context.Context, result model.ExamResult) error {
	alert, err := NewAlert(result, o.now())
	if err != nil {
		return err
	}
	raw, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	if err := o.rdb.RPush(ctx, o.queue, raw).Err(); err != nil {
		return fmt.Errorf("queue alert: %w", err)
	}
	return nil
}
