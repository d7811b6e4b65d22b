package repository

import (
	"context"
	"time"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AlertRepository persists exam result alerts.
type AlertRepository struct {
	pool *pgxpool.Pool
}

// NewAlertRepository creates a new AlertRepository.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

// BulkInsert stores a batch of alerts in one statement.
func (r *AlertRepository) BulkInsert(ctx context.Context, alerts []model.ExamResultAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	n := len(alerts)
	resultIDs := make([]int, 0, n)
	courseIDs := make([]int, 0, n)
	studentIDs := make([]int, 0, n)
	examIDs := make([]int, 0, n)
	points := make([]float64, 0, n)
	totals := make([]float64, 0, n)
	passed := make([]bool, 0, n)
	recordedAts := make([]time.Time, 0, n)

	for _, a := range alerts {
		resultIDs = append(resultIDs, a.ResultID)
		courseIDs = append(courseIDs, a.CourseID)
		studentIDs = append(studentIDs, a.StudentID)
		examIDs = append(examIDs, a.ExamID)
		points = append(points, a.PointsScored)
		totals = append(totals, a.TotalPoints)
		passed = append(passed, a.IsPassed)
		recordedAts = append(recordedAts, a.RecordedAt)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO exam_result_alerts
			(result_id, course_id, student_id, exam_id, points_scored, total_points, is_passed, recorded_at)
		SELECT * FROM UNNEST(
			$1::int[], $2::int[], $3::int[], $4::int[],
			$5::float8[], $6::float8[], $7::bool[], $8::timestamptz[]
		)`,
		resultIDs, courseIDs, studentIDs, examIDs, points, totals, passed, recordedAts,
	)
	return err
}

// Insert stores a single alert.
func (r *AlertRepository) Insert(ctx context.Context, a *model.ExamResultAlert) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exam_result_alerts
			(result_id, course_id, student_id, exam_id, points_scored, total_points, is_passed, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		a.ResultID, a.CourseID, a.StudentID, a.ExamID, a.PointsScored, a.TotalPoints, a.IsPassed, a.RecordedAt,
	).Scan(&a.ID)
}

// ListByCourse retrieves the most recent alerts of a course.
func (r *AlertRepository) ListByCourse(ctx context.Context, courseID, limit int) ([]model.ExamResultAlert, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.result_id, a.course_id, a.student_id, a.exam_id, ex.type,
		        a.points_scored, a.total_points, a.is_passed, a.recorded_at
		 FROM exam_result_alerts a
		 JOIN exams ex ON ex.id = a.exam_id
		 WHERE a.course_id = $1
		 ORDER BY a.recorded_at DESC, a.id DESC
		 LIMIT $2`, courseID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []model.ExamResultAlert
	for rows.Next() {
		var a model.ExamResultAlert
		if err := rows.Scan(&a.ID, &a.ResultID, &a.CourseID, &a.StudentID, &a.ExamID, &a.ExamType,
			&a.PointsScored, &a.TotalPoints, &a.IsPassed, &a.RecordedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
