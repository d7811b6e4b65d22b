package repository

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamResultRepository handles exam result data access.
type ExamResultRepository struct {
	pool *pgxpool.Pool
}

// NewExamResultRepository creates a new ExamResultRepository.
func NewExamResultRepository(pool *pgxpool.Pool) *ExamResultRepository {
	return &ExamResultRepository{pool: pool}
}

const resultWithRefs = `
	SELECT r.id, r.enrollment_id, r.exam_id, r.points_scored, r.is_passed, r.created_at, r.updated_at,
	       en.student_id, en.course_id, en.created_at,
	       ex.type, ex.total_points, ex.time
	FROM exam_results r
	JOIN enrollments en ON en.id = r.enrollment_id
	JOIN exams ex ON ex.id = r.exam_id`

func scanResult(row interface{ Scan(...any) error }) (*model.ExamResult, error) {
	res := &model.ExamResult{Enrollment: &model.Enrollment{}, Exam: &model.Exam{}}
	err := row.Scan(&res.ID, &res.EnrollmentID, &res.ExamID, &res.PointsScored, &res.IsPassed, &res.CreatedAt, &res.UpdatedAt,
		&res.Enrollment.StudentID, &res.Enrollment.CourseID, &res.Enrollment.CreatedAt,
		&res.Exam.Type, &res.Exam.TotalPoints, &res.Exam.Time)
	if err != nil {
		return nil, translate(err)
	}
	res.Enrollment.ID = res.EnrollmentID
	res.Exam.ID = res.ExamID
	res.Exam.CourseID = res.Enrollment.CourseID
	return res, nil
}

// GetByID retrieves a result with its enrollment and exam.
func (r *ExamResultRepository) GetByID(ctx context.Context, id int) (*model.ExamResult, error) {
	return scanResult(r.pool.QueryRow(ctx, resultWithRefs+` WHERE r.id = $1`, id))
}

// ListByCourse retrieves every result recorded in a course, grouped by
// enrollment and ordered by exam time.
func (r *ExamResultRepository) ListByCourse(ctx context.Context, courseID int) ([]model.ExamResult, error) {
	rows, err := r.pool.Query(ctx, resultWithRefs+` WHERE en.course_id = $1 ORDER BY r.enrollment_id, ex.time, r.id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.ExamResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

// Create inserts a new result. Returns ErrDuplicate if the enrollment already
// has a result for the exam.
func (r *ExamResultRepository) Create(ctx context.Context, res *model.ExamResult) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO exam_results (enrollment_id, exam_id, points_scored, is_passed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		res.EnrollmentID, res.ExamID, res.PointsScored, res.IsPassed,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	return translate(err)
}

// UpdateScore overwrites the points and pass flag of a result.
func (r *ExamResultRepository) UpdateScore(ctx context.Context, res *model.ExamResult) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE exam_results SET points_scored = $1, is_passed = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3
		 RETURNING updated_at`,
		res.PointsScored, res.IsPassed, res.ID,
	).Scan(&res.UpdatedAt)
	return translate(err)
}
