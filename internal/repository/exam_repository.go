package repository

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamRepository handles exam data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

// GetByID retrieves an exam by ID.
func (r *ExamRepository) GetByID(ctx context.Context, id int) (*model.Exam, error) {
	e := &model.Exam{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, type, total_points, time, created_at FROM exams WHERE id = $1`, id,
	).Scan(&e.ID, &e.CourseID, &e.Type, &e.TotalPoints, &e.Time, &e.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// ListByCourse retrieves a course's exams by scheduled time.
func (r *ExamRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, type, total_points, time, created_at
		 FROM exams WHERE course_id = $1 ORDER BY time, id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.CourseID, &e.Type, &e.TotalPoints, &e.Time, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// Create inserts a new exam.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO exams (course_id, type, total_points, time)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		e.CourseID, e.Type, e.TotalPoints, e.Time,
	).Scan(&e.ID, &e.CreatedAt)
	return translate(err)
}
