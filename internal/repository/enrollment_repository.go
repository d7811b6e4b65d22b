package repository

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnrollmentRepository handles student-course enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

const enrollmentWithStudent = `
	SELECT e.id, e.student_id, e.course_id, s.first_name || ' ' || s.last_name, s.index_number, e.created_at
	FROM enrollments e
	JOIN students s ON s.id = e.student_id`

// GetByID retrieves an enrollment by ID.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.pool.QueryRow(ctx, enrollmentWithStudent+` WHERE e.id = $1`, id).
		Scan(&e.ID, &e.StudentID, &e.CourseID, &e.StudentName, &e.IndexNumber, &e.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// ListByCourse retrieves the enrollments of a course in creation order.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx, enrollmentWithStudent+` WHERE e.course_id = $1 ORDER BY e.created_at, e.id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.StudentName, &e.IndexNumber, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// CountByCourse counts the students enrolled in a course.
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&n)
	return n, err
}

// Create enrolls a student. Returns ErrDuplicate if the student is already enrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, course_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		e.StudentID, e.CourseID,
	).Scan(&e.ID, &e.CreatedAt)
	return translate(err)
}
