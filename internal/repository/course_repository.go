package repository

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseWithTeacher = `
	SELECT c.id, c.name, c.teacher_id, c.academic_year, c.ects, c.semester, c.created_at, c.updated_at,
	       t.id, t.email, t.title, t.first_name, t.last_name, t.role
	FROM courses c
	JOIN users t ON t.id = c.teacher_id`

func scanCourse(row interface{ Scan(...any) error }) (*model.Course, error) {
	c := &model.Course{Teacher: &model.User{}}
	err := row.Scan(&c.ID, &c.Name, &c.TeacherID, &c.AcademicYear, &c.ECTS, &c.Semester, &c.CreatedAt, &c.UpdatedAt,
		&c.Teacher.ID, &c.Teacher.Email, &c.Teacher.Title, &c.Teacher.FirstName, &c.Teacher.LastName, &c.Teacher.Role)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CourseRepository) list(ctx context.Context, query string, args ...any) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// List retrieves all courses with their teacher.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	return r.list(ctx, courseWithTeacher+` ORDER BY c.academic_year DESC, c.name, c.id`)
}

// ListByTeacher retrieves the courses taught by one teacher.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Course, error) {
	return r.list(ctx, courseWithTeacher+` WHERE c.teacher_id = $1 ORDER BY c.academic_year DESC, c.name, c.id`, teacherID)
}

// GetByID retrieves a course and its teacher.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx, courseWithTeacher+` WHERE c.id = $1`, id))
}

// Exists reports whether a course with the given ID exists.
func (r *CourseRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, teacher_id, academic_year, ects, semester)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.TeacherID, c.AcademicYear, c.ECTS, c.Semester,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translate(err)
}

// Update modifies an existing course. Returns ErrNotFound if no row matched.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE courses
		 SET name = $1, teacher_id = $2, academic_year = $3, ects = $4, semester = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		c.Name, c.TeacherID, c.AcademicYear, c.ECTS, c.Semester, c.ID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return translate(err)
}

// Delete removes a course by its ID. Deleting a missing course is not an error.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return translate(err)
}
