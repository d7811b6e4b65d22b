package service

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/repository"
)

// The store interfaces below are the slices of the repositories each service
// reads or writes. The pgx repositories satisfy them in production and the
// tests substitute in-memory fakes.

type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	ListByTeacher(ctx context.Context, teacherID int) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int) error
}

type UserStore interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetTeacher(ctx context.Context, id int) (*model.User, error)
	ListTeachers(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
}

type StudentStore interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Upsert(ctx context.Context, s *model.Student) error
}

type EnrollmentStore interface {
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Enrollment, error)
	CountByCourse(ctx context.Context, courseID int) (int, error)
	Create(ctx context.Context, e *model.Enrollment) error
}

type ExamStore interface {
	GetByID(ctx context.Context, id int) (*model.Exam, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Exam, error)
	Create(ctx context.Context, e *model.Exam) error
}

type ExamResultStore interface {
	GetByID(ctx context.Context, id int) (*model.ExamResult, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.ExamResult, error)
	Create(ctx context.Context, r *model.ExamResult) error
	UpdateScore(ctx context.Context, r *model.ExamResult) error
}

var (
	_ CourseStore     = (*repository.CourseRepository)(nil)
	_ UserStore       = (*repository.UserRepository)(nil)
	_ StudentStore    = (*repository.StudentRepository)(nil)
	_ EnrollmentStore = (*repository.EnrollmentRepository)(nil)
	_ ExamStore       = (*repository.ExamRepository)(nil)
	_ ExamResultStore = (*repository.ExamResultRepository)(nil)
)
