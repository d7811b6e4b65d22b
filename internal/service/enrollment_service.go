package service

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/rs/zerolog"
)

// EnrollmentService enrolls students in courses.
type EnrollmentService struct {
	courses     CourseStore
	students    StudentStore
	enrollments EnrollmentStore
	log         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(courses CourseStore, students StudentStore, enrollments EnrollmentStore, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		courses:     courses,
		students:    students,
		enrollments: enrollments,
		log:         log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Enroll adds a student to a course.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, studentID int) (*model.Enrollment, error) {
	if err := requireCourse(ctx, s.courses, courseID); err != nil {
		return nil, err
	}
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	enrollment := &model.Enrollment{StudentID: student.ID, CourseID: courseID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrAlreadyEnrolled
		case errors.Is(err, repository.ErrDependencyExists):
			// Either row went away after the checks above.
			if err := requireCourse(ctx, s.courses, courseID); err != nil {
				return nil, err
			}
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	enrollment.StudentName = student.FullName()
	enrollment.IndexNumber = student.IndexNumber

	s.log.Info().Int("course_id", courseID).Int("student_id", studentID).Msg("Student enrolled")
	return enrollment, nil
}

// List returns the enrollments of a course in enrollment order.
func (s *EnrollmentService) List(ctx context.Context, courseID int) ([]model.Enrollment, error) {
	if err := requireCourse(ctx, s.courses, courseID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	return enrollments, nil
}

func requireCourse(ctx context.Context, courses CourseStore, courseID int) error {
	exists, err := courses.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCourseNotFound
	}
	return nil
}
