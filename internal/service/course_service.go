package service

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/rs/zerolog"
)

// CourseService handles course administration and the teacher's course status.
type CourseService struct {
	courses     CourseStore
	users       UserStore
	enrollments EnrollmentStore
	aggregator  *EnrollmentAggregator
	log         zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	courses CourseStore,
	users UserStore,
	enrollments EnrollmentStore,
	aggregator *EnrollmentAggregator,
	log zerolog.Logger,
) *CourseService {
	return &CourseService{
		courses:     courses,
		users:       users,
		enrollments: enrollments,
		aggregator:  aggregator,
		log:         log.With().Str("component", "course_service").Logger(),
	}
}

// List returns all courses with their teacher.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// GetByID returns one course with its teacher.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	return course, err
}

// TeacherOptions lists the teachers a course can be assigned to.
func (s *CourseService) TeacherOptions(ctx context.Context) ([]model.TeacherOption, error) {
	teachers, err := s.users.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]model.TeacherOption, 0, len(teachers))
	for _, t := range teachers {
		opts = append(opts, model.TeacherOption{Value: t.ID, Text: t.DisplayName()})
	}
	return opts, nil
}

// Create stores a new course after checking that its teacher exists.
func (s *CourseService) Create(ctx context.Context, req model.CourseRequest) (*model.Course, error) {
	teacher, err := s.requireTeacher(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}

	course := req.ToCourse()
	if err := s.courses.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDependencyExists) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	course.Teacher = teacher

	s.log.Info().Int("course_id", course.ID).Int("teacher_id", course.TeacherID).Msg("Course created")
	return course, nil
}

// Update overwrites an existing course.
func (s *CourseService) Update(ctx context.Context, id int, req model.CourseRequest) (*model.Course, error) {
	teacher, err := s.requireTeacher(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}

	course := req.ToCourse()
	course.ID = id
	if err := s.courses.Update(ctx, course); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCourseNotFound
		case errors.Is(err, repository.ErrDependencyExists):
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	course.Teacher = teacher
	return course, nil
}

// Delete removes a course. Deleting a course that no longer exists succeeds.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDependencyExists) {
			return ErrCourseInUse
		}
		return err
	}
	s.log.Info().Int("course_id", id).Msg("Course deleted")
	return nil
}

// Status assembles the status page of a course for the teacher who teaches
// it. A course taught by someone else is reported as not found.
func (s *CourseService) Status(ctx context.Context, courseID, teacherID int) (*model.CourseStatus, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if course.TeacherID != teacherID {
		return nil, ErrCourseNotFound
	}

	info, err := s.aggregator.RetrieveStudentCourseInfo(ctx, courseID)
	if err != nil {
		return nil, err
	}
	maximum, err := s.aggregator.GetMaximumPoints(ctx, courseID)
	if err != nil {
		return nil, err
	}
	students, err := s.enrollments.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	own, err := s.courses.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if own == nil {
		own = []model.Course{}
	}

	return &model.CourseStatus{
		Course:           *course,
		Info:             info,
		Maximum:          maximum,
		NumberOfPassed:   s.aggregator.GetNumberOfPassed(info),
		NumberOfStudents: students,
		Courses:          own,
	}, nil
}

func (s *CourseService) requireTeacher(ctx context.Context, teacherID int) (*model.User, error) {
	teacher, err := s.users.GetTeacher(ctx, teacherID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	return teacher, err
}
