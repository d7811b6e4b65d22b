package service

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ExamService schedules the exams of a course.
type ExamService struct {
	courses CourseStore
	exams   ExamStore
	log     zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(courses CourseStore, exams ExamStore, log zerolog.Logger) *ExamService {
	return &ExamService{
		courses: courses,
		exams:   exams,
		log:     log.With().Str("component", "exam_service").Logger(),
	}
}

// Create schedules an exam for a course.
func (s *ExamService) Create(ctx context.Context, courseID int, req model.CreateExamRequest) (*model.Exam, error) {
	if err := requireCourse(ctx, s.courses, courseID); err != nil {
		return nil, err
	}

	exam := &model.Exam{
		CourseID:    courseID,
		Type:        req.Type,
		TotalPoints: req.TotalPoints,
		Time:        req.Time,
	}
	if err := s.exams.Create(ctx, exam); err != nil {
		// The course was deleted after the existence check.
		if errors.Is(err, repository.ErrDependencyExists) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	s.log.Info().Int("course_id", courseID).Int("exam_id", exam.ID).Str("type", string(exam.Type)).Msg("Exam scheduled")
	return exam, nil
}

// ListByCourse returns the exams of a course by scheduled time.
func (s *ExamService) ListByCourse(ctx context.Context, courseID int) ([]model.Exam, error) {
	if err := requireCourse(ctx, s.courses, courseID); err != nil {
		return nil, err
	}
	exams, err := s.exams.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []model.Exam{}
	}
	return exams, nil
}
