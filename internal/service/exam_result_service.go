package service

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub-backend/internal/grading"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/notification"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ExamResultService records exam results and announces them through a relay
// created for each write.
type ExamResultService struct {
	results     ExamResultStore
	enrollments EnrollmentStore
	exams       ExamStore
	courses     CourseStore
	evaluator   *grading.Evaluator
	observer    notification.Observer
	log         zerolog.Logger
}

// NewExamResultService creates a new ExamResultService. observer may be nil,
// in which case results are recorded without notification.
func NewExamResultService(
	results ExamResultStore,
	enrollments EnrollmentStore,
	exams ExamStore,
	courses CourseStore,
	evaluator *grading.Evaluator,
	observer notification.Observer,
	log zerolog.Logger,
) *ExamResultService {
	return &ExamResultService{
		results:     results,
		enrollments: enrollments,
		exams:       exams,
		courses:     courses,
		evaluator:   evaluator,
		observer:    observer,
		log:         log.With().Str("component", "exam_result_service").Logger(),
	}
}

// Record stores the points a student scored on an exam. teacherID must teach
// the enrollment's course.
func (s *ExamResultService) Record(ctx context.Context, teacherID int, req model.RecordResultRequest) (*model.ExamResult, error) {
	enrollment, err := s.enrollments.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	exam, err := s.exams.GetByID(ctx, req.ExamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if exam.CourseID != enrollment.CourseID {
		return nil, ErrExamCourseMismatch
	}
	if err := s.requireCourseTeacher(ctx, enrollment.CourseID, teacherID); err != nil {
		return nil, err
	}

	points := *req.PointsScored
	passed, err := s.evaluate(points, exam)
	if err != nil {
		return nil, err
	}

	result := &model.ExamResult{
		EnrollmentID: enrollment.ID,
		ExamID:       exam.ID,
		PointsScored: points,
		IsPassed:     passed,
	}
	if err := s.results.Create(ctx, result); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrResultExists
		}
		return nil, err
	}
	result.Enrollment = enrollment
	result.Exam = exam

	s.announce(ctx, result, notifyRequested(req.Notify))
	return result, nil
}

// UpdateScore corrects the points of a recorded result and re-derives its
// pass flag.
func (s *ExamResultService) UpdateScore(ctx context.Context, teacherID, resultID int, req model.UpdateResultRequest) (*model.ExamResult, error) {
	result, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	if err := s.requireCourseTeacher(ctx, result.Enrollment.CourseID, teacherID); err != nil {
		return nil, err
	}

	points := *req.PointsScored
	passed, err := s.evaluate(points, result.Exam)
	if err != nil {
		return nil, err
	}
	result.PointsScored = points
	result.IsPassed = passed

	if err := s.results.UpdateScore(ctx, result); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	s.announce(ctx, result, notifyRequested(req.Notify))
	return result, nil
}

func (s *ExamResultService) evaluate(points float64, exam *model.Exam) (bool, error) {
	if points > exam.TotalPoints {
		// Accepted as entered; only flagged for review.
		s.log.Warn().
			Int("exam_id", exam.ID).
			Float64("points_scored", points).
			Float64("total_points", exam.TotalPoints).
			Msg("Score exceeds exam total")
	}
	return s.evaluator.Evaluate(points, exam.TotalPoints)
}

// announce notifies the configured observer through a relay scoped to this
// write. A failed notification does not undo the stored result.
func (s *ExamResultService) announce(ctx context.Context, result *model.ExamResult, notify bool) {
	relay := notification.NewRelay(nil)
	if notify && s.observer != nil {
		relay.Attach(s.observer)
	}
	if err := relay.Notify(ctx, *result); err != nil {
		s.log.Error().Err(err).Int("result_id", result.ID).Msg("Failed to notify exam result")
	}
}

func (s *ExamResultService) requireCourseTeacher(ctx context.Context, courseID, teacherID int) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	if course.TeacherID != teacherID {
		return ErrNotCourseTeacher
	}
	return nil
}

func notifyRequested(flag *bool) bool {
	return flag == nil || *flag
}
