package service

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/grading"
	"github.com/coursehub/coursehub-backend/internal/model"
)

// EnrollmentAggregator builds per-student summaries of a course. Reads are
// issued one after another and every storage error is returned unchanged.
type EnrollmentAggregator struct {
	courses     CourseStore
	enrollments EnrollmentStore
	exams       ExamStore
	results     ExamResultStore
	evaluator   *grading.Evaluator
}

// NewEnrollmentAggregator creates a new EnrollmentAggregator.
func NewEnrollmentAggregator(
	courses CourseStore,
	enrollments EnrollmentStore,
	exams ExamStore,
	results ExamResultStore,
	evaluator *grading.Evaluator,
) *EnrollmentAggregator {
	return &EnrollmentAggregator{
		courses:     courses,
		enrollments: enrollments,
		exams:       exams,
		results:     results,
		evaluator:   evaluator,
	}
}

// RetrieveStudentCourseInfo returns one summary per enrollment of the course,
// in enrollment order. A student passes overall when they have at least one
// result and every result passes.
func (a *EnrollmentAggregator) RetrieveStudentCourseInfo(ctx context.Context, courseID int) ([]model.StudentSummary, error) {
	if err := requireCourse(ctx, a.courses, courseID); err != nil {
		return nil, err
	}

	enrollments, err := a.enrollments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.StudentSummary, 0, len(enrollments))
	if len(enrollments) == 0 {
		return summaries, nil
	}

	results, err := a.results.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	byEnrollment := make(map[int][]model.ExamResult, len(enrollments))
	for _, r := range results {
		byEnrollment[r.EnrollmentID] = append(byEnrollment[r.EnrollmentID], r)
	}

	for _, e := range enrollments {
		summary, err := a.summarize(e, byEnrollment[e.ID])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (a *EnrollmentAggregator) summarize(e model.Enrollment, results []model.ExamResult) (model.StudentSummary, error) {
	s := model.StudentSummary{
		EnrollmentID: e.ID,
		StudentID:    e.StudentID,
		StudentName:  e.StudentName,
		IndexNumber:  e.IndexNumber,
		Results:      make([]model.ResultLine, 0, len(results)),
	}

	allPassed := len(results) > 0
	for _, r := range results {
		total := r.GetTotalPoints()
		passed, err := a.evaluator.Evaluate(r.PointsScored, total)
		if err != nil {
			return model.StudentSummary{}, err
		}
		allPassed = allPassed && passed

		s.TotalScored += r.PointsScored
		s.TotalMaxPoints += total
		s.Results = append(s.Results, model.ResultLine{
			ExamID:       r.ExamID,
			ExamType:     model.ExamType(r.ActivityType()),
			PointsScored: r.PointsScored,
			TotalPoints:  total,
			IsPassed:     passed,
		})
	}
	s.IsPassedOverall = allPassed
	return s, nil
}

// GetMaximumPoints sums the total points of the course's exams. A course
// without exams has a maximum of zero.
func (a *EnrollmentAggregator) GetMaximumPoints(ctx context.Context, courseID int) (float64, error) {
	if err := requireCourse(ctx, a.courses, courseID); err != nil {
		return 0, err
	}

	exams, err := a.exams.ListByCourse(ctx, courseID)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, e := range exams {
		sum += e.TotalPoints
	}
	return sum, nil
}

// GetNumberOfPassed counts the summaries that passed overall.
func (a *EnrollmentAggregator) GetNumberOfPassed(summaries []model.StudentSummary) int {
	return a.evaluator.Tally(summaries).Passed
}
