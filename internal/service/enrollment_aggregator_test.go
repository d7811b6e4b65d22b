package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coursehub/coursehub-backend/internal/grading"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator(w *world, threshold float64) *EnrollmentAggregator {
	return NewEnrollmentAggregator(w.courses, w.enrollments, w.exams, w.results, grading.NewEvaluator(threshold))
}

func TestRetrieveStudentCourseInfo_PassAndFail(t *testing.T) {
	w := newWorld()
	w.enroll(1, 11, dbCourseID)
	w.enroll(2, 12, dbCourseID)
	w.exam(50, dbCourseID, 100)
	w.result(1, 1, 50, 60)
	w.result(2, 2, 50, 30)
	agg := newAggregator(w, 0.5)

	info, err := agg.RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	require.Len(t, info, 2)

	assert.Equal(t, 11, info[0].StudentID)
	assert.Equal(t, 60.0, info[0].TotalScored)
	assert.Equal(t, 100.0, info[0].TotalMaxPoints)
	assert.True(t, info[0].IsPassedOverall)

	assert.Equal(t, 12, info[1].StudentID)
	assert.Equal(t, 30.0, info[1].TotalScored)
	assert.False(t, info[1].IsPassedOverall)

	assert.Equal(t, 1, agg.GetNumberOfPassed(info))
}

func TestRetrieveStudentCourseInfo_SumsAcrossExams(t *testing.T) {
	w := newWorld()
	w.enroll(1, 11, dbCourseID)
	w.exam(50, dbCourseID, 40)
	w.exam(51, dbCourseID, 60)
	w.result(1, 1, 50, 30)
	w.result(2, 1, 51, 20)

	info, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	require.Len(t, info, 1)

	assert.Equal(t, 50.0, info[0].TotalScored)
	assert.Equal(t, 100.0, info[0].TotalMaxPoints)
	require.Len(t, info[0].Results, 2)
	assert.True(t, info[0].Results[0].IsPassed)
	assert.False(t, info[0].Results[1].IsPassed)
	assert.False(t, info[0].IsPassedOverall, "one failed exam fails the course")
}

func TestRetrieveStudentCourseInfo_NoResultsIsNotPassed(t *testing.T) {
	w := newWorld()
	w.enroll(1, 11, dbCourseID)

	info, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	require.Len(t, info, 1)
	assert.Zero(t, info[0].TotalScored)
	assert.False(t, info[0].IsPassedOverall)
	assert.NotNil(t, info[0].Results)
}

func TestRetrieveStudentCourseInfo_EmptyCourse(t *testing.T) {
	w := newWorld()

	info, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	assert.NotNil(t, info)
	assert.Empty(t, info)
}

func TestRetrieveStudentCourseInfo_CourseNotFound(t *testing.T) {
	w := newWorld()

	_, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestRetrieveStudentCourseInfo_KeepsEnrollmentOrder(t *testing.T) {
	w := newWorld()
	w.enroll(30, 12, dbCourseID)
	w.enroll(10, 11, dbCourseID)
	w.enroll(20, 13, dbCourseID)

	info, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)

	var got []int
	for _, s := range info {
		got = append(got, s.EnrollmentID)
	}
	assert.Equal(t, []int{30, 10, 20}, got)
}

func TestRetrieveStudentCourseInfo_IgnoresOtherCourses(t *testing.T) {
	w := newWorld()
	w.courses.rows[2] = model.Course{ID: 2, TeacherID: ownerID}
	w.enroll(1, 11, dbCourseID)
	w.enroll(2, 11, 2)
	w.exam(50, dbCourseID, 100)
	w.exam(60, 2, 100)
	w.result(1, 1, 50, 70)
	w.result(2, 2, 60, 10)

	info, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	require.Len(t, info, 1)
	assert.Equal(t, 70.0, info[0].TotalScored)
	assert.True(t, info[0].IsPassedOverall)
}

func TestRetrieveStudentCourseInfo_Idempotent(t *testing.T) {
	w := newWorld()
	w.enroll(1, 11, dbCourseID)
	w.enroll(2, 12, dbCourseID)
	w.exam(50, dbCourseID, 100)
	w.result(1, 1, 50, 60)
	agg := newAggregator(w, 0.5)

	first, err := agg.RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	second, err := agg.RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRetrieveStudentCourseInfo_InvalidExamTotal(t *testing.T) {
	w := newWorld()
	w.enroll(1, 11, dbCourseID)
	w.exam(50, dbCourseID, 0)
	w.result(1, 1, 50, 10)

	_, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
	assert.ErrorIs(t, err, grading.ErrInvalidArgument)
}

func TestRetrieveStudentCourseInfo_StorageErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("course lookup", func(t *testing.T) {
		w := newWorld()
		w.courses.err = boom
		_, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
		assert.Same(t, boom, err)
	})

	t.Run("enrollments", func(t *testing.T) {
		w := newWorld()
		w.enrollments.err = boom
		_, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
		assert.Same(t, boom, err)
	})

	t.Run("results", func(t *testing.T) {
		w := newWorld()
		w.enroll(1, 11, dbCourseID)
		w.results.err = boom
		_, err := newAggregator(w, 0.5).RetrieveStudentCourseInfo(context.Background(), dbCourseID)
		assert.Same(t, boom, err)
	})
}

func TestGetMaximumPoints(t *testing.T) {
	w := newWorld()
	w.courses.rows[2] = model.Course{ID: 2, TeacherID: ownerID}
	w.exam(50, dbCourseID, 40)
	w.exam(51, dbCourseID, 60)
	w.exam(52, 2, 1000)
	agg := newAggregator(w, 0.5)

	max, err := agg.GetMaximumPoints(context.Background(), dbCourseID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, max)

	w.enroll(1, 11, dbCourseID)
	w.enroll(2, 12, dbCourseID)
	again, err := agg.GetMaximumPoints(context.Background(), dbCourseID)
	require.NoError(t, err)
	assert.Equal(t, max, again, "independent of enrollments")
}

func TestGetMaximumPoints_NoExams(t *testing.T) {
	w := newWorld()

	max, err := newAggregator(w, 0.5).GetMaximumPoints(context.Background(), dbCourseID)
	require.NoError(t, err)
	assert.Zero(t, max)
}

func TestGetMaximumPoints_Errors(t *testing.T) {
	w := newWorld()
	agg := newAggregator(w, 0.5)

	_, err := agg.GetMaximumPoints(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	boom := errors.New("timeout")
	w.exams.err = boom
	_, err = agg.GetMaximumPoints(context.Background(), dbCourseID)
	assert.Same(t, boom, err)
}

func TestGetNumberOfPassed(t *testing.T) {
	agg := newAggregator(newWorld(), 0.5)

	assert.Zero(t, agg.GetNumberOfPassed(nil))
	assert.Zero(t, agg.GetNumberOfPassed([]model.StudentSummary{}))
	assert.Equal(t, 2, agg.GetNumberOfPassed([]model.StudentSummary{
		{IsPassedOverall: true},
		{IsPassedOverall: false},
		{IsPassedOverall: true},
	}))
}
