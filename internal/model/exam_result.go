package model

import (
	"fmt"
	"strings"
	"time"
)

// Activity describes a graded course activity.
type Activity interface {
	ActivityDate() time.Time
	ActivityType() string
	ActivityName() string
	GetPointsScored() float64
	GetTotalPoints() float64
}

// ExamResult is the score a student obtained on one exam of an enrolled course.
// Enrollment and Exam are back-references populated by readers that join them.
type ExamResult struct {
	ID           int         `json:"id"`
	EnrollmentID int         `json:"enrollment_id"`
	ExamID       int         `json:"exam_id"`
	PointsScored float64     `json:"points_scored"`
	IsPassed     bool        `json:"is_passed"`
	Enrollment   *Enrollment `json:"enrollment,omitempty"`
	Exam         *Exam       `json:"exam,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

var _ Activity = ExamResult{}

// ActivityDate returns the calendar day the exam took place.
func (r ExamResult) ActivityDate() time.Time {
	if r.Exam == nil {
		return time.Time{}
	}
	t := r.Exam.Time
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (r ExamResult) ActivityType() string {
	if r.Exam == nil {
		return ""
	}
	return string(r.Exam.Type)
}

// ActivityName is a short label such as "Midterm exam #3".
func (r ExamResult) ActivityName() string {
	if r.Exam == nil {
		return fmt.Sprintf("Exam #%d", r.ExamID)
	}
	kind := strings.ToLower(string(r.Exam.Type))
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return fmt.Sprintf("%s exam #%d", kind, r.ExamID)
}

func (r ExamResult) GetPointsScored() float64 {
	return r.PointsScored
}

func (r ExamResult) GetTotalPoints() float64 {
	if r.Exam == nil {
		return 0
	}
	return r.Exam.TotalPoints
}

// RecordResultRequest is the payload for recording an exam result.
type RecordResultRequest struct {
	EnrollmentID int      `json:"enrollment_id" binding:"required,min=1"`
	ExamID       int      `json:"exam_id" binding:"required,min=1"`
	PointsScored *float64 `json:"points_scored" binding:"required,gte=0"`
	// Notify defaults to true. Set false to record without alerting.
	Notify *bool `json:"notify" binding:"omitempty"`
}

// UpdateResultRequest is the payload for correcting the points of a result.
type UpdateResultRequest struct {
	PointsScored *float64 `json:"points_scored" binding:"required,gte=0"`
	Notify       *bool    `json:"notify" binding:"omitempty"`
}
