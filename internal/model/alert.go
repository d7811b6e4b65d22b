package model

import "time"

// ExamResultAlert is the message emitted when an exam result is recorded or changed.
type ExamResultAlert struct {
	ID           int       `json:"id,omitempty"`
	ResultID     int       `json:"result_id"`
	CourseID     int       `json:"course_id"`
	StudentID    int       `json:"student_id"`
	ExamID       int       `json:"exam_id"`
	ExamType     ExamType  `json:"exam_type"`
	PointsScored float64   `json:"points_scored"`
	TotalPoints  float64   `json:"total_points"`
	IsPassed     bool      `json:"is_passed"`
	RecordedAt   time.Time `json:"recorded_at"`
}
