package model

import "time"

// ExamType classifies an exam within a course.
type ExamType string

const (
	ExamTypeMidterm ExamType = "MIDTERM"
	ExamTypeFinal   ExamType = "FINAL"
	ExamTypeQuiz    ExamType = "QUIZ"
)

// Exam represents a scheduled exam of a course.
type Exam struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"`
	Type        ExamType  `json:"type"`
	TotalPoints float64   `json:"total_points"`
	Time        time.Time `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateExamRequest is the payload for scheduling an exam.
type CreateExamRequest struct {
	Type        ExamType  `json:"type" binding:"required,oneof=MIDTERM FINAL QUIZ"`
	TotalPoints float64   `json:"total_points" binding:"required,gt=0"`
	Time        time.Time `json:"time" binding:"required"`
}
