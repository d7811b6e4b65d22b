package model

import "time"

// Enrollment links a student to a course.
type Enrollment struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"student_id"`
	CourseID    int       `json:"course_id"`
	StudentName string    `json:"student_name,omitempty"`
	IndexNumber string    `json:"index_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// EnrollRequest is the payload for enrolling a student in a course.
type EnrollRequest struct {
	StudentID int `json:"student_id" binding:"required,min=1"`
}
