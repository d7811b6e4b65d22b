package model

import "time"

// Semester of the academic year a course runs in.
type Semester string

const (
	SemesterWinter Semester = "WINTER"
	SemesterSummer Semester = "SUMMER"
)

// Course represents a course taught by one teacher.
type Course struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	TeacherID    int       `json:"teacher_id"`
	Teacher      *User     `json:"teacher,omitempty"`
	AcademicYear string    `json:"academic_year"`
	ECTS         int       `json:"ects"`
	Semester     Semester  `json:"semester"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Name         string   `json:"name" binding:"required,min=2,max=150"`
	TeacherID    int      `json:"teacher_id" binding:"required,min=1"`
	AcademicYear string   `json:"academic_year" binding:"required,academic_year"`
	ECTS         int      `json:"ects" binding:"required,min=1,max=30"`
	Semester     Semester `json:"semester" binding:"required,oneof=WINTER SUMMER"`
}

// ToCourse builds a Course from the request.
func (r CourseRequest) ToCourse() *Course {
	return &Course{
		Name:         r.Name,
		TeacherID:    r.TeacherID,
		AcademicYear: r.AcademicYear,
		ECTS:         r.ECTS,
		Semester:     r.Semester,
	}
}
