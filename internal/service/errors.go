package service

import "errors"

// Domain errors.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrExamNotFound       = errors.New("exam not found")
	ErrResultNotFound     = errors.New("exam result not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrNotCourseTeacher   = errors.New("not the teacher of this course")
	ErrExamCourseMismatch = errors.New("exam does not belong to the enrollment's course")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this course")
	ErrResultExists       = errors.New("a result for this exam is already recorded")
	ErrCourseInUse        = errors.New("course still has enrollments or exams")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidRole        = errors.New("invalid role")
)
