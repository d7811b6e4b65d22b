package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"
	ErrTeacherOnly      ErrCode = "TEACHER_ACCESS_ONLY"
	ErrNotCourseTeacher ErrCode = "NOT_COURSE_TEACHER"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation      ErrCode = "VALIDATION_ERROR"
	ErrInvalidID       ErrCode = "INVALID_ID"
	ErrInvalidPayload  ErrCode = "INVALID_PAYLOAD"
	ErrInvalidArgument ErrCode = "INVALID_ARGUMENT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound           ErrCode = "NOT_FOUND"
	ErrCourseNotFound     ErrCode = "COURSE_NOT_FOUND"
	ErrTeacherNotFound    ErrCode = "TEACHER_NOT_FOUND"
	ErrStudentNotFound    ErrCode = "STUDENT_NOT_FOUND"
	ErrEnrollmentNotFound ErrCode = "ENROLLMENT_NOT_FOUND"
	ErrExamNotFound       ErrCode = "EXAM_NOT_FOUND"
	ErrResultNotFound     ErrCode = "RESULT_NOT_FOUND"
	ErrConflict           ErrCode = "CONFLICT"
	ErrDependencyExists   ErrCode = "DEPENDENCY_EXISTS"

	// ─── Grading ───────────────────────────────────────────────────────
	ErrAlreadyEnrolled    ErrCode = "ALREADY_ENROLLED"
	ErrResultExists       ErrCode = "RESULT_ALREADY_RECORDED"
	ErrExamCourseMismatch ErrCode = "EXAM_COURSE_MISMATCH"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

var messages = map[ErrCode]string{
	ErrInvalidCredentials: "Email or password is incorrect.",
	ErrTokenRequired:      "An authentication token is required.",
	ErrTokenInvalid:       "The authentication token is invalid.",
	ErrTokenExpired:       "The authentication token has expired.",

	ErrForbidden:        "You are not allowed to access this resource.",
	ErrPermissionDenied: "Permission denied.",
	ErrTeacherOnly:      "This resource is restricted to teachers.",
	ErrNotCourseTeacher: "You do not teach this course.",

	ErrValidation:      "Validation failed. Please check your input.",
	ErrInvalidID:       "Invalid ID format.",
	ErrInvalidPayload:  "Invalid request payload.",
	ErrInvalidArgument: "The exam has no positive point total to grade against.",

	ErrNotFound:           "Resource not found.",
	ErrCourseNotFound:     "Course not found.",
	ErrTeacherNotFound:    "Teacher not found.",
	ErrStudentNotFound:    "Student not found.",
	ErrEnrollmentNotFound: "Enrollment not found.",
	ErrExamNotFound:       "Exam not found.",
	ErrResultNotFound:     "Exam result not found.",
	ErrConflict:           "Resource already exists.",
	ErrDependencyExists:   "The course still has enrollments or exams and cannot be deleted.",

	ErrAlreadyEnrolled:    "The student is already enrolled in this course.",
	ErrResultExists:       "A result for this exam is already recorded; update it instead.",
	ErrExamCourseMismatch: "The exam does not belong to the enrollment's course.",

	ErrRateLimitExceeded: "Too many requests. Please try again later.",

	ErrInternal: "Internal server error.",
}

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "An unexpected error occurred."
}
