package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionCoursesRead allows viewing course lists and details.
	PermissionCoursesRead Permission = "courses:read"

	// PermissionCoursesWrite allows creating, updating, and deleting courses.
	PermissionCoursesWrite Permission = "courses:write"

	// PermissionEnrollmentsWrite allows enrolling students in courses.
	PermissionEnrollmentsWrite Permission = "enrollments:write"

	// PermissionExamsWrite allows scheduling exams for a course.
	PermissionExamsWrite Permission = "exams:write"

	// PermissionCourseStatusRead allows a teacher to view the status of own courses.
	PermissionCourseStatusRead Permission = "course_status:read"

	// PermissionResultsWrite allows recording and correcting exam results.
	PermissionResultsWrite Permission = "results:write"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionCoursesRead,
	PermissionCoursesWrite,
	PermissionEnrollmentsWrite,
	PermissionExamsWrite,
	PermissionCourseStatusRead,
	PermissionResultsWrite,
}
