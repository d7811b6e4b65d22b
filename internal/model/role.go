package model

// Role is a staff role. Roles map to a fixed permission set.
type Role string

const (
	RoleStudentService Role = "StudentService"
	RoleTeacher        Role = "Teacher"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// RolePermissions lists what each role may do.
var RolePermissions = map[Role][]Permission{
	RoleStudentService: {
		PermissionCoursesRead,
		PermissionCoursesWrite,
		PermissionEnrollmentsWrite,
		PermissionExamsWrite,
	},
	// Exams are scheduled by the student service. Teachers only grade them.
	RoleTeacher: {
		PermissionCourseStatusRead,
		PermissionResultsWrite,
	},
}

// PermissionCodes returns the permission codes granted to r.
func (r Role) PermissionCodes() []string {
	perms := RolePermissions[r]
	codes := make([]string, 0, len(perms))
	for _, p := range perms {
		codes = append(codes, string(p))
	}
	return codes
}
