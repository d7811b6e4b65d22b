package model

// ResultLine is one exam result inside a student summary.
type ResultLine struct {
	ExamID       int      `json:"exam_id"`
	ExamType     ExamType `json:"exam_type"`
	PointsScored float64  `json:"points_scored"`
	TotalPoints  float64  `json:"total_points"`
	IsPassed     bool     `json:"is_passed"`
}

// StudentSummary is the per-student status of one course.
type StudentSummary struct {
	EnrollmentID    int          `json:"enrollment_id"`
	StudentID       int          `json:"student_id"`
	StudentName     string       `json:"student_name"`
	IndexNumber     string       `json:"index_number"`
	TotalScored     float64      `json:"total_scored"`
	TotalMaxPoints  float64      `json:"total_max_points"`
	IsPassedOverall bool         `json:"is_passed_overall"`
	Results         []ResultLine `json:"results"`
}

// CourseStatus is everything the teacher's course status page renders.
type CourseStatus struct {
	Course           Course           `json:"course"`
	Info             []StudentSummary `json:"info"`
	Maximum          float64          `json:"maximum"`
	NumberOfPassed   int              `json:"number_of_passed"`
	NumberOfStudents int              `json:"number_of_students"`
	Courses          []Course         `json:"courses"`
}
