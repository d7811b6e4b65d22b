package service

import (
	"context"
	"sort"
	"time"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/repository"
)

// In-memory stores. Each one returns err, when set, from every call so
// storage failures can be simulated.

type fakeCourses struct {
	rows    map[int]model.Course
	nextID  int
	inUse   map[int]bool
	err     error
	queries int
}

func newFakeCourses(courses ...model.Course) *fakeCourses {
	f := &fakeCourses{rows: map[int]model.Course{}, inUse: map[int]bool{}, nextID: 100}
	for _, c := range courses {
		f.rows[c.ID] = c
	}
	return f
}

func (f *fakeCourses) sorted(keep func(model.Course) bool) []model.Course {
	var out []model.Course
	for _, c := range f.rows {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCourses) List(context.Context) ([]model.Course, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(model.Course) bool { return true }), nil
}

func (f *fakeCourses) ListByTeacher(_ context.Context, teacherID int) ([]model.Course, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(c model.Course) bool { return c.TeacherID == teacherID }), nil
}

func (f *fakeCourses) GetByID(_ context.Context, id int) (*model.Course, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCourses) Exists(_ context.Context, id int) (bool, error) {
	f.queries++
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeCourses) Create(_ context.Context, c *model.Course) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	c.ID = f.nextID
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCourses) Update(_ context.Context, c *model.Course) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[c.ID]; !ok {
		return repository.ErrNotFound
	}
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCourses) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if f.inUse[id] {
		return repository.ErrDependencyExists
	}
	delete(f.rows, id)
	return nil
}

type fakeUsers struct {
	rows   map[int]model.User
	nextID int
	err    error
}

func newFakeUsers(users ...model.User) *fakeUsers {
	f := &fakeUsers{rows: map[int]model.User{}, nextID: 100}
	for _, u := range users {
		f.rows[u.ID] = u
	}
	return f
}

func (f *fakeUsers) GetByID(_ context.Context, id int) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetTeacher(ctx context.Context, id int) (*model.User, error) {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != model.RoleTeacher {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) ListTeachers(context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.User
	for _, u := range f.rows {
		if u.Role == model.RoleTeacher {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.rows {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.rows[u.ID] = *u
	return nil
}

type fakeStudents struct {
	rows   map[int]model.Student
	nextID int
	err    error
}

func newFakeStudents(students ...model.Student) *fakeStudents {
	f := &fakeStudents{rows: map[int]model.Student{}, nextID: 100}
	for _, s := range students {
		f.rows[s.ID] = s
	}
	return f
}

func (f *fakeStudents) GetByID(_ context.Context, id int) (*model.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *fakeStudents) Upsert(_ context.Context, s *model.Student) error {
	if f.err != nil {
		return f.err
	}
	for id, existing := range f.rows {
		if existing.IndexNumber == s.IndexNumber {
			s.ID = id
			f.rows[id] = *s
			return nil
		}
	}
	f.nextID++
	s.ID = f.nextID
	f.rows[s.ID] = *s
	return nil
}

// fakeEnrollments keeps rows in insertion order.
type fakeEnrollments struct {
	rows []model.Enrollment
	err  error
	// beforeCreate runs ahead of Create, standing in for a concurrent writer.
	beforeCreate func()
}

func (f *fakeEnrollments) GetByID(_ context.Context, id int) (*model.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.rows {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEnrollments) ListByCourse(_ context.Context, courseID int) ([]model.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Enrollment
	for _, e := range f.rows {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollments) CountByCourse(ctx context.Context, courseID int) (int, error) {
	rows, err := f.ListByCourse(ctx, courseID)
	return len(rows), err
}

func (f *fakeEnrollments) Create(_ context.Context, e *model.Enrollment) error {
	if f.beforeCreate != nil {
		f.beforeCreate()
	}
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.rows {
		if existing.CourseID == e.CourseID && existing.StudentID == e.StudentID {
			return repository.ErrDuplicate
		}
	}
	e.ID = len(f.rows) + 1000
	e.CreatedAt = time.Date(2024, 10, 1, 0, 0, len(f.rows), 0, time.UTC)
	f.rows = append(f.rows, *e)
	return nil
}

type fakeExams struct {
	rows []model.Exam
	err  error
}

func (f *fakeExams) GetByID(_ context.Context, id int) (*model.Exam, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.rows {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExams) ListByCourse(_ context.Context, courseID int) ([]model.Exam, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Exam
	for _, e := range f.rows {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExams) Create(_ context.Context, e *model.Exam) error {
	if f.err != nil {
		return f.err
	}
	e.ID = len(f.rows) + 500
	f.rows = append(f.rows, *e)
	return nil
}

// fakeResults resolves enrollments and exams on read, as the SQL join does.
type fakeResults struct {
	rows        []model.ExamResult
	enrollments *fakeEnrollments
	exams       *fakeExams
	err         error
	updates     int
}

func (f *fakeResults) hydrate(r model.ExamResult) model.ExamResult {
	for _, e := range f.enrollments.rows {
		if e.ID == r.EnrollmentID {
			e := e
			r.Enrollment = &e
		}
	}
	for _, x := range f.exams.rows {
		if x.ID == r.ExamID {
			x := x
			r.Exam = &x
		}
	}
	return r
}

func (f *fakeResults) GetByID(_ context.Context, id int) (*model.ExamResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.ID == id {
			h := f.hydrate(r)
			return &h, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeResults) ListByCourse(_ context.Context, courseID int) ([]model.ExamResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.ExamResult
	for _, r := range f.rows {
		h := f.hydrate(r)
		if h.Enrollment != nil && h.Enrollment.CourseID == courseID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeResults) Create(_ context.Context, r *model.ExamResult) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.rows {
		if existing.EnrollmentID == r.EnrollmentID && existing.ExamID == r.ExamID {
			return repository.ErrDuplicate
		}
	}
	r.ID = len(f.rows) + 1
	f.rows = append(f.rows, model.ExamResult{
		ID: r.ID, EnrollmentID: r.EnrollmentID, ExamID: r.ExamID,
		PointsScored: r.PointsScored, IsPassed: r.IsPassed,
	})
	return nil
}

func (f *fakeResults) UpdateScore(_ context.Context, r *model.ExamResult) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == r.ID {
			f.rows[i].PointsScored = r.PointsScored
			f.rows[i].IsPassed = r.IsPassed
			f.updates++
			return nil
		}
	}
	return repository.ErrNotFound
}

// world wires a consistent set of fakes.
type world struct {
	courses     *fakeCourses
	users       *fakeUsers
	students    *fakeStudents
	enrollments *fakeEnrollments
	exams       *fakeExams
	results     *fakeResults
}

const (
	ownerID        = 7
	otherTeacherID = 8
	dbCourseID     = 1
)

func newWorld() *world {
	enrollments := &fakeEnrollments{}
	exams := &fakeExams{}
	return &world{
		courses: newFakeCourses(model.Course{ID: dbCourseID, Name: "Databases", TeacherID: ownerID, AcademicYear: "2024/2025", ECTS: 6, Semester: model.SemesterWinter}),
		users: newFakeUsers(
			model.User{ID: ownerID, Email: "ana@uni.test", Title: "Dr", FirstName: "Ana", LastName: "Kovac", Role: model.RoleTeacher},
			model.User{ID: otherTeacherID, Email: "ivo@uni.test", FirstName: "Ivo", LastName: "Babic", Role: model.RoleTeacher},
			model.User{ID: 9, Email: "office@uni.test", FirstName: "Office", LastName: "Clerk", Role: model.RoleStudentService},
		),
		students: newFakeStudents(
			model.Student{ID: 11, IndexNumber: "E1/2024", FirstName: "Mila", LastName: "Horvat"},
			model.Student{ID: 12, IndexNumber: "E2/2024", FirstName: "Luka", LastName: "Novak"},
		),
		enrollments: enrollments,
		exams:       exams,
		results:     &fakeResults{enrollments: enrollments, exams: exams},
	}
}

func (w *world) enroll(id, studentID, course int) {
	w.enrollments.rows = append(w.enrollments.rows, model.Enrollment{ID: id, StudentID: studentID, CourseID: course})
}

func (w *world) exam(id, course int, total float64) {
	w.exams.rows = append(w.exams.rows, model.Exam{ID: id, CourseID: course, Type: model.ExamTypeMidterm, TotalPoints: total})
}

func (w *world) result(id, enrollmentID, examID int, scored float64) {
	w.results.rows = append(w.results.rows, model.ExamResult{ID: id, EnrollmentID: enrollmentID, ExamID: examID, PointsScored: scored})
}
