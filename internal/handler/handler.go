package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/coursehub/coursehub-backend/internal/grading"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/coursehub/coursehub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Service contracts consumed by the handlers. The *service types satisfy them.

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, userID int) (*model.User, error)
}

type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	TeacherOptions(ctx context.Context) ([]model.TeacherOption, error)
	Create(ctx context.Context, req model.CourseRequest) (*model.Course, error)
	Update(ctx context.Context, id int, req model.CourseRequest) (*model.Course, error)
	Delete(ctx context.Context, id int) error
	Status(ctx context.Context, courseID, teacherID int) (*model.CourseStatus, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, studentID int) (*model.Enrollment, error)
	List(ctx context.Context, courseID int) ([]model.Enrollment, error)
}

type ExamService interface {
	Create(ctx context.Context, courseID int, req model.CreateExamRequest) (*model.Exam, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Exam, error)
}

type ExamResultService interface {
	Record(ctx context.Context, teacherID int, req model.RecordResultRequest) (*model.ExamResult, error)
	UpdateScore(ctx context.Context, teacherID, resultID int, req model.UpdateResultRequest) (*model.ExamResult, error)
}

var (
	_ AuthService       = (*service.AuthService)(nil)
	_ CourseService     = (*service.CourseService)(nil)
	_ EnrollmentService = (*service.EnrollmentService)(nil)
	_ ExamService       = (*service.ExamService)(nil)
	_ ExamResultService = (*service.ExamResultService)(nil)
)

// errorStatus maps domain errors to HTTP status and API code. References
// taken from the request body that do not resolve are 422, missing path
// resources are 404.
var errorStatus = []struct {
	err    error
	status int
	code   response.ErrCode
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, response.ErrInvalidCredentials},
	{service.ErrCourseNotFound, http.StatusNotFound, response.ErrCourseNotFound},
	{service.ErrResultNotFound, http.StatusNotFound, response.ErrResultNotFound},
	{service.ErrUserNotFound, http.StatusNotFound, response.ErrNotFound},
	{service.ErrTeacherNotFound, http.StatusUnprocessableEntity, response.ErrTeacherNotFound},
	{service.ErrStudentNotFound, http.StatusUnprocessableEntity, response.ErrStudentNotFound},
	{service.ErrEnrollmentNotFound, http.StatusUnprocessableEntity, response.ErrEnrollmentNotFound},
	{service.ErrExamNotFound, http.StatusUnprocessableEntity, response.ErrExamNotFound},
	{service.ErrExamCourseMismatch, http.StatusUnprocessableEntity, response.ErrExamCourseMismatch},
	{grading.ErrInvalidArgument, http.StatusUnprocessableEntity, response.ErrInvalidArgument},
	{service.ErrNotCourseTeacher, http.StatusForbidden, response.ErrNotCourseTeacher},
	{service.ErrAlreadyEnrolled, http.StatusConflict, response.ErrAlreadyEnrolled},
	{service.ErrResultExists, http.StatusConflict, response.ErrResultExists},
	{service.ErrCourseInUse, http.StatusConflict, response.ErrDependencyExists},
}

// fail writes the response for err. Unknown errors become a 500 and are
// attached to the context for the request logger.
func fail(c *gin.Context, err error) {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			response.Fail(c, m.status, m.code)
			return
		}
	}
	_ = c.Error(err)
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// paramID parses a positive integer path parameter. It writes the 400
// response itself and returns false when the value is invalid.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
