package handler

import (
	"net/http"

	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/report"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/coursehub/coursehub-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// CourseHandler handles course administration and the teacher status page.
type CourseHandler struct {
	courseService CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses godoc
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// GetCourse godoc
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// TeacherOptions godoc
// GET /api/v1/teachers/options
// Lists the teachers a course can be assigned to, labelled with title and name.
func (h *CourseHandler) TeacherOptions(c *gin.Context) {
	opts, err := h.courseService.TeacherOptions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": opts})
}

// CreateCourse godoc
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// UpdateCourse godoc
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// DeleteCourse godoc
// DELETE /api/v1/courses/:id
// Deleting a course that is already gone still succeeds.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// CourseStatus godoc
// GET /api/v1/teacher/courses/:id/status
// Returns per-student results, maximum points and pass counts of one of the
// caller's courses.
func (h *CourseHandler) CourseStatus(c *gin.Context) {
	status, ok := h.loadStatus(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, status)
}

// ExportCourseStatus godoc
// GET /api/v1/teacher/courses/:id/status/export
// Downloads the course status as an xlsx workbook.
func (h *CourseHandler) ExportCourseStatus(c *gin.Context) {
	status, ok := h.loadStatus(c)
	if !ok {
		return
	}

	raw, err := report.ExportCourseStatus(status)
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.StatusFileName(status.Course)+`"`)
	c.Data(http.StatusOK, report.XLSXContentType, raw)
}

func (h *CourseHandler) loadStatus(c *gin.Context) (*model.CourseStatus, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return nil, false
	}
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	status, err := h.courseService.Status(c.Request.Context(), id, claims.UserID)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return status, true
}
