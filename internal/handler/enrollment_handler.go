package handler

import (
	"net/http"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/coursehub/coursehub-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// EnrollmentHandler handles enrollments and the exam schedule of a course.
type EnrollmentHandler struct {
	enrollmentService EnrollmentService
	examService       ExamService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService EnrollmentService, examService ExamService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService, examService: examService}
}

// Enroll godoc
// POST /api/v1/courses/:id/enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), courseID, req.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// ListEnrollments godoc
// GET /api/v1/courses/:id/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.List(c.Request.Context(), courseID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// CreateExam godoc
// POST /api/v1/courses/:id/exams
func (h *EnrollmentHandler) CreateExam(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.CreateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exam, err := h.examService.Create(c.Request.Context(), courseID, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"exam": exam})
}

// ListExams godoc
// GET /api/v1/courses/:id/exams
func (h *EnrollmentHandler) ListExams(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	exams, err := h.examService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}
