package handler

import (
	"net/http"

	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/coursehub/coursehub-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// ExamResultHandler lets teachers record and correct exam results.
type ExamResultHandler struct {
	resultService ExamResultService
}

// NewExamResultHandler creates a new ExamResultHandler.
func NewExamResultHandler(resultService ExamResultService) *ExamResultHandler {
	return &ExamResultHandler{resultService: resultService}
}

// RecordResult godoc
// POST /api/v1/teacher/results
// Records the points of one enrollment on one exam. Set "notify": false to
// skip the live alert.
func (h *ExamResultHandler) RecordResult(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.RecordResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.resultService.Record(c.Request.Context(), claims.UserID, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"result": result})
}

// UpdateResult godoc
// PATCH /api/v1/teacher/results/:id
func (h *ExamResultHandler) UpdateResult(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.resultService.UpdateScore(c.Request.Context(), claims.UserID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}
