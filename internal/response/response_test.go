package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, h gin.HandlerFunc, header http.Header) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"course": "Databases"})
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body.Error)
	assert.Equal(t, map[string]interface{}{"course": "Databases"}, body.Data)
	assert.NotEmpty(t, body.Metadata.RequestID)
	assert.Equal(t, body.Metadata.RequestID, w.Header().Get("X-Request-ID"))
}

func TestFailWithFields(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"ects": "ects is required"})
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrValidation, body.Error.Code)
	assert.Equal(t, GetMessage(ErrValidation), body.Error.Message)
	assert.Equal(t, "ects is required", body.Error.Fields["ects"])
}

func TestRequestIDReusesCallerHeader(t *testing.T) {
	_, body := serve(t, func(c *gin.Context) {
		Success(c, http.StatusOK, RequestID(c))
	}, http.Header{"X-Request-Id": {"trace-42"}})
	assert.Equal(t, "trace-42", body.Metadata.RequestID)
	assert.Equal(t, "trace-42", body.Data)

	_, body = serve(t, func(c *gin.Context) {
		Success(c, http.StatusOK, nil)
	}, http.Header{"X-Request-Id": {strings.Repeat("x", 200)}})
	assert.Len(t, body.Metadata.RequestID, 36)
}

func TestGetMessageFallback(t *testing.T) {
	assert.Equal(t, "Course not found.", GetMessage(ErrCourseNotFound))
	assert.Equal(t, "An unexpected error occurred.", GetMessage(ErrCode("NOPE")))
}
