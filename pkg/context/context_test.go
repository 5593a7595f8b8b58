package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Persona/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(h func(*gin.Context) error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Wrap(h))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestWrapRendersApiError(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return response.Resolve(404, "User record not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"User record not found"`)
}

func TestWrapCollapsesUnknownErrorsTo500(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return errors.New("some internal detail that must not leak")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "InternalServerError")
	assert.NotContains(t, w.Body.String(), "internal detail")
}

func TestWrapLeavesWrittenResponsesAlone(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return errors.New("late failure")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"OK"`)
}
