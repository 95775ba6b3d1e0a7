package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	router := gin.New()
	router.GET("/ok", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"value": 7})
	})
	router.GET("/fail", func(c *gin.Context) {
		Error(c, http.StatusConflict, "STATE_CONFLICT", "already decided")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"value":7}}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/fail", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"STATE_CONFLICT","message":"already decided"}}`, w.Body.String())
}
