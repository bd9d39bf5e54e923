package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/feedbacks", NewFeedbackHandler("/index.html").Submit)
	return r
}

func TestSubmit_FormRedirects(t *testing.T) {
	r := newRouter()

	form := url.Values{}
	form.Set("name", "Ada")
	form.Set("message", "More JavaScript books please")

	req := httptest.NewRequest(http.MethodPost, "/api/feedbacks", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/index.html", w.Header().Get("Location"))
}

func TestSubmit_JSONRedirects(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/feedbacks", strings.NewReader(`{"name":"Ada","rating":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/index.html", w.Header().Get("Location"))
}

func TestSubmit_MalformedJSON(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/feedbacks", strings.NewReader(`[1,2`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Feedback data must be a JSON object.", w.Body.String())
}
