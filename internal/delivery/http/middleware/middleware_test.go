package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"talent-sift/pkg/apperror"
	"talent-sift/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("RequestID")) })

	const id = "0b6c3f5e-8a7d-4c1e-9f2a-5d4b3c2a1f00"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, id, w.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Body.String())
	assert.Len(t, w.Body.String(), 36)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://talentsift.example"}))
	r.POST("/v1/workflows/job-descriptions", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/v1/workflows/job-descriptions", nil)
	req.Header.Set("Origin", "https://talentsift.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://talentsift.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/workflows/job-descriptions", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitInMemoryFallback(t *testing.T) {
	config := SubmitRateLimitConfig(2, time.Minute)
	config.KeyPrefix = "rl:test:" + t.Name() + ":"

	r := gin.New()
	r.POST("/", RateLimitMiddleware(config), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestSubmitRateLimitConfigDefaults(t *testing.T) {
	defaults := DefaultRateLimitConfig()

	config := SubmitRateLimitConfig(0, 0)
	assert.Equal(t, defaults.Limit, config.Limit)
	assert.Equal(t, defaults.Window, config.Window)
	assert.Equal(t, "rl:submit:", config.KeyPrefix)

	config = SubmitRateLimitConfig(-5, -time.Second)
	assert.Equal(t, defaults.Limit, config.Limit)
	assert.Equal(t, defaults.Window, config.Window)

	config = SubmitRateLimitConfig(3, 30*time.Second)
	assert.Equal(t, 3, config.Limit)
	assert.Equal(t, 30*time.Second, config.Window)

	// a zero threshold must not turn every submission away
	config.KeyPrefix = "rl:test:" + t.Name() + ":"
	config.Limit = SubmitRateLimitConfig(0, 0).Limit
	r := gin.New()
	r.POST("/", RateLimitMiddleware(config), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFAcceptsFormFieldAndRejectsMismatch(t *testing.T) {
	r := gin.New()
	r.Use(CSRFMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, CSRFToken(c)) })
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Body.String()
	require.Len(t, token, CSRFTokenLength*2)

	post := func(field string) int {
		form := url.Values{CSRFTokenFormField: {field}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: CSRFTokenCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post(token))
	assert.Equal(t, http.StatusForbidden, post("forged"))
	assert.Equal(t, http.StatusForbidden, post(""))
}

func TestSessionReplacesTamperedCookie(t *testing.T) {
	manager, err := session.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Session(manager, false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	first := w.Body.String()
	require.NotEmpty(t, first)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookies[0].Value + "x"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, first, w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		c.Error(apperror.Validation(map[string]string{"jobTitle": "Job Title is required"}))
	})
	r.GET("/internal", func(c *gin.Context) {
		c.Error(errors.New("connection reset by peer"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Message string            `json:"message"`
		Error   map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing Information", body.Message)
	assert.Equal(t, "Job Title is required", body.Error["jobTitle"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
