package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"talent-sift/internal/delivery/http/response"
	"talent-sift/internal/domain"
	"talent-sift/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header scripts send the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden form field HTML forms send the token in
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "CSRFToken"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every request gets a csrf_token cookie. State-changing requests must echo
// the cookie value either in the X-CSRF-Token header or in the csrf_token
// form field; the rendered job forms carry it as a hidden input.
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)

		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",
				secureCookie,
				false, // readable by scripts that send the header
			)
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		if submitted == "" {
			logCSRFViolation(c, "missing")
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			logCSRFViolation(c, "mismatch")
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func logCSRFViolation(c *gin.Context, reason string) {
	security.DefaultLogger().LogCSRFViolation(
		c.ClientIP(),
		c.Request.UserAgent(),
		c.GetString(string(domain.KeyRequestID)),
		c.Request.URL.Path,
		reason,
	)
}

// CSRFToken returns the token to embed in rendered forms
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
