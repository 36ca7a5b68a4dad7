package middleware

import (
	"errors"
	"net/http"

	"talent-sift/internal/delivery/http/response"
	"talent-sift/pkg/apperror"
	"talent-sift/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed", "path", c.FullPath(), "status", appErr.Code, "error", appErr.Err)
			}
			if len(appErr.Fields) > 0 {
				response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
