package web

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"

	"talent-sift/internal/delivery/http/middleware"
	"talent-sift/internal/domain"
	"talent-sift/internal/usecase"
	"talent-sift/pkg/apperror"
	"talent-sift/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const pageTemplate = "page.tmpl"

// LoadTemplates parses the embedded page templates
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// StaticFiles serves the embedded stylesheet and script
func StaticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}

type PageHandler struct {
	registry *usecase.PageRegistry
}

// NewPageHandler registers the two job form pages. submitGuard runs before
// every form submission (rate limiting).
func NewPageHandler(r gin.IRouter, registry *usecase.PageRegistry, submitGuard ...gin.HandlerFunc) {
	handler := &PageHandler{registry: registry}

	pages := []struct {
		path string
		mode domain.FormMode
	}{
		{"/", domain.ModeInterviewQuestions},
		{"/job-description", domain.ModeJobDescription},
	}

	for _, p := range pages {
		r.GET(p.path, handler.Show(p.mode))
		handlers := append([]gin.HandlerFunc{}, submitGuard...)
		r.POST(p.path, append(handlers, handler.Submit(p.mode))...)
	}
}

// Show renders a freshly loaded page for the current session
func (h *PageHandler) Show(mode domain.FormMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := h.registry.Mount(middleware.SessionID(c), mode, c.Request.URL.Query())
		c.HTML(http.StatusOK, pageTemplate, NewPageView(page.Snapshot(), middleware.CSRFToken(c), nil))
	}
}

// Submit applies the posted fields to the page, submits it and renders the outcome
func (h *PageHandler) Submit(mode domain.FormMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := h.registry.Open(middleware.SessionID(c), mode, c.Request.URL.Query())

		values := make(map[string]string)
		for _, field := range mode.FieldNames() {
			if value, ok := c.GetPostForm(field); ok {
				values[field] = value
			}
		}

		var notifications []domain.Notification
		notifier := domain.NotifierFunc(func(n domain.Notification) {
			notifications = append(notifications, n)
		})

		status := http.StatusOK
		if err := page.SubmitValues(c.Request.Context(), values, notifier); err != nil {
			status = http.StatusInternalServerError
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				status = appErr.Code
			}
			logger.Log.Info("Job form submission rejected",
				"mode", mode,
				"status", status,
				"error", err.Error(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
			)
		}

		c.HTML(status, pageTemplate, NewPageView(page.Snapshot(), middleware.CSRFToken(c), notifications))
	}
}
