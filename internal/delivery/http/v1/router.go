package v1

import (
	"net/http"

	"talent-sift/config"
	"talent-sift/internal/delivery/http/middleware"
	"talent-sift/internal/delivery/http/response"
	"talent-sift/internal/delivery/http/web"
	"talent-sift/internal/domain"
	"talent-sift/internal/usecase"
	"talent-sift/pkg/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobFormUC domain.JobFormUsecase
	Pages     *usecase.PageRegistry
	Skills    domain.SkillsStore
	HealthUC  usecase.HealthUsecase
	Sessions  *session.Manager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(templates)

	cfg := deps.Config

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.GlobalRateLimitMiddleware(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow()))
	r.Use(middleware.ErrorHandler())

	r.StaticFS("/static", web.StaticFiles())

	submitGuard := middleware.RateLimitMiddleware(
		middleware.SubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, cfg.RateLimitWindow()),
	)

	// HTML pages
	pages := r.Group("")
	pages.Use(middleware.SecurityHeadersMiddleware())
	pages.Use(middleware.Session(deps.Sessions, cfg.CookieSecure))
	pages.Use(middleware.CSRFMiddleware(cfg.CookieSecure))
	web.NewPageHandler(pages, deps.Pages, submitGuard)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", middleware.SwaggerHeadersMiddleware(), ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API shares the browser session so the skills cache follows the user
	api := v1.Group("")
	api.Use(middleware.SecurityHeadersMiddleware())
	api.Use(middleware.Session(deps.Sessions, cfg.CookieSecure))
	{
		NewWorkflowHandler(api, deps.JobFormUC, submitGuard)
		NewSkillsHandler(api, deps.Skills)
	}

	return r, nil
}
