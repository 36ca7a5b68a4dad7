package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent-sift/config"
	_ "talent-sift/docs" // Important for Swagger
	v1 "talent-sift/internal/delivery/http/v1"
	"talent-sift/internal/domain"
	memoryrepo "talent-sift/internal/repository/memory"
	redisrepo "talent-sift/internal/repository/redis"
	"talent-sift/internal/usecase"
	"talent-sift/pkg/logger"
	"talent-sift/pkg/redis"
	"talent-sift/pkg/security"
	"talent-sift/pkg/session"
	"talent-sift/pkg/validation"
	"talent-sift/pkg/workflow"

	"github.com/gin-gonic/gin"
)

// @title           Talent Sift API
// @version         1.0
// @description     Interview question and job description generation backed by the workflow execution API.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	secLogger := security.InitSecurityLogger("talent-sift", security.Environment())
	defer secLogger.Sync()
	logger.Log.Info("Starting talent-sift", "port", cfg.Port, "workflow_url", cfg.WorkflowURL)

	// 3. Setup Redis (optional)
	redisEnabled := false
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, using in-memory fallback", "error", err)
		}
	} else {
		redisEnabled = true
		defer redis.Close()
	}

	// 4. Setup Repositories
	var skillsRepo domain.SkillsStore
	if redisEnabled {
		skillsRepo = redisrepo.NewSkillsRepository(redis.Client(), cfg.SkillsTTL)
	} else {
		skillsRepo = memoryrepo.NewSkillsRepository(memoryrepo.DefaultCapacity, cfg.SkillsTTL)
	}

	// 5. Setup Workflow Client and Sessions
	workflowClient := workflow.NewClient(cfg.WorkflowURL, cfg.WorkflowTimeout)

	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		logger.Log.Error("Failed to create session manager", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validation.New()
	jobFormUC := usecase.NewJobFormUsecase(workflowClient, skillsRepo, validate, usecase.PayloadConfig{
		OrgID:   cfg.WorkflowOrgID,
		ExeName: cfg.WorkflowExeName,
	})
	pages, err := usecase.NewPageRegistry(cfg.PageCacheSize, jobFormUC)
	if err != nil {
		logger.Log.Error("Failed to create page registry", "error", err)
		os.Exit(1)
	}
	healthUC := usecase.NewHealthUsecase(redisEnabled)

	// 7. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		JobFormUC: jobFormUC,
		Pages:     pages,
		Skills:    skillsRepo,
		HealthUC:  healthUC,
		Sessions:  sessions,
		Config:    cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to set up router", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
