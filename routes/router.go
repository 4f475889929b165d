package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cybershieldpro/backend/blog"
	"github.com/cybershieldpro/backend/config"
	"github.com/cybershieldpro/backend/controllers"
	"github.com/cybershieldpro/backend/middleware"
	"github.com/cybershieldpro/backend/store"
	"github.com/cybershieldpro/backend/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(loader *blog.Loader, jobs store.JobRepository, settings *store.SettingsStore) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		utils.Sugar.Errorf("access logger init failed, requests will not be logged: %v", err)
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	blogController := controllers.NewBlogController(loader)
	careerController := controllers.NewCareerController(jobs)
	settingsController := controllers.NewSettingsController(settings)
	contactController := controllers.NewContactController(settings)
	authController := controllers.NewAuthController()

	api := r.Group("/api/v1")

	api.GET("/blog/posts", blogController.ListPosts)
	api.GET("/blog/posts/:slug", blogController.GetPost)

	api.GET("/careers/jobs", careerController.ListJobs)
	api.GET("/careers/jobs/:id", careerController.GetJob)

	api.POST("/contact", middleware.RateLimitMiddleware(), contactController.Submit)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())

	protected.GET("/admin/careers/jobs", careerController.ListAllJobs)
	protected.POST("/careers/jobs", careerController.CreateJob)
	protected.PUT("/careers/jobs/:id", careerController.UpdateJob)
	protected.DELETE("/careers/jobs/:id", careerController.DeleteJob)

	protected.GET("/settings/smtp", settingsController.GetSmtp)
	protected.PUT("/settings/smtp", settingsController.SaveSmtp)
	protected.POST("/settings/smtp/test", settingsController.SendTest)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
