package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hvacinsights/genie-dashboard/internal/config"
	"github.com/hvacinsights/genie-dashboard/internal/http/handlers"
	"github.com/hvacinsights/genie-dashboard/internal/http/middleware"
	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
	"github.com/hvacinsights/genie-dashboard/internal/session"

	_ "github.com/hvacinsights/genie-dashboard/docs"
)

func Router(cfg config.Config, kb *knowledge.KnowledgeBase, sessions *session.Registry, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		KB:        kb,
		Sessions:  sessions,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	// Event streams outlive REQUEST_TIMEOUT, so they sit outside the timed group.
	r.GET("/api/genie/sessions/:id/events", h.SessionEvents)

	api := r.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	{
		api.GET("/locations", h.LocationsList)
		api.GET("/locations/:slug", h.LocationDetails)
		api.GET("/trending-topics", h.TrendingTopics)
		api.GET("/call-reasons", h.CallReasons)
		api.GET("/frequent-callers", h.FrequentCallers)
		api.GET("/brands", h.Brands)

		api.POST("/genie/sessions", h.CreateSession)
		api.GET("/genie/sessions/:id", h.GetSession)
		api.DELETE("/genie/sessions/:id", h.DeleteSession)
		api.POST("/genie/sessions/:id/messages", h.SubmitMessage)
		api.PUT("/genie/sessions/:id/open", h.SetOpen)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.GET("/sessions", h.SessionStats)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
