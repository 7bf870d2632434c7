// Package router assembles the gin engine: global middleware, ambient endpoints and the
// consultation routes mounted under the configured prefix.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/exec-consultation-api/internal/handler"
	internalmiddleware "github.com/noah-isme/exec-consultation-api/internal/middleware"
	"github.com/noah-isme/exec-consultation-api/internal/service"
	"github.com/noah-isme/exec-consultation-api/pkg/config"
	"github.com/noah-isme/exec-consultation-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/exec-consultation-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/exec-consultation-api/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Consultations *handler.ConsultationHandler
	StatusChecks  *handler.StatusCheckHandler
	System        *handler.SystemHandler
}

// New builds the engine.
func New(cfg *config.Config, log *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(internalmiddleware.Metrics(metrics))
	}

	r.GET("/health", h.System.Health)
	r.GET("/ready", h.System.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", h.System.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.APIPrefix != "" {
		mount(r.Group(cfg.APIPrefix), h)
	}
	if cfg.APIPrefix == "" || cfg.MountUnprefixed {
		mount(r.Group(""), h)
	}
	return r
}

func mount(g *gin.RouterGroup, h Handlers) {
	g.GET("/", h.System.Root)
	// Serve "/api" itself rather than redirecting it to "/api/".
	if g.BasePath() != "/" {
		g.GET("", h.System.Root)
	}
	g.POST("/consultation", h.Consultations.Submit)
	g.GET("/consultations", h.Consultations.List)
	g.GET("/consultations/export", h.Consultations.Export)
	g.GET("/consultation/:id", h.Consultations.Get)
	g.POST("/status", h.StatusChecks.Create)
	g.GET("/status", h.StatusChecks.List)
}
