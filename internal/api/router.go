package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/social-graph/config"
	"github.com/d60-Lab/social-graph/internal/api/handler"
	"github.com/d60-Lab/social-graph/internal/service"
	"github.com/d60-Lab/social-graph/pkg/middleware"
)

// NewRouter 装配中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("social-graph"))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.JWT.Secret))
	{
		contacts := v1.Group("/contacts")
		{
			contacts.POST("/requests", h.SendRequest)
			contacts.POST("/requests/:id/accept", h.AcceptRequest)
			contacts.POST("/requests/:id/reject", h.RejectRequest)
			contacts.GET("/:user_id/requests/received", h.ListReceived)
			contacts.GET("/:user_id/requests/sent", h.ListSent)
			contacts.GET("/:user_id", h.ListContacts)
			contacts.DELETE("/:other_id", h.RemoveContact)
		}
		v1.POST("/likes/toggle", h.ToggleLike)
		v1.GET("/feed", h.Feed)
		v1.POST("/posts", h.CreatePost)
		v1.POST("/posts/:id/comments", h.CreateComment)
		v1.GET("/posts/:id/comments", h.ListComments)
		v1.DELETE("/comments/:id", h.DeleteComment)
	}
	return r
}

// registerValidators 流口径 / 排序键的绑定校验
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("feedmode", func(fl validator.FieldLevel) bool {
		switch service.FeedMode(fl.Field().String()) {
		case service.FeedModeOwn, service.FeedModeAll, service.FeedModeSpecific:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
		switch service.SortKey(fl.Field().String()) {
		case service.SortLatest, service.SortLikes, service.SortComments:
			return true
		}
		return false
	})
}
