package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/middleware"
	"github.com/pinora-app/pinora-backend/api/route/route_media"
	"github.com/pinora-app/pinora-backend/api/route/route_user"
	"github.com/pinora-app/pinora-backend/bootstrap"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/mongo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	host domain.MediaHost,
	limiter *middleware.RateLimiter,
	engine *gin.Engine,
) {
	engine.Use(middleware.RequestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.Use(limiter.Middleware())

	// 公开接口
	publicRouter := api.Group("")
	// 需要登录的接口
	protectedRouter := api.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	route_media.NewRelatedMediaRouter(timeout, db, env.RelatedRankingMode, env.RelatedLimit, publicRouter)
	route_media.NewMediaRouter(timeout, db, host, publicRouter, protectedRouter)
	route_media.NewCommentRouter(timeout, db, publicRouter, protectedRouter)
	route_user.NewUserRouter(timeout, db, host, publicRouter, protectedRouter)
}
