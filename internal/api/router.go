package api

import (
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/infra/metrics"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

func NewRouter(handler *KeywordsHandler, log pkg.Logger, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       corsMaxAge,
		}))
	}

	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1/keywords")
	v1.POST("/extract", handler.Extract)
	v1.POST("/tickers", handler.ExtractTickers)
	v1.POST("/projects", handler.ExtractProjects)

	return router
}

func requestLogger(log pkg.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start).String())
	}
}
