package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"review-mine/internal/i18n"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	catalog *i18n.Catalog,
	selfID string,
	networkH *NetworkHandler,
	profileH *ProfileHandler,
	metaH *MetaHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, JSON content-type y sesion explicita.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware(), sessionMiddleware(catalog, selfID))

	r.GET("/healthz", metaH.Health)
	r.GET("/i18n", metaH.Translations)
	r.GET("/pricing", metaH.Pricing)

	auth := r.Group("/auth")
	auth.POST("/login", metaH.Login)
	auth.POST("/register", metaH.Register)

	r.GET("/network", networkH.Network)
	r.GET("/trending", networkH.Trending)
	r.GET("/leaderboard/:domain", networkH.Leaderboard)
	r.GET("/posts", networkH.Posts)

	profiles := r.Group("/profiles")
	profiles.GET("/:id", profileH.GetProfile)
	profiles.PUT("/:id", profileH.UpdateProfile)
	profiles.POST("/:id/feedback", profileH.SubmitFeedback)
	profiles.POST("/:id/insight", profileH.Insight)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
