package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"review-mine/internal/i18n"
	"review-mine/internal/service"
)

const sessionKey = "session"

// sessionMiddleware arma la sesion (idioma + perfil propio) y la deja en el contexto de gin.
func sessionMiddleware(catalog *i18n.Catalog, selfID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := catalog.NewSession(c.Query("lang"), c.GetHeader("Accept-Language"), selfID)
		c.Set(sessionKey, s)
		c.Header("Content-Language", string(s.Language))
		c.Next()
	}
}

func sessionFrom(c *gin.Context) i18n.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(i18n.Session); ok {
			return s
		}
	}
	return i18n.Session{}
}

// respondStoreError traduce errores del store a status HTTP.
func respondStoreError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNoData):
		logger.Warn(op+" failed, dataset unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable"})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
