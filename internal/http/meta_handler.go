package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const proMonthlyPriceVND = 15000

// MetaHandler sirve endpoints sin logica de dominio: salud, textos, precios y auth stub.
type MetaHandler struct {
	logger *zap.Logger
}

func NewMetaHandler(logger *zap.Logger) *MetaHandler {
	return &MetaHandler{logger: logger}
}

// Health maneja GET /healthz.
func (h *MetaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Translations maneja GET /i18n con la tabla del idioma de la sesion.
func (h *MetaHandler) Translations(c *gin.Context) {
	s := sessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"language": s.Language, "translations": s.T})
}

type pricingTier struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       int      `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
}

// Pricing maneja GET /pricing.
func (h *MetaHandler) Pricing(c *gin.Context) {
	t := sessionFrom(c).T
	c.JSON(http.StatusOK, gin.H{"tiers": []pricingTier{
		{ID: "free", Title: t.Pricing.FreeTitle, Price: 0, Period: t.Pricing.PerMonth, Features: t.Pricing.FeaturesFree},
		{ID: "pro", Title: t.Pricing.ProTitle, Price: proMonthlyPriceVND, Period: t.Pricing.PerMonth, Features: t.Pricing.FeaturesPro, Recommended: true},
	}})
}

// Login maneja POST /auth/login. Stub sin autenticacion: siempre entra como el perfil propio.
func (h *MetaHandler) Login(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_id": sessionFrom(c).SelfID})
}

// Register maneja POST /auth/register. Stub: no crea nada.
func (h *MetaHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"profile_id": sessionFrom(c).SelfID, "persisted": false})
}
