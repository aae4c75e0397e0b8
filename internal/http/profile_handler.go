package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"review-mine/internal/domain"
	"review-mine/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger   *zap.Logger
	store    *service.DatasetStore
	feedback *service.FeedbackService
	insights *service.InsightService
}

// NewProfileHandler crea una instancia de ProfileHandler con dependencias necesarias.
func NewProfileHandler(
	logger *zap.Logger,
	store *service.DatasetStore,
	feedback *service.FeedbackService,
	insights *service.InsightService,
) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		store:    store,
		feedback: feedback,
		insights: insights,
	}
}

// GetProfile maneja GET /profiles/:id. El id "me" es el perfil propio.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	s := sessionFrom(c)
	id := s.ResolveProfileID(c.Param("id"))

	profile, err := h.store.Profile(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, h.logger, "get profile", err)
		return
	}

	var labels map[domain.Domain]string
	if s.T != nil {
		labels = s.T.DomainLabels()
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"level":     profile.Level(),
		"is_self":   id == s.SelfID,
		"radar":     service.RadarPoints(profile.Reviews, labels),
		"breakdown": service.DomainBreakdown(profile.Reviews),
	})
}

// UpdateProfile maneja PUT /profiles/:id: reemplazo completo del perfil (editor del dashboard).
// Un id desconocido no es error: responde updated=false.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid update profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if profile.TrustScore < 0 || profile.TrustScore > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trustScore must be between 0 and 100"})
		return
	}
	for _, r := range profile.Reviews {
		if !r.RatingInRange() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "review rating must be between 1 and 5"})
			return
		}
	}

	profile.ID = sessionFrom(c).ResolveProfileID(c.Param("id"))

	ds, err := h.store.Update(c.Request.Context(), profile)
	if err != nil {
		respondStoreError(c, h.logger, "update profile", err)
		return
	}

	updated, ok := ds.FindUser(profile.ID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true, "profile": updated})
}

// SubmitFeedback maneja POST /profiles/:id/feedback. Valida pero no persiste.
func (h *ProfileHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		Domain    string `json:"domain" binding:"required"`
		Rating    int    `json:"rating" binding:"required"`
		Comment   string `json:"comment" binding:"required"`
		Tag       string `json:"tag"`
		Anonymous *bool  `json:"anonymous"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s := sessionFrom(c)
	id := s.ResolveProfileID(c.Param("id"))
	if id == s.SelfID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot submit feedback to own profile"})
		return
	}

	// Anonimo por defecto.
	anonymous := true
	if req.Anonymous != nil {
		anonymous = *req.Anonymous
	}

	review, err := h.feedback.Submit(c.Request.Context(), id, service.FeedbackInput{
		Domain:    parseDomain(req.Domain),
		Rating:    req.Rating,
		Comment:   req.Comment,
		Tag:       domain.FeedbackTag(req.Tag),
		Anonymous: anonymous,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidFeedback) || errors.Is(err, service.ErrUnknownDomain) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c, h.logger, "submit feedback", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"review": review, "persisted": false})
}

// Insight maneja POST /profiles/:id/insight. El insight siempre es un string.
func (h *ProfileHandler) Insight(c *gin.Context) {
	id := sessionFrom(c).ResolveProfileID(c.Param("id"))

	text, err := h.insights.ProfileInsight(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, h.logger, "profile insight", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_id": id, "insight": text})
}
