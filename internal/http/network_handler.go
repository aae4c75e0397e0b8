package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"review-mine/internal/domain"
	"review-mine/internal/service"
)

// NetworkHandler sirve las vistas de directorio, ranking y stream.
type NetworkHandler struct {
	logger   *zap.Logger
	store    *service.DatasetStore
	pageSize int
}

// NewNetworkHandler crea una instancia de NetworkHandler con dependencias necesarias.
func NewNetworkHandler(logger *zap.Logger, store *service.DatasetStore, pageSize int) *NetworkHandler {
	return &NetworkHandler{
		logger:   logger,
		store:    store,
		pageSize: pageSize,
	}
}

// profileCard es la version resumida de un perfil para listados.
type profileCard struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Username      string   `json:"username"`
	Avatar        string   `json:"avatar"`
	TrustScore    float64  `json:"trustScore"`
	Level         int      `json:"level"`
	Badges        []string `json:"badges,omitempty"`
	TopSkills     []string `json:"topSkills,omitempty"`
	WeeklyReviews int      `json:"weeklyReviews"`
	Rank          int      `json:"rank,omitempty"`
}

func newProfileCard(p domain.UserProfile) profileCard {
	return profileCard{
		ID:            p.ID,
		Name:          p.Name,
		Username:      p.Username,
		Avatar:        p.Avatar,
		TrustScore:    p.TrustScore,
		Level:         p.Level(),
		Badges:        p.Badges,
		TopSkills:     p.TopSkills,
		WeeklyReviews: p.WeeklyReviewCount(),
	}
}

func newProfileCards(users []domain.UserProfile) []profileCard {
	out := make([]profileCard, len(users))
	for i, u := range users {
		out[i] = newProfileCard(u)
	}
	return out
}

type networkStats struct {
	ActiveProfiles    int     `json:"active_profiles"`
	TotalReviews      int     `json:"total_reviews"`
	WeeklyReviews     int     `json:"weekly_reviews"`
	ConstructiveRatio float64 `json:"constructive_ratio"`
}

func computeNetworkStats(users []domain.UserProfile) networkStats {
	var all []domain.Review
	weekly := 0
	for _, u := range users {
		all = append(all, u.Reviews...)
		weekly += u.WeeklyReviewCount()
	}
	return networkStats{
		ActiveProfiles:    len(users),
		TotalReviews:      len(all),
		WeeklyReviews:     weekly,
		ConstructiveRatio: service.TagRatio(all, domain.TagConstructive),
	}
}

// Network maneja GET /network: directorio buscable y paginado, destacados y trending compacto.
func (h *NetworkHandler) Network(c *gin.Context) {
	page, pageSize, err := parsePagination(c.Request.URL.Query(), h.pageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ds, err := h.store.Load(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, "load network", err)
		return
	}

	query := c.Query("q")
	matches := newProfileCards(service.SearchUsers(ds.Users, query))

	c.JSON(http.StatusOK, gin.H{
		"query":     query,
		"directory": service.NewPage(matches, page, pageSize),
		"featured":  newProfileCards(service.FeaturedProfiles(ds.Users)),
		"trending":  newProfileCards(service.TopTrending(ds.Users, service.CompactTrendingSize)),
		"stats":     computeNetworkStats(ds.Users),
	})
}

// Trending maneja GET /trending. Sin limit devuelve el listado completo.
func (h *NetworkHandler) Trending(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	ds, err := h.store.Load(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, "load trending", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trending": newProfileCards(service.TopTrending(ds.Users, limit))})
}

// Leaderboard maneja GET /leaderboard/:domain y devuelve el podio en orden [2, 1, 3].
func (h *NetworkHandler) Leaderboard(c *gin.Context) {
	d := parseDomain(c.Param("domain"))

	ds, err := h.store.Load(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, "load leaderboard", err)
		return
	}

	ranked := service.DomainLeaderboard(ds.Users, d)
	cards := make([]profileCard, len(ranked))
	for i, u := range ranked {
		cards[i] = newProfileCard(u)
		cards[i].Rank = i + 1
	}

	s := sessionFrom(c)
	label := string(d)
	if s.T != nil {
		if l, ok := s.T.DomainLabels()[d]; ok {
			label = l
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"domain": d,
		"label":  label,
		"podium": service.PodiumOrder(cards),
	})
}

// Posts maneja GET /posts.
func (h *NetworkHandler) Posts(c *gin.Context) {
	ds, err := h.store.Load(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, "load posts", err)
		return
	}
	posts := ds.Posts
	if posts == nil {
		posts = []domain.MicroPost{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// parseDomain acepta el nombre del dominio sin importar mayusculas; si no existe
// devuelve el valor crudo, que simplemente no matchea con nadie.
func parseDomain(raw string) domain.Domain {
	for _, d := range domain.AllDomains() {
		if strings.EqualFold(string(d), raw) {
			return d
		}
	}
	return domain.Domain(raw)
}
