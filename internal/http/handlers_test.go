package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"review-mine/internal/domain"
	"review-mine/internal/i18n"
	"review-mine/internal/llm"
	"review-mine/internal/repository"
	"review-mine/internal/seed"
	"review-mine/internal/service"
)

const testSelfID = "me"

type failingSource struct{}

func (failingSource) Fetch(_ context.Context) (domain.Dataset, error) {
	return domain.Dataset{}, errors.New("seed offline")
}

type testEnv struct {
	router *gin.Engine
	store  *service.DatasetStore
	llm    *llm.MockClient
}

func setupRouter(t *testing.T, source seed.Source) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	catalog, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	store := service.NewDatasetStore(logger, repository.NewMemoryDocumentStore(), source, "test:dataset")
	llmClient := &llm.MockClient{Response: "1. Detail\n2. Leadership\n3. Clarity\nImprove: small talk"}

	router := NewRouter(
		logger,
		catalog,
		testSelfID,
		NewNetworkHandler(logger, store, 2),
		NewProfileHandler(logger, store, service.NewFeedbackService(store, logger), service.NewInsightService(llmClient, store, logger)),
		NewMetaHandler(logger),
	)
	return testEnv{router: router, store: store, llm: llmClient}
}

func performRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func cardIDs(cards []profileCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestHealth(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/healthz", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json; charset=utf-8" && got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestNetwork_DirectoryFeaturedTrendingAndStats(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/network", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[struct {
		Directory service.Page[profileCard] `json:"directory"`
		Featured  []profileCard             `json:"featured"`
		Trending  []profileCard             `json:"trending"`
		Stats     networkStats              `json:"stats"`
	}](t, w)

	assert.Equal(t, []string{"me", "u2"}, cardIDs(resp.Directory.Items))
	assert.Equal(t, 2, resp.Directory.TotalPages)
	assert.Equal(t, 4, resp.Directory.TotalItems)
	assert.Equal(t, []string{"me", "u2", "u4"}, cardIDs(resp.Featured))
	assert.Equal(t, []string{"u3", "me", "u2", "u4"}, cardIDs(resp.Trending))
	assert.Equal(t, 4, resp.Stats.ActiveProfiles)
	assert.Equal(t, 4, resp.Stats.TotalReviews)
	assert.Equal(t, 40, resp.Stats.WeeklyReviews)
	assert.InDelta(t, 0.25, resp.Stats.ConstructiveRatio, 1e-9)
}

func TestNetwork_SearchAndPages(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/network?q=CHEN", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Directory service.Page[profileCard] `json:"directory"`
	}](t, w)
	assert.Equal(t, []string{"u2"}, cardIDs(resp.Directory.Items))
	assert.Equal(t, 1, resp.Directory.TotalPages)

	w = performRequest(env.router, http.MethodGet, "/network?q=nobody", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[struct {
		Directory service.Page[profileCard] `json:"directory"`
	}](t, w)
	assert.Empty(t, resp.Directory.Items)
	assert.Equal(t, 1, resp.Directory.TotalPages)

	w = performRequest(env.router, http.MethodGet, "/network?page=2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[struct {
		Directory service.Page[profileCard] `json:"directory"`
	}](t, w)
	assert.Equal(t, []string{"u3", "u4"}, cardIDs(resp.Directory.Items))
}

func TestNetwork_InvalidPagination(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	for _, path := range []string{"/network?page=0", "/network?page=abc", "/network?page_size=500"} {
		w := performRequest(env.router, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", path, w.Code)
		}
	}
}

func TestNetwork_SeedUnavailable(t *testing.T) {
	env := setupRouter(t, failingSource{})

	w := performRequest(env.router, http.MethodGet, "/network", nil, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}

func TestTrending_Limit(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/trending?limit=2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Trending []profileCard `json:"trending"`
	}](t, w)
	assert.Equal(t, []string{"u3", "me"}, cardIDs(resp.Trending))

	w = performRequest(env.router, http.MethodGet, "/trending?limit=-1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboard_PodiumOrder(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/leaderboard/communication", nil, map[string]string{"Accept-Language": "vi-VN,vi;q=0.9"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vi", w.Header().Get("Content-Language"))

	resp := decode[struct {
		Domain domain.Domain `json:"domain"`
		Label  string        `json:"label"`
		Podium []profileCard `json:"podium"`
	}](t, w)
	assert.Equal(t, domain.DomainCommunication, resp.Domain)
	assert.NotEqual(t, "Communication", resp.Label)
	require.Len(t, resp.Podium, 3)
	assert.Equal(t, []string{"u2", "me", "u4"}, cardIDs(resp.Podium))
	assert.Equal(t, []int{2, 1, 3}, []int{resp.Podium[0].Rank, resp.Podium[1].Rank, resp.Podium[2].Rank})
}

func TestLeaderboard_UnknownDomainIsEmpty(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/leaderboard/Cooking", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Podium []profileCard `json:"podium"`
	}](t, w)
	assert.Empty(t, resp.Podium)
}

func TestPosts(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/posts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Posts []domain.MicroPost `json:"posts"`
	}](t, w)
	assert.Len(t, resp.Posts, 2)
}

func TestGetProfile_Self(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/profiles/me", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[struct {
		Profile   domain.UserProfile   `json:"profile"`
		Level     int                  `json:"level"`
		IsSelf    bool                 `json:"is_self"`
		Radar     []service.RadarPoint `json:"radar"`
		Breakdown []service.DomainStat `json:"breakdown"`
	}](t, w)
	assert.Equal(t, "me", resp.Profile.ID)
	assert.Equal(t, 9, resp.Level)
	assert.True(t, resp.IsSelf)
	require.Len(t, resp.Radar, len(domain.AllDomains()))
	assert.Equal(t, domain.DomainProfessional, resp.Radar[0].Domain)
	assert.InDelta(t, 5.0, resp.Radar[0].Value, 1e-9)
	assert.Equal(t, 5, resp.Radar[0].FullMark)
}

func TestGetProfile_NotFound(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/profiles/ghost", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateProfile(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	current, err := env.store.Profile(context.Background(), "u2")
	require.NoError(t, err)
	current.Name = "Sarah C."
	current.TrustScore = 95
	current.ID = "ignored"

	w := performRequest(env.router, http.MethodPut, "/profiles/u2", current, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Updated bool               `json:"updated"`
		Profile domain.UserProfile `json:"profile"`
	}](t, w)
	assert.True(t, resp.Updated)
	assert.Equal(t, "u2", resp.Profile.ID)
	assert.Equal(t, "Sarah C.", resp.Profile.Name)

	stored, err := env.store.Profile(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah C.", stored.Name)
}

func TestUpdateProfile_UnknownIDIsNoop(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodPut, "/profiles/ghost", domain.UserProfile{Name: "Ghost", TrustScore: 10}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Updated bool `json:"updated"`
	}](t, w)
	assert.False(t, resp.Updated)
}

func TestUpdateProfile_Validation(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodPut, "/profiles/u2", domain.UserProfile{TrustScore: 150}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	bad := domain.UserProfile{TrustScore: 50, Reviews: []domain.Review{{ID: "r", Domain: domain.DomainSocial, Rating: 9}}}
	w = performRequest(env.router, http.MethodPut, "/profiles/u2", bad, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitFeedback(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	body := map[string]any{"domain": "leadership", "rating": 2, "comment": "Needs to delegate more"}
	w := performRequest(env.router, http.MethodPost, "/profiles/u3/feedback", body, nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	resp := decode[struct {
		Review    domain.Review `json:"review"`
		Persisted bool          `json:"persisted"`
	}](t, w)
	assert.False(t, resp.Persisted)
	assert.Equal(t, domain.DomainLeadership, resp.Review.Domain)
	assert.Equal(t, domain.TagConstructive, resp.Review.Tag)
	assert.NotEmpty(t, resp.Review.ID)

	// No persiste: el perfil sigue sin reviews.
	u3, err := env.store.Profile(context.Background(), "u3")
	require.NoError(t, err)
	assert.Empty(t, u3.Reviews)
}

func TestSubmitFeedback_Rejections(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	cases := []struct {
		name string
		path string
		body map[string]any
		want int
	}{
		{"self", "/profiles/me/feedback", map[string]any{"domain": "Social", "rating": 4, "comment": "ok"}, http.StatusBadRequest},
		{"rating out of range", "/profiles/u2/feedback", map[string]any{"domain": "Social", "rating": 7, "comment": "ok"}, http.StatusBadRequest},
		{"unknown domain", "/profiles/u2/feedback", map[string]any{"domain": "Cooking", "rating": 4, "comment": "ok"}, http.StatusBadRequest},
		{"missing comment", "/profiles/u2/feedback", map[string]any{"domain": "Social", "rating": 4}, http.StatusBadRequest},
		{"unknown recipient", "/profiles/ghost/feedback", map[string]any{"domain": "Social", "rating": 4, "comment": "ok"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(env.router, http.MethodPost, tc.path, tc.body, nil)
			if w.Code != tc.want {
				t.Fatalf("expected status %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestInsight(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodPost, "/profiles/me/insight", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		ProfileID string `json:"profile_id"`
		Insight   string `json:"insight"`
	}](t, w)
	assert.Equal(t, "me", resp.ProfileID)
	assert.Equal(t, env.llm.Response, resp.Insight)
	assert.Equal(t, 1, env.llm.CallCount())
}

func TestInsight_NoReviewsSkipsLLM(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodPost, "/profiles/u2/insight", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Insight string `json:"insight"`
	}](t, w)
	assert.Equal(t, service.InsufficientDataMessage, resp.Insight)
	assert.Equal(t, 0, env.llm.CallCount())
}

func TestTranslationsAndPricing(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodGet, "/i18n?lang=vi", nil, map[string]string{"Accept-Language": "en"})
	require.Equal(t, http.StatusOK, w.Code)
	tr := decode[struct {
		Language i18n.Language `json:"language"`
	}](t, w)
	assert.Equal(t, i18n.Vietnamese, tr.Language)

	w = performRequest(env.router, http.MethodGet, "/pricing", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	pr := decode[struct {
		Tiers []pricingTier `json:"tiers"`
	}](t, w)
	require.Len(t, pr.Tiers, 2)
	assert.Equal(t, 0, pr.Tiers[0].Price)
	assert.Equal(t, proMonthlyPriceVND, pr.Tiers[1].Price)
	assert.True(t, pr.Tiers[1].Recommended)
	assert.NotEmpty(t, pr.Tiers[1].Features)
}

func TestAuthStubs(t *testing.T) {
	env := setupRouter(t, seed.NewEmbeddedSource())

	w := performRequest(env.router, http.MethodPost, "/auth/login", map[string]string{"user_id": "anyone"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profile_id":"me"`)

	w = performRequest(env.router, http.MethodPost, "/auth/register", map[string]string{"name": "N", "username": "n", "email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.router, http.MethodPost, "/auth/register", map[string]string{"name": "N", "username": "n", "email": "n@example.com"}, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
