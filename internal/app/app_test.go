package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"review-mine/internal/config"
	"review-mine/internal/seed"
	"review-mine/internal/service"
)

func TestBuild_MemoryAndDisabledLLM(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: config.StorageMemory,
		LLMProvider:    config.LLMProviderDisabled,
		DatasetKey:     "test:dataset",
		PageSize:       10,
	}

	a, err := Build(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	ds, err := a.Store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Users, 4)

	got, err := a.Insights.ProfileInsight(context.Background(), "me")
	require.NoError(t, err)
	assert.Equal(t, service.InsightFallbackMessage, got)
}

func TestNewSeedSource(t *testing.T) {
	_, ok := NewSeedSource(&config.Config{}).(seed.EmbeddedSource)
	assert.True(t, ok)

	_, ok = NewSeedSource(&config.Config{SeedURL: "http://example.invalid/seed.json"}).(*seed.HTTPSource)
	assert.True(t, ok)
}
