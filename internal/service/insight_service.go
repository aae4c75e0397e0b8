package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"review-mine/internal/domain"
	"review-mine/internal/llm"
)

const (
	InsufficientDataMessage = "Not enough data for insights yet."
	InsightFallbackMessage  = "The mirror is currently foggy. Try again later."
	InsightEmptyMessage     = "Insight generation failed."

	insightSystemInstruction = "You are a specialized personal growth coach. Your tone is professional, encouraging, and highly analytical."
	insightPromptTemplate    = `Analyze the following anonymous community reviews for a user and provide a constructive summary for personal growth.
Focus on 3 top strengths and 1 area for improvement. Keep it concise and supportive.
Reviews: %s`

	insightTimeout = 60 * time.Second
)

// InsightService arma el prompt con el historial de reviews y lo envia al LLM.
// Nunca devuelve error por fallas del generador: siempre hay un string para mostrar.
type InsightService struct {
	llmClient llm.LLMClient
	profiles  ProfileReader
	logger    *zap.Logger
	inflight  singleflight.Group
}

func NewInsightService(llmClient llm.LLMClient, profiles ProfileReader, logger *zap.Logger) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		llmClient: llmClient,
		profiles:  profiles,
		logger:    logger,
	}
}

type insightReview struct {
	Domain  domain.Domain      `json:"domain"`
	Rating  int                `json:"rating"`
	Comment string             `json:"comment"`
	Tag     domain.FeedbackTag `json:"tag"`
}

// buildInsightPrompt serializa domain, rating, comment y tag en el orden recibido.
func buildInsightPrompt(reviews []domain.Review) (string, error) {
	items := make([]insightReview, len(reviews))
	for i, r := range reviews {
		items[i] = insightReview{Domain: r.Domain, Rating: r.Rating, Comment: r.Comment, Tag: r.Tag}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", err
	}
	return fmt.Sprintf(insightPromptTemplate, strings.TrimSpace(buf.String())), nil
}

// RequestInsight genera el resumen de crecimiento. Lista vacia responde sin llamar al LLM.
func (s *InsightService) RequestInsight(ctx context.Context, reviews []domain.Review) string {
	if len(reviews) == 0 {
		return InsufficientDataMessage
	}

	prompt, err := buildInsightPrompt(reviews)
	if err != nil {
		s.logger.Error("build insight prompt failed", zap.Error(err))
		return InsightFallbackMessage
	}

	text, err := s.llmClient.Generate(ctx, prompt, insightSystemInstruction)
	if errors.Is(err, llm.ErrEmptyResponse) {
		s.logger.Warn("insight generation returned empty text")
		return InsightEmptyMessage
	}
	if err != nil {
		s.logger.Error("insight generation failed", zap.Int("reviews", len(reviews)), zap.Error(err))
		return InsightFallbackMessage
	}
	return text
}

// ProfileInsight resuelve el perfil y genera su insight. Pedidos concurrentes para el mismo
// perfil comparten una sola llamada al LLM; la llamada no se cancela si un caller se va.
// Solo devuelve error si el perfil no se puede leer.
func (s *InsightService) ProfileInsight(ctx context.Context, profileID string) (string, error) {
	profile, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		return "", err
	}
	if len(profile.Reviews) == 0 {
		return InsufficientDataMessage, nil
	}

	v, _, shared := s.inflight.Do(profileID, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), insightTimeout)
		defer cancel()
		return s.RequestInsight(callCtx, profile.Reviews), nil
	})
	if shared {
		s.logger.Debug("insight request coalesced", zap.String("profile_id", profileID))
	}
	return v.(string), nil
}

// Generation es un contador monotono para descartar resultados viejos despues de navegar.
type Generation struct {
	n atomic.Uint64
}

// Next invalida todo lo anterior y devuelve la nueva generacion vigente.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

func (g *Generation) Current() uint64 {
	return g.n.Load()
}

func (g *Generation) IsCurrent(v uint64) bool {
	return g.n.Load() == v
}

// InsightResult es lo que entrega una tarea asincrona de insight.
type InsightResult struct {
	ProfileID  string
	Generation uint64
	Text       string
}

// Start corre RequestInsight en background. El canal recibe exactamente un resultado;
// quien consume decide si sigue siendo relevante comparando la generacion.
func (s *InsightService) Start(ctx context.Context, profileID string, reviews []domain.Review, gen uint64) <-chan InsightResult {
	out := make(chan InsightResult, 1)
	reviews = append([]domain.Review(nil), reviews...)
	go func() {
		defer close(out)
		out <- InsightResult{
			ProfileID:  profileID,
			Generation: gen,
			Text:       s.RequestInsight(ctx, reviews),
		}
	}()
	return out
}
