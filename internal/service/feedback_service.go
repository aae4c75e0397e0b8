package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"review-mine/internal/domain"
)

var (
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrUnknownDomain   = errors.New("unknown domain")
)

// FeedbackInput es lo que envia el formulario de feedback.
type FeedbackInput struct {
	Domain    domain.Domain
	Rating    int
	Comment   string
	Tag       domain.FeedbackTag
	Anonymous bool
}

// FeedbackService valida envios de feedback. En esta version el envio no se persiste:
// devuelve la review que se habria guardado.
type FeedbackService struct {
	profiles ProfileReader
	logger   *zap.Logger
	now      func() time.Time
}

func NewFeedbackService(profiles ProfileReader, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit valida el feedback contra los dominios activos del destinatario.
func (s *FeedbackService) Submit(ctx context.Context, recipientID string, in FeedbackInput) (domain.Review, error) {
	recipient, err := s.profiles.Profile(ctx, recipientID)
	if err != nil {
		return domain.Review{}, err
	}

	if !in.Domain.Valid() {
		return domain.Review{}, fmt.Errorf("%w: %q", ErrUnknownDomain, in.Domain)
	}
	if !recipient.HasDomain(in.Domain) {
		return domain.Review{}, fmt.Errorf("%w: domain %s not active for profile", ErrInvalidFeedback, in.Domain)
	}
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return domain.Review{}, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidFeedback, domain.MinRating, domain.MaxRating)
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return domain.Review{}, fmt.Errorf("%w: comment is required", ErrInvalidFeedback)
	}

	tag := in.Tag
	if tag == "" {
		tag = tagForRating(in.Rating)
	}
	if !tag.Valid() {
		return domain.Review{}, fmt.Errorf("%w: unknown tag %q", ErrInvalidFeedback, tag)
	}

	review := domain.Review{
		ID:        uuid.NewString(),
		Domain:    in.Domain,
		Rating:    in.Rating,
		Comment:   comment,
		Tag:       tag,
		CreatedAt: s.now().UTC().Format("2006-01-02"),
	}

	s.logger.Info("feedback accepted",
		zap.String("recipient_id", recipientID),
		zap.String("domain", string(review.Domain)),
		zap.Int("rating", review.Rating),
		zap.Bool("anonymous", in.Anonymous),
	)
	return review, nil
}

func tagForRating(rating int) domain.FeedbackTag {
	switch {
	case rating >= 4:
		return domain.TagPositive
	case rating == 3:
		return domain.TagNeutral
	default:
		return domain.TagConstructive
	}
}
