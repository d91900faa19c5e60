package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopsmart-ai/internal/dto"
	"shopsmart-ai/internal/llm"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	answerConfidence = 0.9
	maxSearchNames   = 6
	maxRecommended   = 5
	maxNameLength    = 100
)

// AssistantService implements the three shopper-facing operations. It holds
// no per-request state; the completion client configuration is immutable, so
// one instance serves all requests concurrently.
type AssistantService struct {
	completer llm.Completer
	logger    *zap.Logger
}

func NewAssistantService(completer llm.Completer, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		completer: completer,
		logger:    logger,
	}
}

// AnswerProductQuestion answers a product question with a plain-text
// explanation, then makes a second, best-effort completion for follow-up
// questions. Only a failure of the primary call is surfaced; the follow-up
// step degrades to an empty list on any error.
func (s *AssistantService) AnswerProductQuestion(ctx context.Context, req *dto.ProductQARequest) (*dto.ProductQAResponse, error) {
	requestID := uuid.New().String()
	start := time.Now()

	raw, err := s.completer.Complete(ctx, buildProductQAMessages(req), llm.FormatText)
	if err != nil {
		return nil, fmt.Errorf("product question answer failed: %w", err)
	}
	answer := strings.TrimSpace(raw)

	followUps := []string{}
	fuRaw, err := s.completer.Complete(ctx, buildFollowUpMessages(req, answer), llm.FormatJSONArray)
	if err != nil {
		s.logger.Warn("Follow-up question generation failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	} else {
		followUps = decodeStringList(fuRaw)
	}

	s.logger.Info("Product question answered",
		zap.String("request_id", requestID),
		zap.String("product", req.ProductName),
		zap.Int("answer_length", len(answer)),
		zap.Int("follow_ups", len(followUps)),
		zap.Duration("duration", time.Since(start)),
	)

	return &dto.ProductQAResponse{
		Answer:            answer,
		Confidence:        answerConfidence,
		FollowUpQuestions: followUps,
	}, nil
}

// ExtractSearchTerms extracts up to 6 candidate product names from a
// free-text shopping query. The `products` key is accepted as a fallback for
// `productNames`; this tolerance is specific to search.
func (s *AssistantService) ExtractSearchTerms(ctx context.Context, query string) ([]string, error) {
	requestID := uuid.New().String()
	start := time.Now()

	raw, err := s.completer.Complete(ctx, buildSearchMessages(query), llm.FormatJSONObject)
	if err != nil {
		return nil, fmt.Errorf("search term extraction failed: %w", err)
	}

	names := decodeNameList(raw, maxSearchNames, maxNameLength, "productNames", "products")

	s.logger.Info("Search terms extracted",
		zap.String("request_id", requestID),
		zap.Int("count", len(names)),
		zap.Duration("duration", time.Since(start)),
	)

	return names, nil
}

// RecommendForCart suggests up to 5 complementary product names for the
// given cart contents.
func (s *AssistantService) RecommendForCart(ctx context.Context, cart []dto.CartItem) ([]string, error) {
	requestID := uuid.New().String()
	start := time.Now()

	raw, err := s.completer.Complete(ctx, buildRecommendMessages(cart), llm.FormatJSONObject)
	if err != nil {
		return nil, fmt.Errorf("cart recommendation failed: %w", err)
	}

	names := decodeNameList(raw, maxRecommended, maxNameLength, "productNames")

	s.logger.Info("Cart recommendations generated",
		zap.String("request_id", requestID),
		zap.Int("cart_items", len(cart)),
		zap.Int("count", len(names)),
		zap.Duration("duration", time.Since(start)),
	)

	return names, nil
}
