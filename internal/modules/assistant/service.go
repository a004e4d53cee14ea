// README: Assistant service; context assembly, rate limiting, fallback replies.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

// minRequestInterval spaces out model calls so one chatty client cannot
// burn the API quota.
const minRequestInterval = time.Second

// Response is the assistant's answer. Fallback is set when the model was
// unavailable and a canned reply was substituted; the engine's own numbers
// are never faked this way.
type Response struct {
	Text        string `json:"response"`
	ContextUsed bool   `json:"context_used"`
	Fallback    bool   `json:"fallback,omitempty"`
}

// PredictionResponse pairs the forecast engine's numbers with the model's
// free-text commentary.
type PredictionResponse struct {
	Prediction *forecast.Prediction `json:"prediction"`
	AIInsights string               `json:"ai_insights"`
	Fallback   bool                 `json:"fallback,omitempty"`
}

type Service struct {
	gen      TextGenerator
	history  *HistoryStore
	builder  *ContextBuilder
	insights *insights.Service
	forecast *forecast.Service
	logger   *zap.Logger

	mu       sync.Mutex
	lastCall time.Time
}

func NewService(gen TextGenerator, history *HistoryStore, builder *ContextBuilder,
	insightsSvc *insights.Service, forecastSvc *forecast.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gen:      gen,
		history:  history,
		builder:  builder,
		insights: insightsSvc,
		forecast: forecastSvc,
		logger:   logger,
	}
}

// Chat answers a free-form question, personalised when the earner has
// insight data. Engine errors for the optional earner context are
// swallowed here: the chat still works without a personal block.
func (s *Service) Chat(ctx context.Context, earnerID types.ID, message string) (Response, error) {
	var personal string
	if earnerID != "" {
		insight, err := s.insights.EarnerInsights(earnerID)
		if err == nil {
			personal = s.builder.EarnerContext(insight)
		} else if !errors.Is(err, insights.ErrNotFound) && !errors.Is(err, insights.ErrNoData) {
			return Response{}, err
		}
	}

	var sb strings.Builder
	sb.WriteString(s.builder.PlatformContext())
	sb.WriteString(personal)
	if turns, err := s.history.Recent(ctx, earnerID); err == nil && len(turns) > 0 {
		sb.WriteString("\nConversation so far:\n")
		for _, t := range turns {
			sb.WriteString(t + "\n")
		}
	}
	sb.WriteString("\nUser Message: " + message)

	text, ok := s.generate(ctx, sb.String())
	if ok {
		_ = s.history.Append(ctx, earnerID, "user", message)
		_ = s.history.Append(ctx, earnerID, "assistant", text)
	}
	return Response{Text: text, ContextUsed: personal != "", Fallback: !ok}, nil
}

// PredictEarnings runs the forecast engine and asks the model to comment
// on the numbers. Engine errors (NotFound, bad platform) propagate; only
// the commentary degrades to a fallback.
func (s *Service) PredictEarnings(ctx context.Context, earnerID types.ID, hours int, platform forecast.Platform) (PredictionResponse, error) {
	prediction, err := s.forecast.Predict(earnerID, hours, platform)
	if err != nil {
		return PredictionResponse{}, err
	}

	var sb strings.Builder
	sb.WriteString(s.builder.PlatformContext())
	if insight, err := s.insights.EarnerInsights(earnerID); err == nil {
		sb.WriteString(s.builder.EarnerContext(insight))
	}
	sb.WriteString(s.builder.ForecastContext(prediction))
	sb.WriteString("\nUser Message: Give concise, actionable advice on how to hit this forecast.")

	text, ok := s.generate(ctx, sb.String())
	return PredictionResponse{Prediction: prediction, AIInsights: text, Fallback: !ok}, nil
}

// generate calls the model behind the rate limit, substituting a canned
// reply when no generator is configured or the call fails.
func (s *Service) generate(ctx context.Context, prompt string) (string, bool) {
	if s.gen == nil {
		return fallbackReply, false
	}
	s.throttle()

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("text generation failed, using fallback", zap.Error(err))
		return fallbackReply, false
	}
	return text, true
}

func (s *Service) throttle() {
	s.mu.Lock()
	wait := minRequestInterval - time.Since(s.lastCall)
	s.lastCall = time.Now().Add(wait)
	s.mu.Unlock()
	if wait > 0 {
		time.Sleep(wait)
	}
}

const fallbackReply = "I'm here to help with earnings questions! The AI assistant is " +
	"temporarily unavailable, but your dashboard analytics are fully up to date."
