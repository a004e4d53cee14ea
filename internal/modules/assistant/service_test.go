package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
)

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func newTestService(t *testing.T, gen TextGenerator) *Service {
	t.Helper()
	store := dataset.NewStore(dataset.Tables{
		Earners: []dataset.Earner{
			{ID: "E1", Rating: 4.9, ExperienceMonths: 36, Status: dataset.StatusOnline, HomeCityID: 1},
		},
		DailyEarnings: []dataset.DailyEarnings{
			{EarnerID: "E1", TotalNetEarnings: 100, RidesDurationMins: 480},
		},
	}, nil)

	analyticsSvc := analytics.NewService(store)
	insightsSvc := insights.NewService(store, analyticsSvc)
	forecastSvc := forecast.NewService(store, analyticsSvc)
	builder := NewContextBuilder(analyticsSvc, insightsSvc)

	return NewService(gen, NewHistoryStore(nil), builder, insightsSvc, forecastSvc, nil)
}

func TestChat_FallbackWithoutGenerator(t *testing.T) {
	svc := newTestService(t, nil)

	got, err := svc.Chat(context.Background(), "", "when should I drive?")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Fallback {
		t.Fatal("expected fallback without a generator")
	}
	if got.Text != fallbackReply {
		t.Fatalf("text = %q, want the canned fallback", got.Text)
	}
	if got.ContextUsed {
		t.Fatal("no earner id given, personal context must not be flagged")
	}
}

func TestChat_PersonalContext(t *testing.T) {
	gen := &stubGenerator{reply: "Drive at 6pm."}
	svc := newTestService(t, gen)

	got, err := svc.Chat(context.Background(), "E1", "when should I drive?")
	if err != nil {
		t.Fatal(err)
	}
	if got.Fallback {
		t.Fatal("generator answered, response must not be marked fallback")
	}
	if !got.ContextUsed {
		t.Fatal("earner has data, personal context must be flagged")
	}
	if got.Text != "Drive at 6pm." {
		t.Fatalf("text = %q", got.Text)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "Current earner:") {
		t.Fatal("prompt is missing the personal block")
	}
	if !strings.Contains(prompt, "User Message: when should I drive?") {
		t.Fatal("prompt is missing the user message")
	}
}

func TestChat_UnknownEarnerStillAnswers(t *testing.T) {
	gen := &stubGenerator{reply: "Generic advice."}
	svc := newTestService(t, gen)

	got, err := svc.Chat(context.Background(), "NOBODY", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got.ContextUsed {
		t.Fatal("unknown earner must not produce personal context")
	}
	if got.Text != "Generic advice." {
		t.Fatalf("text = %q", got.Text)
	}
}

func TestChat_GeneratorErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := newTestService(t, gen)

	got, err := svc.Chat(context.Background(), "", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Fallback || got.Text != fallbackReply {
		t.Fatalf("response = %+v, want canned fallback", got)
	}
}

func TestPredictEarnings_EngineErrorsPropagate(t *testing.T) {
	svc := newTestService(t, &stubGenerator{reply: "ok"})

	if _, err := svc.PredictEarnings(context.Background(), "NOBODY", 8, forecast.PlatformBoth); !errors.Is(err, forecast.ErrNotFound) {
		t.Fatalf("err = %v, want forecast.ErrNotFound", err)
	}
	if _, err := svc.PredictEarnings(context.Background(), "E1", 8, "scooters"); !errors.Is(err, forecast.ErrBadPlatform) {
		t.Fatalf("err = %v, want forecast.ErrBadPlatform", err)
	}
}

func TestPredictEarnings_FallbackKeepsEngineNumbers(t *testing.T) {
	svc := newTestService(t, nil)

	got, err := svc.PredictEarnings(context.Background(), "E1", 8, forecast.PlatformBoth)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Fallback {
		t.Fatal("no generator, commentary must be marked fallback")
	}
	if got.Prediction == nil || got.Prediction.TotalPredictedEarnings == 0 {
		t.Fatalf("prediction = %+v, want real engine numbers despite fallback", got.Prediction)
	}
}

func TestContextBuilder(t *testing.T) {
	svc := newTestService(t, nil)

	platform := svc.builder.PlatformContext()
	if !strings.Contains(platform, "Total earners in system: 1") {
		t.Fatalf("platform context missing totals:\n%s", platform)
	}
	if !strings.Contains(platform, "city 1: 12.50") {
		t.Fatalf("platform context missing city rates:\n%s", platform)
	}

	insight, err := svc.insights.EarnerInsights("E1")
	if err != nil {
		t.Fatal(err)
	}
	personal := svc.builder.EarnerContext(insight)
	if !strings.Contains(personal, "- id: E1") {
		t.Fatalf("personal context missing earner id:\n%s", personal)
	}
	if svc.builder.EarnerContext(nil) != "" {
		t.Fatal("nil insight must produce an empty block")
	}
}
