package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gym-api/internal/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGeminiClient returns a canned response or error and records calls.
type stubGeminiClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubGeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestSuggestWorkout_Success(t *testing.T) {
	client := &stubGeminiClient{response: fullPlanResponse}
	svc := NewSuggestionService(client)

	outcome := svc.SuggestWorkout(context.Background(), testProfile())

	require.NotNil(t, outcome)
	assert.True(t, outcome.IsSuccess)
	assert.False(t, outcome.UsedFallback)
	assert.Empty(t, outcome.ErrorMessage)
	assert.Equal(t, []string{"Bench Press 3x8", "Incline Press 3x10", "Tricep Dips 3x12"}, outcome.WeeklyPlan["Monday"])
	assert.Equal(t, "Stay hydrated and stretch.", outcome.AdditionalTips)
	assert.Equal(t, 1, client.calls)
}

func TestSuggestWorkout_PromptReflectsProfile(t *testing.T) {
	client := &stubGeminiClient{response: fullPlanResponse}
	svc := NewSuggestionService(client)

	svc.SuggestWorkout(context.Background(), testProfile())

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "- Goal: Gain Muscle")
	assert.Contains(t, client.prompts[0], "- Equipment: Dumbbells, pull-up bar")
}

func TestSuggestWorkout_UpstreamStatusError(t *testing.T) {
	client := &stubGeminiClient{err: &gemini.StatusError{Code: http.StatusTooManyRequests}}
	svc := NewSuggestionService(client)

	outcome := svc.SuggestWorkout(context.Background(), testProfile())

	require.NotNil(t, outcome)
	assert.False(t, outcome.IsSuccess)
	assert.Equal(t, "API request failed: 429", outcome.ErrorMessage)
	assert.Empty(t, outcome.WeeklyPlan)
	assert.Empty(t, outcome.AdditionalTips)
}

func TestSuggestWorkout_NoCandidates(t *testing.T) {
	client := &stubGeminiClient{err: gemini.ErrNoCandidates}
	svc := NewSuggestionService(client)

	outcome := svc.SuggestWorkout(context.Background(), testProfile())

	assert.False(t, outcome.IsSuccess)
	assert.Equal(t, "No response received from Gemini API", outcome.ErrorMessage)
	assert.Empty(t, outcome.WeeklyPlan)
}

func TestSuggestWorkout_TransportError(t *testing.T) {
	client := &stubGeminiClient{err: errors.New("dial tcp: connection refused")}
	svc := NewSuggestionService(client)

	outcome := svc.SuggestWorkout(context.Background(), testProfile())

	assert.False(t, outcome.IsSuccess)
	assert.Equal(t, "An error occurred while processing your request", outcome.ErrorMessage)
	assert.NotContains(t, outcome.ErrorMessage, "dial tcp", "internal details must not leak")
}

func TestSuggestWorkout_UnparseableResponseUsesFallback(t *testing.T) {
	client := &stubGeminiClient{response: "Sorry, I can only answer cooking questions."}
	svc := NewSuggestionService(client)

	outcome := svc.SuggestWorkout(context.Background(), testProfile())

	// A parse failure is still a success from the caller's perspective;
	// only the plan content is substituted.
	assert.True(t, outcome.IsSuccess)
	assert.True(t, outcome.UsedFallback)
	assert.Equal(t, defaultWeeklyPlan(), outcome.WeeklyPlan)
}

// panickingClient simulates an unexpected fault inside the pipeline.
type panickingClient struct{}

func (panickingClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	panic("boom")
}

func TestSuggestWorkout_RecoversFromPanic(t *testing.T) {
	svc := NewSuggestionService(panickingClient{})

	outcome := svc.SuggestWorkout(context.Background(), testProfile())

	require.NotNil(t, outcome)
	assert.False(t, outcome.IsSuccess)
	assert.Equal(t, "An error occurred while processing your request", outcome.ErrorMessage)
	assert.Empty(t, outcome.WeeklyPlan)
}
