package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gym-api/internal/domain"
	"gym-api/internal/gemini"
)

// genericSuggestionError is the message returned for failures the caller
// cannot act on (transport errors, timeouts, panics).
const genericSuggestionError = "An error occurred while processing your request"

// SuggestionService generates AI-backed workout suggestions.
type SuggestionService interface {
	// SuggestWorkout runs the full pipeline: build the prompt, call the
	// Gemini API, parse the response. It always returns an outcome value,
	// never an error: any stage failure is folded into the outcome with
	// IsSuccess=false and a human-readable message.
	SuggestWorkout(ctx context.Context, profile domain.SuggestionProfile) *domain.WorkoutSuggestion
}

// suggestionService implements the SuggestionService interface.
// Stateless per call; safe for concurrent use.
type suggestionService struct {
	client gemini.Client
}

// NewSuggestionService creates a new instance of suggestionService.
func NewSuggestionService(client gemini.Client) SuggestionService {
	return &suggestionService{client: client}
}

func (s *suggestionService) SuggestWorkout(ctx context.Context, profile domain.SuggestionProfile) (outcome *domain.WorkoutSuggestion) {
	// Nothing may escape this boundary as a panic; the caller always gets
	// an outcome value.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: Panic while getting workout suggestion: %v", r)
			outcome = suggestionFailure(genericSuggestionError)
		}
	}()

	prompt := buildWorkoutPrompt(profile)

	raw, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("ERROR: Workout suggestion request failed: %v", err)
		return suggestionFailure(messageForClientError(err))
	}

	// The parser is total: it substitutes the default plan rather than
	// failing, so a successful upstream call always yields a plan.
	plan, usedFallback := parseWeeklyPlan(raw)

	return &domain.WorkoutSuggestion{
		WeeklyPlan:     plan,
		AdditionalTips: extractAdditionalTips(raw),
		IsSuccess:      true,
		UsedFallback:   usedFallback,
	}
}

// suggestionFailure builds a failure outcome with an empty plan.
func suggestionFailure(message string) *domain.WorkoutSuggestion {
	return &domain.WorkoutSuggestion{
		WeeklyPlan:   domain.WeeklyPlan{},
		IsSuccess:    false,
		ErrorMessage: message,
	}
}

// messageForClientError maps client failures to the user-facing message.
func messageForClientError(err error) string {
	var statusErr *gemini.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("API request failed: %d", statusErr.Code)
	case errors.Is(err, gemini.ErrNoCandidates):
		return "No response received from Gemini API"
	default:
		return genericSuggestionError
	}
}
