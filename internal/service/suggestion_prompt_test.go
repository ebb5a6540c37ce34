package service

import (
	"strings"
	"testing"

	"gym-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testProfile() domain.SuggestionProfile {
	return domain.SuggestionProfile{
		Gender:             domain.GenderMale,
		Age:                28,
		WeightKg:           82.5,
		HeightCm:           180,
		Goal:               domain.GoalGainMuscle,
		WorkoutDaysPerWeek: 4,
		Equipment:          "Dumbbells, pull-up bar",
	}
}

func TestBuildWorkoutPrompt_ContainsProfileFields(t *testing.T) {
	prompt := buildWorkoutPrompt(testProfile())

	assert.Contains(t, prompt, "- Gender: Male")
	assert.Contains(t, prompt, "- Age: 28")
	assert.Contains(t, prompt, "- Weight: 82.5kg")
	assert.Contains(t, prompt, "- Height: 180cm")
	assert.Contains(t, prompt, "- Goal: Gain Muscle")
	assert.Contains(t, prompt, "- Workout Days: 4 days per week")
	assert.Contains(t, prompt, "- Equipment: Dumbbells, pull-up bar")
}

func TestBuildWorkoutPrompt_OmitsEmptyNotes(t *testing.T) {
	prompt := buildWorkoutPrompt(testProfile())
	assert.NotContains(t, prompt, "Additional Notes")

	profile := testProfile()
	profile.AdditionalNotes = "Recovering from a knee injury"
	prompt = buildWorkoutPrompt(profile)
	assert.Contains(t, prompt, "- Additional Notes: Recovering from a knee injury")
}

func TestBuildWorkoutPrompt_RequestsJSONFormat(t *testing.T) {
	prompt := buildWorkoutPrompt(testProfile())

	for _, day := range domain.Weekdays {
		assert.Contains(t, prompt, `"`+day+`"`)
	}
	assert.Contains(t, prompt, "Return ONLY valid JSON format")
	assert.Contains(t, prompt, `"Tips" section after the JSON`)
}

func TestBuildWorkoutPrompt_Deterministic(t *testing.T) {
	profile := testProfile()
	first := buildWorkoutPrompt(profile)
	second := buildWorkoutPrompt(profile)

	assert.Equal(t, first, second)
	assert.False(t, strings.Contains(first, "%!"), "prompt must not contain formatting artifacts")
}
