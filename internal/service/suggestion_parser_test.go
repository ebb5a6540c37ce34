package service

import (
	"testing"

	"gym-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPlanResponse = `Here is your personalized workout plan:
{
  "Monday": ["Bench Press 3x8", "Incline Press 3x10", "Tricep Dips 3x12"],
  "Tuesday": ["Rest"],
  "Wednesday": ["Deadlift 3x5", "Barbell Row 3x8", "Bicep Curls 3x12"],
  "Thursday": ["Rest"],
  "Friday": ["Squats 3x8", "Leg Press 3x10", "Calf Raises 3x15"],
  "Saturday": ["Rest"],
  "Sunday": ["Rest"]
}

Tips: Stay hydrated and stretch.`

func TestParseWeeklyPlan_FullResponse(t *testing.T) {
	plan, usedFallback := parseWeeklyPlan(fullPlanResponse)

	assert.False(t, usedFallback)
	require.Len(t, plan, 7)
	assert.Equal(t, []string{"Bench Press 3x8", "Incline Press 3x10", "Tricep Dips 3x12"}, plan["Monday"])
	assert.Equal(t, []string{"Rest"}, plan["Sunday"])
}

func TestParseWeeklyPlan_JSONSurroundedByProse(t *testing.T) {
	raw := "Sure! Here is the plan you asked for:\n\n" +
		`{"Monday": ["Push-ups 3x10"], "Tuesday": ["Rest"]}` +
		"\n\nLet me know if you want adjustments."

	plan, usedFallback := parseWeeklyPlan(raw)

	assert.False(t, usedFallback)
	assert.Equal(t, []string{"Push-ups 3x10"}, plan["Monday"])
	assert.Equal(t, []string{"Rest"}, plan["Tuesday"])
}

func TestParseWeeklyPlan_CaseInsensitiveDayKeys(t *testing.T) {
	raw := `{"monday": ["Squats 3x15"], "FRIDAY": ["Plank 3x30sec"]}`

	plan, usedFallback := parseWeeklyPlan(raw)

	assert.False(t, usedFallback)
	assert.Equal(t, []string{"Squats 3x15"}, plan["Monday"])
	assert.Equal(t, []string{"Plank 3x30sec"}, plan["Friday"])
	assert.NotContains(t, plan, "monday")
	assert.NotContains(t, plan, "FRIDAY")
}

func TestParseWeeklyPlan_UnknownKeyPassesThrough(t *testing.T) {
	raw := `{"Monday": ["Rest"], "Warmup": ["Jog 5min"]}`

	plan, usedFallback := parseWeeklyPlan(raw)

	assert.False(t, usedFallback)
	assert.Equal(t, []string{"Jog 5min"}, plan["Warmup"])
}

func TestParseWeeklyPlan_NoJSONFallsBack(t *testing.T) {
	plan, usedFallback := parseWeeklyPlan("I cannot help with that request.")

	assert.True(t, usedFallback)
	assert.Equal(t, defaultWeeklyPlan(), plan)
}

func TestParseWeeklyPlan_MalformedJSONFallsBack(t *testing.T) {
	plan, usedFallback := parseWeeklyPlan(`{"Monday": ["Push-ups" missing bracket}`)

	assert.True(t, usedFallback)
	assert.Equal(t, defaultWeeklyPlan(), plan)
}

func TestParseWeeklyPlan_EmptyObjectFallsBack(t *testing.T) {
	plan, usedFallback := parseWeeklyPlan("{}")

	assert.True(t, usedFallback)
	assert.Equal(t, defaultWeeklyPlan(), plan)
}

func TestParseWeeklyPlan_Idempotent(t *testing.T) {
	inputs := []string{
		fullPlanResponse,
		"no json here at all",
		`{"Monday": broken`,
	}

	for _, raw := range inputs {
		first, firstFallback := parseWeeklyPlan(raw)
		second, secondFallback := parseWeeklyPlan(raw)
		assert.Equal(t, first, second)
		assert.Equal(t, firstFallback, secondFallback)
	}
}

func TestDefaultWeeklyPlan_CoversAllSevenDays(t *testing.T) {
	plan := defaultWeeklyPlan()

	require.Len(t, plan, 7)
	for _, day := range domain.Weekdays {
		assert.Contains(t, plan, day)
		assert.NotEmpty(t, plan[day])
	}
	assert.Equal(t, []string{"Push-ups 3x10", "Plank 3x30sec", "Squats 3x15"}, plan["Monday"])
	assert.Equal(t, []string{"Rest"}, plan["Saturday"])
}

func TestExtractAdditionalTips(t *testing.T) {
	tips := extractAdditionalTips(fullPlanResponse)
	assert.Equal(t, "Stay hydrated and stretch.", tips)
}

func TestExtractAdditionalTips_Variants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "singular tip marker",
			raw:  "{}\n\nTip: Warm up before lifting.",
			want: "Warm up before lifting.",
		},
		{
			name: "lowercase marker without colon",
			raw:  "{}\n\ntips Drink plenty of water.",
			want: "Drink plenty of water.",
		},
		{
			name: "stops at blank line",
			raw:  "Tips: Sleep eight hours.\n\nUnrelated trailing text.",
			want: "Sleep eight hours.",
		},
		{
			name: "no tips section",
			raw:  `{"Monday": ["Rest"]}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractAdditionalTips(tt.raw))
		})
	}
}
