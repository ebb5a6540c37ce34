package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gym-api/internal/config"
	"gym-api/internal/domain"
	"gym-api/internal/gemini"
	"gym-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSuggestionService returns a canned outcome and records invocations.
type stubSuggestionService struct {
	outcome *domain.WorkoutSuggestion
	calls   int
	profile domain.SuggestionProfile
}

func (s *stubSuggestionService) SuggestWorkout(ctx context.Context, profile domain.SuggestionProfile) *domain.WorkoutSuggestion {
	s.calls++
	s.profile = profile
	return s.outcome
}

func setupScheduleRouter(svc *stubSuggestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewScheduleHandler(svc)
	router.POST("/api/v1/schedule/suggest", handler.SuggestWorkout)
	return router
}

func validSuggestionBody() map[string]any {
	return map[string]any{
		"gender":             "Male",
		"age":                28,
		"weightKg":           82.5,
		"heightCm":           180,
		"goal":               "Gain Muscle",
		"workoutDaysPerWeek": 4,
		"equipment":          "Dumbbells, pull-up bar",
	}
}

func postSuggest(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/suggest", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSuggestWorkoutEndpoint_Success(t *testing.T) {
	svc := &stubSuggestionService{outcome: &domain.WorkoutSuggestion{
		WeeklyPlan: domain.WeeklyPlan{
			"Monday":  {"Push-ups 3x10"},
			"Tuesday": {"Rest"},
		},
		AdditionalTips: "Stay hydrated and stretch.",
		IsSuccess:      true,
	}}
	router := setupScheduleRouter(svc)

	w := postSuggest(t, router, validSuggestionBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.WorkoutSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, []string{"Push-ups 3x10"}, resp.WeeklyPlan["Monday"])
	assert.Equal(t, "Stay hydrated and stretch.", resp.AdditionalTips)

	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, domain.GenderMale, svc.profile.Gender)
	assert.Equal(t, domain.GoalGainMuscle, svc.profile.Goal)
	assert.Equal(t, 4, svc.profile.WorkoutDaysPerWeek)
}

func TestSuggestWorkoutEndpoint_AgeOutOfRange(t *testing.T) {
	svc := &stubSuggestionService{}
	router := setupScheduleRouter(svc)

	body := validSuggestionBody()
	body["age"] = 5

	w := postSuggest(t, router, body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var pd ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pd))
	assert.Equal(t, "Validation Failed", pd.Title)
	assert.Equal(t, http.StatusBadRequest, pd.Status)
	require.NotEmpty(t, pd.ValidationErrors)
	assert.Contains(t, pd.ValidationErrors[0], "Age")

	assert.Equal(t, 0, svc.calls, "the pipeline must not run on invalid input")
}

func TestSuggestWorkoutEndpoint_FieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"unknown gender", "gender", "Other"},
		{"age above range", "age", 150},
		{"weight below range", "weightKg", 10},
		{"height above range", "heightCm", 400},
		{"unknown goal", "goal", "Get Shredded"},
		{"too many workout days", "workoutDaysPerWeek", 9},
		{"missing equipment", "equipment", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubSuggestionService{}
			router := setupScheduleRouter(svc)

			body := validSuggestionBody()
			body[tt.field] = tt.value

			w := postSuggest(t, router, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestSuggestWorkoutEndpoint_MalformedBody(t *testing.T) {
	svc := &stubSuggestionService{}
	router := setupScheduleRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/suggest", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestSuggestWorkoutEndpoint_SuggestionFailure(t *testing.T) {
	svc := &stubSuggestionService{outcome: &domain.WorkoutSuggestion{
		WeeklyPlan:   domain.WeeklyPlan{},
		IsSuccess:    false,
		ErrorMessage: "API request failed: 429",
	}}
	router := setupScheduleRouter(svc)

	w := postSuggest(t, router, validSuggestionBody())

	require.Equal(t, http.StatusBadRequest, w.Code)

	var pd ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pd))
	assert.Equal(t, "Workout Suggestion Failed", pd.Title)
	assert.Equal(t, "API request failed: 429", pd.Detail)
	assert.Equal(t, 1, svc.calls)
}

// TestSuggestWorkoutEndpoint_EndToEnd runs the real pipeline (client,
// orchestrator, parser) against a fake upstream server.
func TestSuggestWorkoutEndpoint_EndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": `{
					"Monday": ["Dumbbell Press 3x10", "Rows 3x10", "Curls 3x12"],
					"Tuesday": ["Rest"],
					"Wednesday": ["Squats 3x10", "Lunges 3x12", "Calf Raises 3x15"],
					"Thursday": ["Rest"],
					"Friday": ["Deadlift 3x8", "Pull-ups 3x8", "Plank 3x30sec"],
					"Saturday": ["Rest"],
					"Sunday": ["Rest"]
				}`}}}},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer upstream.Close()

	client, err := gemini.NewClient(config.GeminiConfig{
		APIURL: upstream.URL,
		APIKey: "test-key",
		Model:  "gemini-1.5-flash",
	})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewScheduleHandler(service.NewSuggestionService(client))
	router.POST("/api/v1/schedule/suggest", handler.SuggestWorkout)

	body := map[string]any{
		"gender":             "Male",
		"age":                25,
		"weightKg":           70,
		"heightCm":           175,
		"goal":               "Gain Muscle",
		"workoutDaysPerWeek": 3,
		"equipment":          "Dumbbells",
	}
	w := postSuggest(t, router, body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.WorkoutSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsSuccess)
	assert.False(t, resp.UsedFallback)
	require.Len(t, resp.WeeklyPlan, 7)
	for _, day := range []string{"Monday", "Wednesday", "Friday"} {
		assert.NotEqual(t, []string{"Rest"}, resp.WeeklyPlan[day])
		assert.Len(t, resp.WeeklyPlan[day], 3)
	}
}

func TestSuggestWorkoutEndpoint_FallbackPlanStillSucceeds(t *testing.T) {
	svc := &stubSuggestionService{outcome: &domain.WorkoutSuggestion{
		WeeklyPlan:   domain.WeeklyPlan{"Monday": {"Push-ups 3x10"}},
		IsSuccess:    true,
		UsedFallback: true,
	}}
	router := setupScheduleRouter(svc)

	w := postSuggest(t, router, validSuggestionBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.WorkoutSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.UsedFallback)
}
