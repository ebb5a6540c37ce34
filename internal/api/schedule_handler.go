package api

import (
	"errors"
	"fmt"
	"net/http"

	"gym-api/internal/domain"
	"gym-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ScheduleHandler exposes the AI workout-suggestion endpoint.
type ScheduleHandler struct {
	suggestionService service.SuggestionService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(suggestionService service.SuggestionService) *ScheduleHandler {
	return &ScheduleHandler{suggestionService: suggestionService}
}

// --- DTOs for API (Data Transfer Objects) ---

// WorkoutSuggestionRequest defines the expected JSON for a suggestion request.
// Field constraints mirror what the suggestion pipeline assumes downstream.
type WorkoutSuggestionRequest struct {
	Gender             string  `json:"gender" binding:"required,oneof=Male Female"`
	Age                int     `json:"age" binding:"required,gte=10,lte=100"`
	WeightKg           float64 `json:"weightKg" binding:"required,gte=30,lte=300"`
	HeightCm           float64 `json:"heightCm" binding:"required,gte=100,lte=250"`
	Goal               string  `json:"goal" binding:"required,oneof='Gain Muscle' 'Lose Fat' Maintain"`
	WorkoutDaysPerWeek int     `json:"workoutDaysPerWeek" binding:"required,gte=1,lte=7"`
	Equipment          string  `json:"equipment" binding:"required"`
	AdditionalNotes    string  `json:"additionalNotes"`
}

// ProblemDetails is the error payload returned for failed requests.
type ProblemDetails struct {
	Title            string   `json:"title"`
	Detail           string   `json:"detail,omitempty"`
	Status           int      `json:"status"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// --- Handler Methods ---

// SuggestWorkout godoc
// @Summary Get an AI-powered workout schedule suggestion
// @Description Builds a weekly workout plan for the given user profile via the Gemini API.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param profile body WorkoutSuggestionRequest true "User profile"
// @Success 200 {object} domain.WorkoutSuggestion "Weekly plan with optional tips"
// @Failure 400 {object} ProblemDetails "Validation failure or suggestion failure"
// @Failure 500 {object} ProblemDetails "Internal Server Error"
// @Router /schedule/suggest [post]
func (h *ScheduleHandler) SuggestWorkout(c *gin.Context) {
	var req WorkoutSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pd := ProblemDetails{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			pd.Detail = "One or more request fields are invalid"
			pd.ValidationErrors = describeValidationErrors(verrs)
		} else {
			pd.Detail = err.Error()
		}
		c.JSON(http.StatusBadRequest, pd)
		return
	}

	profile := domain.SuggestionProfile{
		Gender:             domain.Gender(req.Gender),
		Age:                req.Age,
		WeightKg:           req.WeightKg,
		HeightCm:           req.HeightCm,
		Goal:               domain.FitnessGoal(req.Goal),
		WorkoutDaysPerWeek: req.WorkoutDaysPerWeek,
		Equipment:          req.Equipment,
		AdditionalNotes:    req.AdditionalNotes,
	}

	outcome := h.suggestionService.SuggestWorkout(c.Request.Context(), profile)

	if !outcome.IsSuccess {
		c.JSON(http.StatusBadRequest, ProblemDetails{
			Title:  "Workout Suggestion Failed",
			Detail: outcome.ErrorMessage,
			Status: http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// describeValidationErrors turns validator failures into per-field messages.
func describeValidationErrors(verrs validator.ValidationErrors) []string {
	messages := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			messages[i] = fmt.Sprintf("%s is required", fe.Field())
		case "gte":
			messages[i] = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "lte":
			messages[i] = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		case "oneof":
			messages[i] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		default:
			messages[i] = fmt.Sprintf("%s failed the '%s' constraint", fe.Field(), fe.Tag())
		}
	}
	return messages
}
