package domain

// Gender of the person requesting a workout suggestion.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// FitnessGoal is the training objective driving the suggestion.
type FitnessGoal string

const (
	GoalGainMuscle FitnessGoal = "Gain Muscle"
	GoalLoseFat    FitnessGoal = "Lose Fat"
	GoalMaintain   FitnessGoal = "Maintain"
)

// Weekdays lists the seven plan keys in week order. The prompt, the parser
// and the fallback plan all use exactly these names.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeeklyPlan maps a weekday name to an ordered list of exercise
// descriptions (e.g. "Push-ups 3x10") or ["Rest"] for rest days.
type WeeklyPlan map[string][]string

// SuggestionProfile is the validated user profile a workout suggestion is
// generated from. It is immutable input; a fresh value is built per request.
type SuggestionProfile struct {
	Gender             Gender
	Age                int
	WeightKg           float64
	HeightCm           float64
	Goal               FitnessGoal
	WorkoutDaysPerWeek int
	Equipment          string
	AdditionalNotes    string
}

// WorkoutSuggestion is the terminal outcome of a suggestion request.
// It is never mutated after construction: either IsSuccess is true and
// WeeklyPlan is populated, or IsSuccess is false and ErrorMessage explains
// why. UsedFallback marks plans substituted by the parser's canned default
// so callers can tell them apart from genuine AI output.
type WorkoutSuggestion struct {
	WeeklyPlan     WeeklyPlan `json:"weeklyPlan"`
	AdditionalTips string     `json:"additionalTips,omitempty"`
	IsSuccess      bool       `json:"isSuccess"`
	ErrorMessage   string     `json:"errorMessage,omitempty"`
	UsedFallback   bool       `json:"usedFallback"`
}
