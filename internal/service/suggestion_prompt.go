package service

import (
	"fmt"
	"strings"

	"gym-api/internal/domain"
)

// buildWorkoutPrompt turns a validated profile into a single instruction
// string for the Gemini API. Pure function of its input.
func buildWorkoutPrompt(profile domain.SuggestionProfile) string {
	var b strings.Builder

	b.WriteString("Based on the following user profile:\n")
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Weight: %gkg\n", profile.WeightKg)
	fmt.Fprintf(&b, "- Height: %gcm\n", profile.HeightCm)
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- Workout Days: %d days per week\n", profile.WorkoutDaysPerWeek)
	fmt.Fprintf(&b, "- Equipment: %s\n", profile.Equipment)
	if profile.AdditionalNotes != "" {
		fmt.Fprintf(&b, "- Additional Notes: %s\n", profile.AdditionalNotes)
	}

	b.WriteString(`
Please suggest a detailed 7-day workout plan in the following JSON format:
{
  "Monday": ["Exercise 1", "Exercise 2", "Exercise 3"],
  "Tuesday": ["Exercise 1", "Exercise 2", "Exercise 3"],
  "Wednesday": ["Rest"],
  "Thursday": ["Exercise 1", "Exercise 2", "Exercise 3"],
  "Friday": ["Exercise 1", "Exercise 2", "Exercise 3"],
  "Saturday": ["Rest"],
  "Sunday": ["Rest"]
}

Requirements:
- Return ONLY valid JSON format
- Use rest days based on the workout frequency specified
- Each exercise should include sets/reps information (e.g., "Push-ups 3x10", "Plank 3x30sec")
- Consider the available equipment
- Match exercises to the user's goal
- Provide 3-5 exercises per workout day
- Distribute workout days evenly throughout the week

Also include a brief "Tips" section after the JSON with general advice for this user.`)

	return b.String()
}
