package service

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"gym-api/internal/domain"
)

// tipsPattern captures the free-text advice following a "Tips" marker, up
// to a blank line or the end of the response.
var tipsPattern = regexp.MustCompile(`(?is)tips?:?\s*(.+?)(?:\n\n|\z)`)

// parseWeeklyPlan extracts the weekly plan embedded in the raw AI response.
// The extraction is greedy: everything from the first '{' to the last '}'
// is treated as the JSON payload. Weekday keys are matched
// case-insensitively and canonicalized to English day names.
//
// Parsing never fails: if no JSON is found, the JSON is malformed, or the
// result is empty, the fixed default plan is returned instead and the
// second return value is true. Calling twice on the same input yields
// identical output.
func parseWeeklyPlan(raw string) (domain.WeeklyPlan, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start == -1 || end == -1 || end < start {
		log.Printf("WARN: Could not find JSON in AI response")
		return defaultWeeklyPlan(), true
	}

	var parsed map[string][]string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		log.Printf("WARN: Error parsing JSON response from Gemini: %v", err)
		return defaultWeeklyPlan(), true
	}
	if len(parsed) == 0 {
		return defaultWeeklyPlan(), true
	}

	plan := make(domain.WeeklyPlan, len(parsed))
	for key, exercises := range parsed {
		plan[canonicalDayName(key)] = exercises
	}
	return plan, false
}

// canonicalDayName maps a key to its canonical weekday spelling when it
// matches one case-insensitively; other keys pass through unchanged.
func canonicalDayName(key string) string {
	for _, day := range domain.Weekdays {
		if strings.EqualFold(key, day) {
			return day
		}
	}
	return key
}

// extractAdditionalTips scans the raw response for a "Tips" section and
// returns its text, or "" when none is present. Independent of the plan
// extraction; a failure in one never blocks the other.
func extractAdditionalTips(raw string) string {
	match := tipsPattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// defaultWeeklyPlan is the canned three-day bodyweight split substituted
// when the AI response cannot be parsed.
func defaultWeeklyPlan() domain.WeeklyPlan {
	return domain.WeeklyPlan{
		"Monday":    {"Push-ups 3x10", "Plank 3x30sec", "Squats 3x15"},
		"Tuesday":   {"Rest"},
		"Wednesday": {"Lunges 3x12", "Mountain Climbers 3x15", "Burpees 3x8"},
		"Thursday":  {"Rest"},
		"Friday":    {"Pull-ups 3x8", "Jumping Jacks 3x20", "Calf Raises 3x15"},
		"Saturday":  {"Rest"},
		"Sunday":    {"Rest"},
	}
}
