package model

import "time"

// AnalysisOutcome reports which profile fields an analysis run wrote.
type AnalysisOutcome struct {
	PersonalityUpdated        bool `json:"personalityUpdated"`
	MoodUpdated               bool `json:"moodUpdated"`
	EmotionalNeedsUpdated     bool `json:"emotionalNeedsUpdated"`
	CompatibilityScoreUpdated bool `json:"compatibilityScoreUpdated"`
}

// Any reports whether the run wrote anything at all.
func (o AnalysisOutcome) Any() bool {
	return o.PersonalityUpdated || o.MoodUpdated || o.EmotionalNeedsUpdated || o.CompatibilityScoreUpdated
}

// AnalyticsSummary is the aggregated read-only view served to the profile
// and insight screens.
type AnalyticsSummary struct {
	UserID             string         `json:"userId"`
	TotalResponses     int            `json:"totalResponses"`
	AveragePersonality TraitValues    `json:"averagePersonality"`
	MoodTrend          string         `json:"moodTrend"`
	EmotionalNeeds     []string       `json:"emotionalNeeds"`
	CompatibilityScore int            `json:"compatibilityScore"`
	RecentActivity     *time.Time     `json:"recentActivity,omitempty"`
	ResponsePatterns   map[string]int `json:"responsePatterns"`
	GeneratedAt        time.Time      `json:"generatedAt"`
}
