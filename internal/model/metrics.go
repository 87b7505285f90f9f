package model

import "time"

// EngagementProfile tracks interaction counts per user.
type EngagementProfile struct {
	InteractionFrequency int      `json:"interactionFrequency" bson:"interactionFrequency"`
	CompletedQuests      []string `json:"completedQuests" bson:"completedQuests"`
}

// EmotionalProfileMetrics holds the derived mood fields. CurrentMood is the
// authoritative stored mood the analysis change check compares against.
type EmotionalProfileMetrics struct {
	CurrentMood   string `json:"currentMood" bson:"currentMood"`
	MoodFrequency string `json:"moodFrequency" bson:"moodFrequency"`
}

// MetricsSummary is the single per-user metrics document, created with
// zeroed defaults on first write and merged on subsequent writes.
type MetricsSummary struct {
	UserID                  string                  `json:"userId" bson:"_id"`
	CategoryAffinity        map[string]int          `json:"categoryAffinity" bson:"categoryAffinity"`
	EngagementProfile       EngagementProfile       `json:"engagementProfile" bson:"engagementProfile"`
	EmotionalProfileMetrics EmotionalProfileMetrics `json:"emotionalProfileMetrics" bson:"emotionalProfileMetrics"`
	UpdatedAt               time.Time               `json:"updatedAt" bson:"updatedAt"`
}

// NewMetricsSummary returns a zeroed summary for a user.
func NewMetricsSummary(userID string) *MetricsSummary {
	return &MetricsSummary{
		UserID:           userID,
		CategoryAffinity: make(map[string]int),
		EngagementProfile: EngagementProfile{
			CompletedQuests: []string{},
		},
	}
}
