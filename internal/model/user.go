package model

import "time"

// TraitScore is one stored personality dimension, a 0-1 value scaled by weight.
type TraitScore struct {
	Value  float64 `json:"value" bson:"value"`
	Weight float64 `json:"weight" bson:"weight"`
}

// TraitSnapshot is a point-in-time personality record. Snapshots are
// append-only; the current personality is the most recent one by timestamp.
type TraitSnapshot struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	UserID        string     `json:"userId" bson:"userId"`
	Openness      TraitScore `json:"openness" bson:"openness"`
	Neuroticism   TraitScore `json:"neuroticism" bson:"neuroticism"`
	Agreeableness TraitScore `json:"agreeableness" bson:"agreeableness"`
	Timestamp     time.Time  `json:"timestamp" bson:"timestamp"`
}

// TraitValues is the 1-10 scale view of a snapshot.
type TraitValues struct {
	Openness      float64 `json:"openness"`
	Neuroticism   float64 `json:"neuroticism"`
	Agreeableness float64 `json:"agreeableness"`
}

// Values scales the stored 0-1 scores back to the 1-10 range.
func (s *TraitSnapshot) Values() TraitValues {
	return TraitValues{
		Openness:      s.Openness.Value * s.Openness.Weight * 10,
		Neuroticism:   s.Neuroticism.Value * s.Neuroticism.Weight * 10,
		Agreeableness: s.Agreeableness.Value * s.Agreeableness.Weight * 10,
	}
}

// DefaultTraitValues is the baseline for users with no stored snapshot.
func DefaultTraitValues() TraitValues {
	return TraitValues{Openness: 5, Neuroticism: 5, Agreeableness: 5}
}

// EmotionalProfile is the derived emotional state stored on the profile.
// EmotionalNeeds is ranked most-to-least frequent and is never empty.
type EmotionalProfile struct {
	EmotionalNeeds []string `json:"emotionalNeeds" bson:"emotionalNeeds"`
}

// UserProfile is the root user document.
type UserProfile struct {
	ID                 string           `json:"id" bson:"_id,omitempty"`
	Email              string           `json:"email" bson:"email"`
	DisplayName        string           `json:"displayName" bson:"displayName"`
	PhoneNumber        string           `json:"phoneNumber" bson:"phoneNumber"`
	PrivacyLevel       string           `json:"privacyLevel" bson:"privacyLevel"`
	CurrentPoints      int              `json:"currentPoints" bson:"currentPoints"`
	CompatibilityScore int              `json:"compatibilityScore" bson:"compatibilityScore"`
	EmotionalProfile   EmotionalProfile `json:"emotionalProfile" bson:"emotionalProfile"`
	ProfileCreatedAt   time.Time        `json:"profileCreatedAt" bson:"profileCreatedAt"`
	LastUpdatedAt      time.Time        `json:"lastUpdatedAt" bson:"lastUpdatedAt"`
}

// MoodEntry is an append-only mood history record.
type MoodEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Mood      string    `json:"mood" bson:"mood"`
	Intensity int       `json:"intensity" bson:"intensity"`
	Notes     string    `json:"notes" bson:"notes"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// PointsType classifies a points transaction.
type PointsType string

const (
	PointsEarned PointsType = "earned"
	PointsBonus  PointsType = "bonus"
)

// PointsTransaction is an append-only points ledger record.
type PointsTransaction struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	UserID     string     `json:"userId" bson:"userId"`
	Amount     int        `json:"amount" bson:"amount"`
	Type       PointsType `json:"type" bson:"type"`
	Reason     string     `json:"reason" bson:"reason"`
	Timestamp  time.Time  `json:"timestamp" bson:"timestamp"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
}
