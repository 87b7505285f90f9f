package analytics

import "strings"

// Category enumerates the quest categories with trait-impact data.
// Free-text categories outside this set map to CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryEmotionalIntelligence
	CategoryPersonality
	CategoryRelationships
	CategorySelfAwareness
	CategoryStressManagement
)

// ParseCategory maps a raw quest category label to its enumerated value,
// case-insensitively.
func ParseCategory(raw string) Category {
	switch strings.ToLower(raw) {
	case "emotional intelligence":
		return CategoryEmotionalIntelligence
	case "personality":
		return CategoryPersonality
	case "relationships":
		return CategoryRelationships
	case "self-awareness":
		return CategorySelfAwareness
	case "stress management":
		return CategoryStressManagement
	default:
		return CategoryUnknown
	}
}

// TraitImpact lists the response keywords that move each trait for one
// quest category. An empty list means the trait never fires for it.
type TraitImpact struct {
	Agreeableness []string
	Openness      []string
	Neuroticism   []string
}

// TraitImpact returns the keyword table for the category. The second
// return is false for CategoryUnknown, which gets the default impact
// (a small openness bump) instead of keyword matching.
func (c Category) TraitImpact() (TraitImpact, bool) {
	switch c {
	case CategoryEmotionalIntelligence:
		return TraitImpact{
			Agreeableness: []string{"talk", "communicate", "discuss"},
			Openness:      []string{"meditate", "reflect", "think"},
			Neuroticism:   []string{"exercise", "activity"},
		}, true
	case CategoryPersonality:
		return TraitImpact{
			Agreeableness: []string{"social", "group", "people"},
			Openness:      []string{"creative", "art", "music"},
			Neuroticism:   []string{"alone", "quiet", "solitude"},
		}, true
	case CategoryRelationships:
		return TraitImpact{
			Agreeableness: []string{"help", "support", "care"},
			Openness:      []string{"listen", "understand"},
			Neuroticism:   []string{"confront", "argue", "fight"},
		}, true
	case CategorySelfAwareness:
		return TraitImpact{
			Agreeableness: []string{},
			Openness:      []string{"reflect", "think", "analyze"},
			Neuroticism:   []string{"journal", "write"},
		}, true
	case CategoryStressManagement:
		return TraitImpact{
			Agreeableness: []string{"avoid", "ignore"},
			Openness:      []string{},
			Neuroticism:   []string{"breathe", "relax", "calm"},
		}, true
	default:
		return TraitImpact{}, false
	}
}

// Mood lexicons, scanned in declaration order; first hit wins.
var positiveKeywords = []string{
	"happy", "excited", "joy", "love", "help", "support", "achieve",
	"success", "positive", "good", "great", "wonderful", "amazing",
	"fantastic", "calm", "peaceful", "relaxed", "confident", "proud",
	"grateful", "blessed", "yes", "agree", "like", "enjoy", "fun",
	"nice", "better", "improve", "learn",
}

var negativeKeywords = []string{
	"sad", "angry", "frustrated", "worried", "anxious", "stress",
	"conflict", "negative", "bad", "terrible", "awful", "hate", "fear",
	"scared", "lonely", "depressed", "hopeless", "irritated", "annoyed",
	"no", "disagree", "dislike", "boring", "difficult", "hard",
	"problem", "issue",
}

// DefaultNeed is used when no need keyword matches anything.
const DefaultNeed = "Support"

type needCategory struct {
	label    string
	keywords []string
}

// Need lexicons, scanned in declaration order; the first category with
// any matching keyword wins.
var needCategories = []needCategory{
	{"Support", []string{"support", "help", "care"}},
	{"Connection", []string{"connection", "social", "people"}},
	{"Space", []string{"space", "alone", "quiet"}},
	{"Understanding", []string{"understanding", "listen", "empathy"}},
	{"Recognition", []string{"recognition", "appreciate", "acknowledge"}},
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
