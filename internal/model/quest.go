package model

import "time"

// Quest is a single prompt with a category and point value. Quests are
// immutable after creation and referenced by id from responses.
type Quest struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	QuestionText    string    `json:"questionText" bson:"questionText"`
	Category        string    `json:"category" bson:"category"`
	Options         []string  `json:"options" bson:"options"`
	PointValue      int       `json:"pointValue" bson:"pointValue"`
	ResponseOptions []string  `json:"responseOptions" bson:"responseOptions"`
	ResponseCount   int       `json:"responseCount" bson:"responseCount"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// QuestResponse is a user's answer to a quest, stored verbatim.
// Responses are created once per submission and immutable thereafter.
type QuestResponse struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	QuestID   string    `json:"questId" bson:"questId"`
	Response  string    `json:"response" bson:"response"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
