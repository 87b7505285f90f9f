package model

import "time"

// Reward is a shop inventory item redeemable for points.
type Reward struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Cost        int       `json:"cost" bson:"cost"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
