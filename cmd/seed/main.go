package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solospark/internal/model"
	"solospark/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = "solospark"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(database)

	userRepo := repository.NewUserRepo(db)
	questRepo := repository.NewQuestRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	traitRepo := repository.NewTraitRepo(db)
	moodRepo := repository.NewMoodRepo(db)
	pointsRepo := repository.NewPointsRepo(db)
	metricsRepo := repository.NewMetricsRepo(db)

	profile := &model.UserProfile{
		ID:           "demo-user",
		Email:        "demo@solospark.app",
		DisplayName:  "Demo User",
		PrivacyLevel: "private",
		EmotionalProfile: model.EmotionalProfile{
			EmotionalNeeds: []string{"Support"},
		},
		ProfileCreatedAt: time.Now(),
	}
	if err := userRepo.Create(ctx, profile); err != nil {
		log.Fatalf("Failed to create demo profile: %v", err)
	}
	log.Printf("Created profile %s", profile.ID)

	quests := []*model.Quest{
		{
			QuestionText: "A friend cancels plans at the last minute. What do you do?",
			Category:     "Emotional Intelligence",
			Options:      []string{"Talk it through with them", "Go exercise instead", "Take time to reflect"},
			PointValue:   10,
		},
		{
			QuestionText: "It is a free Saturday. How do you spend it?",
			Category:     "Personality",
			Options:      []string{"Out with people", "Quiet time alone", "Something creative"},
			PointValue:   10,
		},
		{
			QuestionText: "Someone close to you is struggling. How do you respond?",
			Category:     "Relationships",
			Options:      []string{"Offer help and support", "Listen and understand", "Give them space"},
			PointValue:   15,
		},
		{
			QuestionText: "What helps you understand yourself better?",
			Category:     "Self-Awareness",
			Options:      []string{"Journaling", "Quiet reflection", "Talking to friends"},
			PointValue:   10,
		},
		{
			QuestionText: "Work is piling up and you feel overwhelmed. What is your first move?",
			Category:     "Stress Management",
			Options:      []string{"Breathe and relax", "Push through", "Step away for a walk"},
			PointValue:   15,
		},
	}
	for _, quest := range quests {
		if err := questRepo.Create(ctx, quest); err != nil {
			log.Fatalf("Failed to create quest: %v", err)
		}
		log.Printf("Created quest %s (%s)", quest.ID, quest.Category)
	}

	responses := []string{
		"I would talk to them and communicate how I feel",
		"Quiet time alone with some music",
		"I always try to help and support them however I can",
		"Journaling helps me reflect and think things through",
		"I breathe deeply and try to stay calm",
	}
	for i, text := range responses {
		response := &model.QuestResponse{
			UserID:   profile.ID,
			QuestID:  quests[i].ID,
			Response: text,
		}
		if err := responseRepo.Append(ctx, response); err != nil {
			log.Fatalf("Failed to create response: %v", err)
		}
		if err := questRepo.IncrementResponseCount(ctx, quests[i].ID); err != nil {
			log.Fatalf("Failed to bump response count: %v", err)
		}
	}
	log.Printf("Created %d quest responses", len(responses))

	snapshot := &model.TraitSnapshot{
		UserID:        profile.ID,
		Openness:      model.TraitScore{Value: 0.5, Weight: 1},
		Neuroticism:   model.TraitScore{Value: 0.5, Weight: 1},
		Agreeableness: model.TraitScore{Value: 0.5, Weight: 1},
	}
	if err := traitRepo.Append(ctx, snapshot); err != nil {
		log.Fatalf("Failed to create trait snapshot: %v", err)
	}

	mood := &model.MoodEntry{
		UserID:    profile.ID,
		Mood:      "content",
		Intensity: 6,
		Notes:     "Settling into a new routine",
	}
	if err := moodRepo.Append(ctx, mood); err != nil {
		log.Fatalf("Failed to create mood entry: %v", err)
	}

	tx := &model.PointsTransaction{
		UserID: profile.ID,
		Amount: 60,
		Type:   model.PointsEarned,
		Reason: "Quest responses",
	}
	if err := pointsRepo.Append(ctx, tx); err != nil {
		log.Fatalf("Failed to create points transaction: %v", err)
	}
	if err := userRepo.IncrementPoints(ctx, profile.ID, tx.Amount); err != nil {
		log.Fatalf("Failed to credit points: %v", err)
	}

	summary := model.NewMetricsSummary(profile.ID)
	summary.EngagementProfile.InteractionFrequency = len(responses)
	for _, quest := range quests {
		summary.EngagementProfile.CompletedQuests = append(summary.EngagementProfile.CompletedQuests, quest.ID)
	}
	if err := metricsRepo.UpsertSummary(ctx, summary); err != nil {
		log.Fatalf("Failed to create metrics summary: %v", err)
	}

	log.Println("Seed complete")
	log.Printf("Login with: {\"email\":%q}", profile.Email)
}
