package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"solospark/internal/cache"
	"solospark/internal/model"
)

// In-memory repository doubles for service tests.

type fakeUserRepo struct {
	profiles map[string]*model.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{profiles: make(map[string]*model.UserProfile)}
}

func (f *fakeUserRepo) Create(_ context.Context, profile *model.UserProfile) error {
	if profile.ID == "" {
		profile.ID = fmt.Sprintf("user-%d", len(f.profiles)+1)
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (*model.UserProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.UserProfile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Patch(_ context.Context, userID string, fields map[string]interface{}) error {
	p, ok := f.profiles[userID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "email":
			p.Email = v.(string)
		case "displayName":
			p.DisplayName = v.(string)
		case "phoneNumber":
			p.PhoneNumber = v.(string)
		case "privacyLevel":
			p.PrivacyLevel = v.(string)
		case "currentPoints":
			p.CurrentPoints = v.(int)
		case "compatibilityScore":
			p.CompatibilityScore = v.(int)
		case "emotionalProfile.emotionalNeeds":
			p.EmotionalProfile.EmotionalNeeds = v.([]string)
		}
	}
	p.LastUpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) IncrementPoints(_ context.Context, userID string, delta int) error {
	if p, ok := f.profiles[userID]; ok {
		p.CurrentPoints += delta
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, userID string) error {
	delete(f.profiles, userID)
	return nil
}

type fakeTraitRepo struct {
	snapshots []*model.TraitSnapshot
}

func (f *fakeTraitRepo) Append(_ context.Context, snapshot *model.TraitSnapshot) error {
	snapshot.Timestamp = time.Now()
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeTraitRepo) Latest(_ context.Context, userID string) (*model.TraitSnapshot, error) {
	for i := len(f.snapshots) - 1; i >= 0; i-- {
		if f.snapshots[i].UserID == userID {
			return f.snapshots[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTraitRepo) ListByUser(_ context.Context, userID string) ([]*model.TraitSnapshot, error) {
	var out []*model.TraitSnapshot
	for _, s := range f.snapshots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeTraitRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := f.snapshots[:0]
	for _, s := range f.snapshots {
		if s.UserID != userID {
			kept = append(kept, s)
		}
	}
	f.snapshots = kept
	return nil
}

type fakeMoodRepo struct {
	entries []*model.MoodEntry
}

func (f *fakeMoodRepo) Append(_ context.Context, entry *model.MoodEntry) error {
	entry.Timestamp = time.Now()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeMoodRepo) Latest(_ context.Context, userID string) (*model.MoodEntry, error) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			return f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMoodRepo) ListByUser(_ context.Context, userID string) ([]*model.MoodEntry, error) {
	var out []*model.MoodEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeMoodRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakePointsRepo struct {
	entries []*model.PointsTransaction
}

func (f *fakePointsRepo) Append(_ context.Context, tx *model.PointsTransaction) error {
	tx.Timestamp = time.Now()
	f.entries = append(f.entries, tx)
	return nil
}

func (f *fakePointsRepo) ListByUser(_ context.Context, userID string) ([]*model.PointsTransaction, error) {
	var out []*model.PointsTransaction
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakePointsRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakeResponseRepo struct {
	entries []model.QuestResponse
}

func (f *fakeResponseRepo) Append(_ context.Context, response *model.QuestResponse) error {
	response.ID = fmt.Sprintf("resp-%d", len(f.entries)+1)
	response.Timestamp = time.Now()
	f.entries = append(f.entries, *response)
	return nil
}

func (f *fakeResponseRepo) ListByUser(_ context.Context, userID string) ([]model.QuestResponse, error) {
	var out []model.QuestResponse
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeResponseRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakeQuestRepo struct {
	quests map[string]*model.Quest
}

func newFakeQuestRepo(quests ...*model.Quest) *fakeQuestRepo {
	repo := &fakeQuestRepo{quests: make(map[string]*model.Quest)}
	for _, q := range quests {
		repo.quests[q.ID] = q
	}
	return repo
}

func (f *fakeQuestRepo) Create(_ context.Context, quest *model.Quest) error {
	if quest.ID == "" {
		quest.ID = fmt.Sprintf("quest-%d", len(f.quests)+1)
	}
	quest.CreatedAt = time.Now()
	f.quests[quest.ID] = quest
	return nil
}

func (f *fakeQuestRepo) GetByID(_ context.Context, questID string) (*model.Quest, error) {
	return f.quests[questID], nil
}

func (f *fakeQuestRepo) GetByIDs(_ context.Context, questIDs []string) (map[string]*model.Quest, error) {
	out := make(map[string]*model.Quest)
	for _, id := range questIDs {
		if q, ok := f.quests[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (f *fakeQuestRepo) List(_ context.Context) ([]*model.Quest, error) {
	var out []*model.Quest
	for _, q := range f.quests {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestRepo) IncrementResponseCount(_ context.Context, questID string) error {
	if q, ok := f.quests[questID]; ok {
		q.ResponseCount++
	}
	return nil
}

type fakeMetricsRepo struct {
	summaries map[string]*model.MetricsSummary
}

func newFakeMetricsRepo() *fakeMetricsRepo {
	return &fakeMetricsRepo{summaries: make(map[string]*model.MetricsSummary)}
}

func (f *fakeMetricsRepo) GetSummary(_ context.Context, userID string) (*model.MetricsSummary, error) {
	return f.summaries[userID], nil
}

func (f *fakeMetricsRepo) UpsertSummary(_ context.Context, summary *model.MetricsSummary) error {
	summary.UpdatedAt = time.Now()
	f.summaries[summary.UserID] = summary
	return nil
}

func (f *fakeMetricsRepo) PatchMood(_ context.Context, userID, mood string) error {
	if s, ok := f.summaries[userID]; ok {
		s.EmotionalProfileMetrics.CurrentMood = mood
		s.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeMetricsRepo) Delete(_ context.Context, userID string) error {
	delete(f.summaries, userID)
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*model.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*model.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task-%d", len(f.tasks)+1)
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, taskID string) (*model.Task, error) {
	return f.tasks[taskID], nil
}

func (f *fakeTaskRepo) ListByUser(_ context.Context, userID string) ([]*model.Task, error) {
	var out []*model.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Patch(_ context.Context, taskID string, fields map[string]interface{}) error {
	t, ok := f.tasks[taskID]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "category":
			t.Category = v.(model.TaskCategory)
		case "pointValue":
			t.PointValue = v.(int)
		case "difficulty":
			t.Difficulty = v.(string)
		case "tags":
			t.Tags = v.([]string)
		case "dueDate":
			d := v.(time.Time)
			t.DueDate = &d
		case "completed":
			t.Completed = v.(bool)
		case "completedAt":
			c := v.(time.Time)
			t.CompletedAt = &c
		}
	}
	t.UpdatedAt = time.Now()
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, taskID string) error {
	delete(f.tasks, taskID)
	return nil
}

func (f *fakeTaskRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, t := range f.tasks {
		if t.UserID == userID {
			delete(f.tasks, id)
		}
	}
	return nil
}

type fakeLeaderboard struct {
	scores map[string]int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: make(map[string]int)}
}

func (f *fakeLeaderboard) UpdateScore(_ context.Context, userID string, score int) error {
	f.scores[userID] = score
	return nil
}

func (f *fakeLeaderboard) GetTop(_ context.Context, limit int) ([]cache.LeaderboardEntry, error) {
	var entries []cache.LeaderboardEntry
	for id, score := range f.scores {
		entries = append(entries, cache.LeaderboardEntry{UserID: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (f *fakeLeaderboard) GetRank(_ context.Context, userID string) (int64, error) {
	if _, ok := f.scores[userID]; !ok {
		return -1, nil
	}
	return 1, nil
}

func (f *fakeLeaderboard) Remove(_ context.Context, userID string) error {
	delete(f.scores, userID)
	return nil
}

type broadcastEvent struct {
	userID  string
	msgType string
	payload interface{}
}

type fakeBroadcaster struct {
	events []broadcastEvent
}

func (f *fakeBroadcaster) BroadcastToUser(userID string, msgType string, payload interface{}) {
	f.events = append(f.events, broadcastEvent{userID: userID, msgType: msgType, payload: payload})
}
