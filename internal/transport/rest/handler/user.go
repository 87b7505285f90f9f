package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"solospark/internal/model"
	"solospark/internal/service"
	"solospark/internal/transport/rest/middleware"
)

// UserHandler handles profile and history endpoints
type UserHandler struct {
	userSvc      *service.UserService
	analyticsSvc *service.AnalyticsService
	insightSvc   *service.InsightService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc *service.UserService, analyticsSvc *service.AnalyticsService, insightSvc *service.InsightService) *UserHandler {
	return &UserHandler{
		userSvc:      userSvc,
		analyticsSvc: analyticsSvc,
		insightSvc:   insightSvc,
	}
}

// pathUser returns the path user id, or "" after writing a 403 when it
// does not match the authenticated user.
func pathUser(w http.ResponseWriter, r *http.Request) string {
	userID := mux.Vars(r)["userId"]
	if userID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return ""
	}
	return userID
}

// Get handles GET /v1/users/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	profile, err := h.userSvc.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Save handles PUT /v1/users/{userId}
func (h *UserHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	var profile model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	profile.ID = userID

	if err := h.userSvc.SaveProfile(r.Context(), &profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"userId": profile.ID})
}

// Delete handles DELETE /v1/users/{userId}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	if err := h.userSvc.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SaveTrait handles POST /v1/users/{userId}/traits
func (h *UserHandler) SaveTrait(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	var snapshot model.TraitSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	snapshot.UserID = userID

	if err := h.userSvc.SavePersonalityTrait(r.Context(), &snapshot); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": snapshot.ID})
}

// SaveMood handles POST /v1/users/{userId}/moods
func (h *UserHandler) SaveMood(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	var entry model.MoodEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry.UserID = userID

	if err := h.userSvc.SaveMoodEntry(r.Context(), &entry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": entry.ID})
}

// ListMoods handles GET /v1/users/{userId}/moods
func (h *UserHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	entries, err := h.userSvc.ListMoodHistory(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"moods": entries})
}

// SavePoints handles POST /v1/users/{userId}/points
func (h *UserHandler) SavePoints(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	var tx model.PointsTransaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx.UserID = userID

	if err := h.userSvc.SavePointsTransaction(r.Context(), &tx); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": tx.ID})
}

// ListPoints handles GET /v1/users/{userId}/points
func (h *UserHandler) ListPoints(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	entries, err := h.userSvc.ListPointsHistory(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": entries})
}

// Analyze handles POST /v1/users/{userId}/analysis
func (h *UserHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	outcome, err := h.analyticsSvc.AnalyzeAndUpdateUserSchema(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// Insights handles GET /v1/users/{userId}/insights
func (h *UserHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID := pathUser(w, r)
	if userID == "" {
		return
	}

	summary, err := h.insightSvc.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
