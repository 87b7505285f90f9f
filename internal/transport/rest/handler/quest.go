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

// QuestHandler handles quest catalog and response endpoints
type QuestHandler struct {
	questSvc *service.QuestService
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(questSvc *service.QuestService) *QuestHandler {
	return &QuestHandler{questSvc: questSvc}
}

// Create handles POST /v1/quests
func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var quest model.Quest
	if err := json.NewDecoder(r.Body).Decode(&quest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.questSvc.SaveQuest(r.Context(), &quest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"questId": id})
}

// List handles GET /v1/quests
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	quests, err := h.questSvc.ListQuests(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quests": quests})
}

// Get handles GET /v1/quests/{questId}
func (h *QuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	questID := mux.Vars(r)["questId"]

	quest, err := h.questSvc.GetQuest(r.Context(), questID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if quest == nil {
		writeError(w, http.StatusNotFound, "quest not found")
		return
	}

	writeJSON(w, http.StatusOK, quest)
}

// SubmitResponseRequest is the request body for submitting a response
type SubmitResponseRequest struct {
	QuestID  string `json:"questId"`
	Response string `json:"response"`
}

// SubmitResponse handles POST /v1/users/{userId}/responses
func (h *QuestHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.questSvc.SubmitResponse(r.Context(), userID, req.QuestID, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, outcome)
}
