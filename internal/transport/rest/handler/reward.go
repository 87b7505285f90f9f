package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"solospark/internal/model"
	"solospark/internal/service"
)

// RewardHandler handles shop inventory endpoints
type RewardHandler struct {
	rewardSvc *service.RewardService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardSvc *service.RewardService) *RewardHandler {
	return &RewardHandler{rewardSvc: rewardSvc}
}

// Create handles POST /v1/rewards
func (h *RewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reward model.Reward
	if err := json.NewDecoder(r.Body).Decode(&reward); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.rewardSvc.CreateReward(r.Context(), &reward)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"rewardId": id})
}

// List handles GET /v1/rewards
func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardSvc.ListRewards(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"rewards": rewards})
}

// Update handles PUT /v1/rewards/{rewardId}
func (h *RewardHandler) Update(w http.ResponseWriter, r *http.Request) {
	rewardID := mux.Vars(r)["rewardId"]

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reward, err := h.rewardSvc.UpdateReward(r.Context(), rewardID, fields)
	if err != nil {
		if errors.Is(err, service.ErrRewardNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, reward)
}

// Delete handles DELETE /v1/rewards/{rewardId}
func (h *RewardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rewardID := mux.Vars(r)["rewardId"]

	if err := h.rewardSvc.DeleteReward(r.Context(), rewardID); err != nil {
		if errors.Is(err, service.ErrRewardNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
