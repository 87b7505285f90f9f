package handler

import (
	"net/http"
	"strconv"

	"solospark/internal/cache"
)

const defaultLeaderboardLimit = 10

// LeaderboardHandler serves the compatibility score leaderboard
type LeaderboardHandler struct {
	leaderboard cache.LeaderboardCache
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard cache.LeaderboardCache) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Top handles GET /v1/leaderboard
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboard.GetTop(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []cache.LeaderboardEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
