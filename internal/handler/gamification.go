package handler

import (
	"net/http"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/gamification"
	"github.com/osse101/Codinho_Go/internal/logger"
)

// AddXPRequest awards experience points to the current user
type AddXPRequest struct {
	Points int64 `json:"points" validate:"lte=100000"`
}

// GamificationHandlers contains HTTP handlers for the XP ledger
type GamificationHandlers struct {
	service gamification.Service
}

// NewGamificationHandlers creates new gamification handlers
func NewGamificationHandlers(service gamification.Service) *GamificationHandlers {
	return &GamificationHandlers{service: service}
}

// HandleGetLedger returns the current user's ledger
// @Summary Get ledger
// @Description Returns XP, level, achievements, rewards, level progress and rewards the user can collect now
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.LedgerView
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamification [get]
func (h *GamificationHandlers) HandleGetLedger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.service.GetLedger(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Get ledger", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleAddXP awards XP to the current user
// @Summary Award XP
// @Tags gamification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddXPRequest true "XP to award"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /gamification/xp [post]
func (h *GamificationHandlers) HandleAddXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add XP"); err != nil {
			return
		}

		view, err := h.service.AddXP(r.Context(), auth.UserIDFromContext(r.Context()), req.Points)
		if err != nil {
			respondServiceError(w, r, "Add XP", err)
			return
		}

		logger.FromContext(r.Context()).Info("Add XP: success", "points", req.Points, "level", view.CurrentLevel)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgXPAwarded, Data: view})
	}
}

// HandleUnlockAchievement unlocks an achievement for the current user.
// Unknown ids and repeated unlocks return the unchanged ledger.
// @Summary Unlock achievement
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Achievement ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /gamification/achievements/{id}/unlock [post]
func (h *GamificationHandlers) HandleUnlockAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogIDParam(r, w, "id")
		if !ok {
			return
		}

		view, err := h.service.UnlockAchievement(r.Context(), auth.UserIDFromContext(r.Context()), id)
		if err != nil {
			respondServiceError(w, r, "Unlock achievement", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgAchievementUnlocked, Data: view})
	}
}

// HandleCollectReward collects a reward for the current user.
// Unknown rewards, rewards above the user's level and collected ones leave the ledger unchanged.
// @Summary Collect reward
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /gamification/rewards/{id}/collect [post]
func (h *GamificationHandlers) HandleCollectReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogIDParam(r, w, "id")
		if !ok {
			return
		}

		view, err := h.service.CollectReward(r.Context(), auth.UserIDFromContext(r.Context()), id)
		if err != nil {
			respondServiceError(w, r, "Collect reward", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgRewardCollected, Data: view})
	}
}

// HandleClearRecentAchievement dismisses the achievement notification
// @Summary Clear recent achievement
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse
// @Router /gamification/achievements/recent [delete]
func (h *GamificationHandlers) HandleClearRecentAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.service.ClearRecentAchievement(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Clear recent achievement", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgRecentCleared, Data: view})
	}
}

// HandleClearRecentReward dismisses the reward notification
// @Summary Clear recent reward
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse
// @Router /gamification/rewards/recent [delete]
func (h *GamificationHandlers) HandleClearRecentReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.service.ClearRecentReward(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Clear recent reward", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgRecentCleared, Data: view})
	}
}

// HandleReload re-reads the ledger from storage
// @Summary Reload ledger
// @Description Drops the cached ledger and loads it again. The advisory field reports a reset to defaults.
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse
// @Router /gamification/reload [post]
func (h *GamificationHandlers) HandleReload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.service.Reload(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Reload ledger", err)
			return
		}
		if view.Advisory != "" {
			logger.FromContext(r.Context()).Warn("Reload ledger: fell back to defaults", "advisory", view.Advisory)
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgLedgerReloaded, Data: view})
	}
}
