package handler

import (
	"net/http"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/bootcamp"
)

// UpdateProgressRequest sets a bootcamp's completion percentage
type UpdateProgressRequest struct {
	Progress *int `json:"progress" validate:"required,gte=0,lte=100"`
}

// BootcampHandlers contains HTTP handlers for bootcamp progress
type BootcampHandlers struct {
	service bootcamp.Service
}

// NewBootcampHandlers creates new bootcamp handlers
func NewBootcampHandlers(service bootcamp.Service) *BootcampHandlers {
	return &BootcampHandlers{service: service}
}

// HandleList returns every bootcamp of the current user
// @Summary List bootcamps
// @Tags bootcamps
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.BootcampList
// @Failure 401 {object} ErrorResponse
// @Router /bootcamps [get]
func (h *BootcampHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "List bootcamps", err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}

// HandleGet returns one bootcamp
// @Summary Get bootcamp
// @Tags bootcamps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bootcamp ID"
// @Success 200 {object} domain.Bootcamp
// @Failure 404 {object} ErrorResponse
// @Router /bootcamps/{id} [get]
func (h *BootcampHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogIDParam(r, w, "id")
		if !ok {
			return
		}

		b, err := h.service.Get(r.Context(), auth.UserIDFromContext(r.Context()), id)
		if err != nil {
			respondServiceError(w, r, "Get bootcamp", err)
			return
		}
		respondJSON(w, http.StatusOK, b)
	}
}

// HandleUpdateProgress sets the completion percentage of a bootcamp
// @Summary Update bootcamp progress
// @Tags bootcamps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bootcamp ID"
// @Param request body UpdateProgressRequest true "Progress percentage (0-100)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bootcamps/{id}/progress [put]
func (h *BootcampHandlers) HandleUpdateProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogIDParam(r, w, "id")
		if !ok {
			return
		}

		var req UpdateProgressRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update bootcamp progress"); err != nil {
			return
		}

		b, err := h.service.UpdateProgress(r.Context(), auth.UserIDFromContext(r.Context()), id, *req.Progress)
		if err != nil {
			respondServiceError(w, r, "Update bootcamp progress", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgBootcampUpdated, Data: b})
	}
}

// HandleCompleteLevel marks a bootcamp level as completed
// @Summary Complete bootcamp level
// @Tags bootcamps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bootcamp ID"
// @Param level path int true "Level number"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bootcamps/{id}/levels/{level}/complete [post]
func (h *BootcampHandlers) HandleCompleteLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogIDParam(r, w, "id")
		if !ok {
			return
		}
		level, ok := GetIntParam(r, w, "level")
		if !ok {
			return
		}

		b, err := h.service.CompleteLevel(r.Context(), auth.UserIDFromContext(r.Context()), id, level)
		if err != nil {
			respondServiceError(w, r, "Complete bootcamp level", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgBootcampLevelComplete, Data: b})
	}
}

// HandleUnlock unlocks a bootcamp
// @Summary Unlock bootcamp
// @Tags bootcamps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bootcamp ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /bootcamps/{id}/unlock [post]
func (h *BootcampHandlers) HandleUnlock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetCatalogIDParam(r, w, "id")
		if !ok {
			return
		}

		b, err := h.service.Unlock(r.Context(), auth.UserIDFromContext(r.Context()), id)
		if err != nil {
			respondServiceError(w, r, "Unlock bootcamp", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgBootcampUnlocked, Data: b})
	}
}

// HandleReload re-reads the bootcamp tracker from storage
// @Summary Reload bootcamps
// @Tags bootcamps
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.BootcampList
// @Router /bootcamps/reload [post]
func (h *BootcampHandlers) HandleReload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.Reload(r.Context(), auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Reload bootcamps", err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}
