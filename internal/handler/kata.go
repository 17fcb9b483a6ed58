package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/kata"
	"github.com/osse101/Codinho_Go/internal/logger"
)

// KataListResponse wraps a catalog listing
type KataListResponse struct {
	Katas []domain.Kata `json:"katas"`
	Count int           `json:"count"`
}

// SubmissionCreatedResponse is returned after a solution is stored
type SubmissionCreatedResponse struct {
	Message      string                  `json:"message"`
	SubmissionID string                  `json:"submission_id"`
	Status       domain.SubmissionStatus `json:"status"`
}

// KataHandlers contains HTTP handlers for the kata catalog and submissions
type KataHandlers struct {
	service kata.Service
}

// NewKataHandlers creates new kata handlers
func NewKataHandlers(service kata.Service) *KataHandlers {
	return &KataHandlers{service: service}
}

// HandleListKatas returns published katas, newest first
// @Summary List katas
// @Tags katas
// @Produce json
// @Param kyu query int false "Difficulty (1-8)"
// @Param language query string false "Language name, case-insensitive"
// @Param search query string false "Matches title or description"
// @Success 200 {object} KataListResponse
// @Failure 400 {object} ErrorResponse
// @Router /katas [get]
func (h *KataHandlers) HandleListKatas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.KataFilter{
			Language: GetOptionalQueryParam(r, "language", ""),
			Search:   GetOptionalQueryParam(r, "search", ""),
		}
		if raw := GetOptionalQueryParam(r, "kyu", ""); raw != "" {
			kyu, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "kyu"))
				return
			}
			filter.Kyu = &kyu
		}

		katas, err := h.service.ListKatas(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, "List katas", err)
			return
		}
		if katas == nil {
			katas = []domain.Kata{}
		}

		respondJSON(w, http.StatusOK, KataListResponse{Katas: katas, Count: len(katas)})
	}
}

// HandleGetKata returns one kata with its visible test cases and, for a
// signed-in viewer, their latest solution
// @Summary Get kata
// @Tags katas
// @Produce json
// @Param id path string true "Kata ID"
// @Success 200 {object} domain.KataDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /katas/{id} [get]
func (h *KataHandlers) HandleGetKata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		detail, err := h.service.GetKata(r.Context(), id, auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Get kata", err)
			return
		}
		respondJSON(w, http.StatusOK, detail)
	}
}

// HandleSubmit stores a solution for judging
// @Summary Submit solution
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body kata.SubmitRequest true "Solution"
// @Success 201 {object} SubmissionCreatedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /submissions [post]
func (h *KataHandlers) HandleSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req kata.SubmitRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit solution"); err != nil {
			return
		}

		sub, err := h.service.Submit(r.Context(), auth.UserIDFromContext(r.Context()), req)
		if err != nil {
			respondServiceError(w, r, "Submit solution", err)
			return
		}

		logger.FromContext(r.Context()).Info("Submit solution: success", "submission_id", sub.ID)
		respondJSON(w, http.StatusCreated, SubmissionCreatedResponse{
			Message:      MsgSubmissionReceived,
			SubmissionID: sub.ID.String(),
			Status:       sub.Status,
		})
	}
}

// HandleGetSubmission returns one of the current user's submissions
// @Summary Get submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} domain.Submission
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /submissions/{id} [get]
func (h *KataHandlers) HandleGetSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := h.service.GetSubmission(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get submission", err)
			return
		}
		respondJSON(w, http.StatusOK, sub)
	}
}
