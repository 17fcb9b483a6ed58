package kata

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/logger"
	"github.com/osse101/Codinho_Go/internal/repository"
	"github.com/osse101/Codinho_Go/internal/validation"
)

// SubmitRequest is a solution attempt for one kata
type SubmitRequest struct {
	KataID     string `json:"kata_id" validate:"required,uuid"`
	LanguageID int    `json:"language_id" validate:"required,min=1"`
	Code       string `json:"code" validate:"required,max=65536"`
}

// Service defines the kata catalog and submission business logic
type Service interface {
	ListKatas(ctx context.Context, filter domain.KataFilter) ([]domain.Kata, error)
	GetKata(ctx context.Context, id, viewerID string) (*domain.KataDetail, error)
	Submit(ctx context.Context, userID string, req SubmitRequest) (*domain.Submission, error)
	GetSubmission(ctx context.Context, userID, id string) (*domain.Submission, error)
	ImportCatalog(ctx context.Context, path string) (int, error)
}

type service struct {
	katas       repository.Kata
	submissions repository.Submission
	eventBus    event.Bus
	schemas     validation.SchemaValidator
}

// NewService creates a new kata service
func NewService(katas repository.Kata, submissions repository.Submission, eventBus event.Bus, schemas validation.SchemaValidator) Service {
	return &service{
		katas:       katas,
		submissions: submissions,
		eventBus:    eventBus,
		schemas:     schemas,
	}
}

// NormalizeLanguage folds a language name for case-insensitive matching.
// A Caser keeps state, so a fresh one is used per call.
func NormalizeLanguage(lang string) string {
	return cases.Fold().String(strings.TrimSpace(lang))
}

// ListKatas returns the published catalog, newest first
func (s *service) ListKatas(ctx context.Context, filter domain.KataFilter) ([]domain.Kata, error) {
	if filter.Kyu != nil && (*filter.Kyu < domain.MinKyu || *filter.Kyu > domain.MaxKyu) {
		return nil, fmt.Errorf("%w: kyu must be between %d and %d", domain.ErrInvalidInput, domain.MinKyu, domain.MaxKyu)
	}
	filter.Language = NormalizeLanguage(filter.Language)
	filter.Search = strings.TrimSpace(filter.Search)

	return s.katas.ListKatas(ctx, filter)
}

// GetKata returns a kata with its visible test cases. When viewerID is set the
// viewer's latest solution is attached.
func (s *service) GetKata(ctx context.Context, id, viewerID string) (*domain.KataDetail, error) {
	kataID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid kata id", domain.ErrInvalidInput)
	}

	kata, err := s.katas.GetKata(ctx, kataID)
	if err != nil {
		return nil, err
	}

	detail := &domain.KataDetail{Kata: *kata}
	if viewerID == "" {
		return detail, nil
	}

	solution, err := s.submissions.GetLatestSubmission(ctx, viewerID, kataID)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to load viewer solution", "kata_id", id, "error", err)
		return detail, nil
	}
	detail.UserSolution = solution
	return detail, nil
}

// Submit stores a new solution in processing state
func (s *service) Submit(ctx context.Context, userID string, req SubmitRequest) (*domain.Submission, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	kataID, err := uuid.Parse(req.KataID)
	if err != nil || req.LanguageID <= 0 || strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("%w: incomplete submission", domain.ErrInvalidInput)
	}

	sub := &domain.Submission{
		UserID:   userID,
		KataID:   kataID,
		Language: strconv.Itoa(req.LanguageID),
		Code:     req.Code,
		Status:   domain.SubmissionStatusProcessing,
	}
	if err := s.submissions.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSubmissionCreated,
		"submission_id", sub.ID,
		"user_id", userID,
		"kata_id", kataID)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewSubmissionCreatedEvent(*sub)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "submission_id", sub.ID, "error", err)
		}
	}

	return sub, nil
}

// GetSubmission returns one of the user's submissions. Submissions of other
// users are reported as missing.
func (s *service) GetSubmission(ctx context.Context, userID, id string) (*domain.Submission, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	subID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid submission id", domain.ErrInvalidInput)
	}

	sub, err := s.submissions.GetSubmission(ctx, subID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, domain.ErrSubmissionNotFound
	}
	return sub, nil
}

// ImportCatalog validates a catalog file against its schema and upserts every kata.
// It returns the number of katas written.
func (s *service) ImportCatalog(ctx context.Context, path string) (int, error) {
	if err := s.schemas.ValidateFile(path, CatalogSchemaPath); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		return 0, err
	}

	log := logger.FromContext(ctx)
	for i := range catalog.Katas {
		k := &catalog.Katas[i]
		for j := range k.Languages {
			k.Languages[j] = NormalizeLanguage(k.Languages[j])
		}
		if err := s.katas.UpsertKata(ctx, k); err != nil {
			return i, fmt.Errorf("failed to import kata %q: %w", k.Title, err)
		}
		log.Debug(LogMsgKataImported, "kata_id", k.ID, "title", k.Title)
	}

	log.Info(LogMsgCatalogImported, "path", path, "count", len(catalog.Katas))
	return len(catalog.Katas), nil
}
