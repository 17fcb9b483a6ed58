package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// Kata defines the data access interface for the kata catalog
type Kata interface {
	ListKatas(ctx context.Context, filter domain.KataFilter) ([]domain.Kata, error)
	// GetKata returns the kata with its visible test cases, or domain.ErrKataNotFound
	GetKata(ctx context.Context, id uuid.UUID) (*domain.Kata, error)
	UpsertKata(ctx context.Context, kata *domain.Kata) error
}

// Submission defines the data access interface for kata solutions
type Submission interface {
	// CreateSubmission stores sub and fills in its ID and timestamp.
	// A second solution for the same user, kata and language fails with domain.ErrDuplicateSubmission.
	CreateSubmission(ctx context.Context, sub *domain.Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	// GetLatestSubmission returns nil without error when the user has no solution for the kata
	GetLatestSubmission(ctx context.Context, userID string, kataID uuid.UUID) (*domain.Submission, error)
}
