package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// SubmissionRepository implements the solution repository for PostgreSQL
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// CreateSubmission stores a new solution, registering the user on first use
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := ensureUser(ctx, tx, sub.UserID, ""); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEnsureUser, err)
	}

	if sub.Status == "" {
		sub.Status = domain.SubmissionStatusProcessing
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO solutions (user_id, kata_id, language, code, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING solution_id, submitted_at
	`, sub.UserID, sub.KataID, sub.Language, sub.Code, string(sub.Status)).Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case PgErrorCodeUniqueViolation:
			return domain.ErrDuplicateSubmission
		case PgErrorCodeForeignKeyViolation:
			return domain.ErrKataNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSubmission, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetSubmission returns one solution by ID
func (r *SubmissionRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	row := r.db.QueryRow(ctx, `
		SELECT solution_id, user_id, kata_id, language, code, status, submitted_at
		FROM solutions
		WHERE solution_id = $1
	`, id)

	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSubmission, err)
	}
	return sub, nil
}

// GetLatestSubmission returns the user's most recent solution for a kata, or nil
func (r *SubmissionRepository) GetLatestSubmission(ctx context.Context, userID string, kataID uuid.UUID) (*domain.Submission, error) {
	row := r.db.QueryRow(ctx, `
		SELECT solution_id, user_id, kata_id, language, code, status, submitted_at
		FROM solutions
		WHERE user_id = $1 AND kata_id = $2
		ORDER BY submitted_at DESC
		LIMIT 1
	`, userID, kataID)

	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSubmission, err)
	}
	return sub, nil
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var sub domain.Submission
	var status string
	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.KataID,
		&sub.Language,
		&sub.Code,
		&status,
		&sub.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.Status = domain.SubmissionStatus(status)
	return &sub, nil
}
