package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// KataRepository implements the kata catalog repository for PostgreSQL
type KataRepository struct {
	db *pgxpool.Pool
}

// NewKataRepository creates a new KataRepository
func NewKataRepository(db *pgxpool.Pool) *KataRepository {
	return &KataRepository{db: db}
}

// ListKatas returns published katas matching filter, newest first.
// filter.Language is compared against the lower-cased language list.
func (r *KataRepository) ListKatas(ctx context.Context, filter domain.KataFilter) ([]domain.Kata, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT k.kata_id, k.title, k.description, k.kyu, k.languages, k.tags, k.published, k.created_at,
		       u.user_id, u.display_name
		FROM katas k
		LEFT JOIN users u ON u.user_id = k.creator_id
		WHERE k.published = TRUE`)

	args := []interface{}{}
	argNum := 1

	if filter.Kyu != nil {
		fmt.Fprintf(&queryBuilder, " AND k.kyu = $%d", argNum)
		args = append(args, *filter.Kyu)
		argNum++
	}

	if filter.Language != "" {
		fmt.Fprintf(&queryBuilder, " AND EXISTS (SELECT 1 FROM unnest(k.languages) AS lang WHERE lower(lang) = $%d)", argNum)
		args = append(args, filter.Language)
		argNum++
	}

	if filter.Search != "" {
		fmt.Fprintf(&queryBuilder, " AND (k.title ILIKE $%d OR k.description ILIKE $%d)", argNum, argNum)
		args = append(args, likePattern(filter.Search))
	}

	queryBuilder.WriteString(" ORDER BY k.created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryKatas, err)
	}
	defer rows.Close()

	katas := []domain.Kata{}
	for rows.Next() {
		var kata domain.Kata
		var creatorID, creatorName *string
		err := rows.Scan(
			&kata.ID,
			&kata.Title,
			&kata.Description,
			&kata.Kyu,
			&kata.Languages,
			&kata.Tags,
			&kata.Published,
			&kata.CreatedAt,
			&creatorID,
			&creatorName,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanKata, err)
		}
		kata.Creator = toCreator(creatorID, creatorName)
		katas = append(katas, kata)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return katas, nil
}

// GetKata returns one kata with its visible test cases in display order
func (r *KataRepository) GetKata(ctx context.Context, id uuid.UUID) (*domain.Kata, error) {
	var kata domain.Kata
	var creatorID, creatorName *string
	err := r.db.QueryRow(ctx, `
		SELECT k.kata_id, k.title, k.description, k.kyu, k.initial_code, k.languages, k.tags, k.published, k.created_at,
		       u.user_id, u.display_name
		FROM katas k
		LEFT JOIN users u ON u.user_id = k.creator_id
		WHERE k.kata_id = $1
	`, id).Scan(
		&kata.ID,
		&kata.Title,
		&kata.Description,
		&kata.Kyu,
		&kata.InitialCode,
		&kata.Languages,
		&kata.Tags,
		&kata.Published,
		&kata.CreatedAt,
		&creatorID,
		&creatorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKataNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetKata, err)
	}
	kata.Creator = toCreator(creatorID, creatorName)

	rows, err := r.db.Query(ctx, `
		SELECT test_case_id, input, expected_output, is_hidden, sort_order
		FROM test_cases
		WHERE kata_id = $1 AND is_hidden = FALSE
		ORDER BY sort_order, test_case_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTestCases, err)
	}
	defer rows.Close()

	kata.TestCases = []domain.TestCase{}
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(&tc.ID, &tc.Input, &tc.ExpectedOutput, &tc.Hidden, &tc.Order); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTestCases, err)
		}
		kata.TestCases = append(kata.TestCases, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return &kata, nil
}

// UpsertKata inserts or replaces a kata and all of its test cases in one transaction.
// A zero ID is replaced by a new one.
func (r *KataRepository) UpsertKata(ctx context.Context, kata *domain.Kata) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var creatorID *string
	if kata.Creator != nil && kata.Creator.ID != "" {
		if err := ensureUser(ctx, tx, kata.Creator.ID, kata.Creator.Name); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEnsureUser, err)
		}
		creatorID = &kata.Creator.ID
	}

	if kata.ID == uuid.Nil {
		kata.ID = uuid.New()
	}
	languages := kata.Languages
	if languages == nil {
		languages = []string{}
	}
	tags := kata.Tags
	if tags == nil {
		tags = []string{}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO katas (kata_id, title, description, kyu, initial_code, languages, tags, published, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (kata_id) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    kyu = EXCLUDED.kyu,
		    initial_code = EXCLUDED.initial_code,
		    languages = EXCLUDED.languages,
		    tags = EXCLUDED.tags,
		    published = EXCLUDED.published,
		    creator_id = EXCLUDED.creator_id
		RETURNING created_at
	`, kata.ID, kata.Title, kata.Description, kata.Kyu, kata.InitialCode, languages, tags, kata.Published, creatorID).
		Scan(&kata.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertKata, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM test_cases WHERE kata_id = $1`, kata.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearTestCases, err)
	}

	for i := range kata.TestCases {
		tc := &kata.TestCases[i]
		if tc.ID == uuid.Nil {
			tc.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO test_cases (test_case_id, kata_id, input, expected_output, is_hidden, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, tc.ID, kata.ID, tc.Input, tc.ExpectedOutput, tc.Hidden, tc.Order)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTestCase, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func toCreator(id, name *string) *domain.Creator {
	if id == nil {
		return nil
	}
	creator := &domain.Creator{ID: *id}
	if name != nil {
		creator.Name = *name
	}
	return creator
}
