package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// KataRepository keeps the kata catalog in memory
type KataRepository struct {
	mu    sync.RWMutex
	katas map[uuid.UUID]domain.Kata
	now   func() time.Time
}

// NewKataRepository creates an empty catalog
func NewKataRepository() *KataRepository {
	return &KataRepository{katas: make(map[uuid.UUID]domain.Kata), now: time.Now}
}

// ListKatas returns published katas matching filter, newest first
func (r *KataRepository) ListKatas(_ context.Context, filter domain.KataFilter) ([]domain.Kata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	katas := []domain.Kata{}
	for _, kata := range r.katas {
		if !kata.Published {
			continue
		}
		if filter.Kyu != nil && kata.Kyu != *filter.Kyu {
			continue
		}
		if filter.Language != "" && !slices.ContainsFunc(kata.Languages, func(lang string) bool {
			return strings.ToLower(lang) == filter.Language
		}) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(kata.Title), search) &&
			!strings.Contains(strings.ToLower(kata.Description), search) {
			continue
		}

		kata.InitialCode = ""
		kata.TestCases = nil
		katas = append(katas, cloneKata(kata))
	}

	sort.Slice(katas, func(i, j int) bool {
		return katas[i].CreatedAt.After(katas[j].CreatedAt)
	})
	return katas, nil
}

// GetKata returns one kata with its visible test cases in display order
func (r *KataRepository) GetKata(_ context.Context, id uuid.UUID) (*domain.Kata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.katas[id]
	if !ok {
		return nil, domain.ErrKataNotFound
	}

	kata := cloneKata(stored)
	visible := []domain.TestCase{}
	for _, tc := range kata.TestCases {
		if !tc.Hidden {
			visible = append(visible, tc)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Order < visible[j].Order })
	kata.TestCases = visible
	return &kata, nil
}

// UpsertKata inserts or replaces a kata. A zero ID is replaced by a new one.
func (r *KataRepository) UpsertKata(_ context.Context, kata *domain.Kata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if kata.ID == uuid.Nil {
		kata.ID = uuid.New()
	}
	for i := range kata.TestCases {
		if kata.TestCases[i].ID == uuid.Nil {
			kata.TestCases[i].ID = uuid.New()
		}
	}

	if existing, ok := r.katas[kata.ID]; ok {
		kata.CreatedAt = existing.CreatedAt
	} else {
		kata.CreatedAt = r.now()
	}
	r.katas[kata.ID] = cloneKata(*kata)
	return nil
}

func cloneKata(k domain.Kata) domain.Kata {
	k.Languages = slices.Clone(k.Languages)
	k.Tags = slices.Clone(k.Tags)
	k.TestCases = slices.Clone(k.TestCases)
	if k.Creator != nil {
		creator := *k.Creator
		k.Creator = &creator
	}
	return k
}

type submissionKey struct {
	userID   string
	kataID   uuid.UUID
	language string
}

// SubmissionRepository keeps solutions in memory. katas is consulted so that
// solutions to unknown katas fail the way a foreign key would.
type SubmissionRepository struct {
	mu          sync.RWMutex
	katas       *KataRepository
	submissions map[uuid.UUID]domain.Submission
	unique      map[submissionKey]uuid.UUID
	now         func() time.Time
}

// NewSubmissionRepository creates an empty SubmissionRepository backed by katas
func NewSubmissionRepository(katas *KataRepository) *SubmissionRepository {
	return &SubmissionRepository{
		katas:       katas,
		submissions: make(map[uuid.UUID]domain.Submission),
		unique:      make(map[submissionKey]uuid.UUID),
		now:         time.Now,
	}
}

// CreateSubmission stores a new solution
func (r *SubmissionRepository) CreateSubmission(_ context.Context, sub *domain.Submission) error {
	r.katas.mu.RLock()
	_, known := r.katas.katas[sub.KataID]
	r.katas.mu.RUnlock()
	if !known {
		return domain.ErrKataNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := submissionKey{userID: sub.UserID, kataID: sub.KataID, language: sub.Language}
	if _, dup := r.unique[key]; dup {
		return domain.ErrDuplicateSubmission
	}

	if sub.Status == "" {
		sub.Status = domain.SubmissionStatusProcessing
	}
	sub.ID = uuid.New()
	sub.SubmittedAt = r.now()

	r.submissions[sub.ID] = *sub
	r.unique[key] = sub.ID
	return nil
}

// GetSubmission returns one solution by ID
func (r *SubmissionRepository) GetSubmission(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.submissions[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return &sub, nil
}

// GetLatestSubmission returns the user's most recent solution for a kata, or nil
func (r *SubmissionRepository) GetLatestSubmission(_ context.Context, userID string, kataID uuid.UUID) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.Submission
	for _, sub := range r.submissions {
		if sub.UserID != userID || sub.KataID != kataID {
			continue
		}
		if latest == nil || sub.SubmittedAt.After(latest.SubmittedAt) {
			s := sub
			latest = &s
		}
	}
	return latest, nil
}
