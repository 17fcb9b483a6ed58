package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kyu difficulty bounds (8 kyu is the easiest, 1 kyu the hardest)
const (
	MinKyu = 1
	MaxKyu = 8
)

// SubmissionStatus tracks a solution through judging
type SubmissionStatus string

const (
	SubmissionStatusProcessing SubmissionStatus = "processing"
	SubmissionStatusAccepted   SubmissionStatus = "accepted"
	SubmissionStatusRejected   SubmissionStatus = "rejected"
	SubmissionStatusError      SubmissionStatus = "error"
)

// Creator is the public view of the user who authored a kata
type Creator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TestCase is one input/expected-output pair of a kata
type TestCase struct {
	ID             uuid.UUID `json:"id"`
	Input          string    `json:"input"`
	ExpectedOutput string    `json:"expected_output"`
	Hidden         bool      `json:"is_hidden"`
	Order          int       `json:"order"`
}

// Kata is a coding exercise in the catalog
type Kata struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kyu         int        `json:"kyu"`
	InitialCode string     `json:"initial_code,omitempty"`
	Languages   []string   `json:"languages"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	Creator     *Creator   `json:"creator,omitempty"`
	TestCases   []TestCase `json:"test_cases,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// KataFilter narrows a catalog listing. Zero values mean "no filter".
type KataFilter struct {
	Kyu      *int
	Language string
	Search   string
}

// Submission is a user's solution attempt for a kata
type Submission struct {
	ID          uuid.UUID        `json:"id"`
	UserID      string           `json:"user_id"`
	KataID      uuid.UUID        `json:"kata_id"`
	Language    string           `json:"language"`
	Code        string           `json:"code"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// KataDetail is a kata together with the viewer's latest solution, if any
type KataDetail struct {
	Kata
	UserSolution *Submission `json:"user_solution"`
}
