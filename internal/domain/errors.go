package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Gamification errors
	ErrMsgNegativeXP = "xp amount must not be negative"

	// Bootcamp errors
	ErrMsgBootcampNotFound = "bootcamp not found"
	ErrMsgInvalidLevel     = "invalid bootcamp level"

	// Kata errors
	ErrMsgKataNotFound        = "kata not found"
	ErrMsgSubmissionNotFound  = "submission not found"
	ErrMsgDuplicateSubmission = "solution already submitted for this kata and language"
	ErrMsgUnsupportedLanguage = "unsupported language"

	// Auth errors
	ErrMsgUnauthorized = "unauthorized"

	// Storage errors
	ErrMsgCorruptEntry  = "corrupt persisted entry"
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNegativeXP = errors.New(ErrMsgNegativeXP)

	ErrBootcampNotFound = errors.New(ErrMsgBootcampNotFound)
	ErrInvalidLevel     = errors.New(ErrMsgInvalidLevel)

	ErrKataNotFound        = errors.New(ErrMsgKataNotFound)
	ErrSubmissionNotFound  = errors.New(ErrMsgSubmissionNotFound)
	ErrDuplicateSubmission = errors.New(ErrMsgDuplicateSubmission)
	ErrUnsupportedLanguage = errors.New(ErrMsgUnsupportedLanguage)

	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	ErrCorruptEntry  = errors.New(ErrMsgCorruptEntry)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
