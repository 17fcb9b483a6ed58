package handler

// User-facing error messages derived from domain errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError   = "Please sign in to continue."

	// Gamification messages
	ErrMsgNegativeXPError = "XP amount must not be negative"

	// Bootcamp messages
	ErrMsgBootcampNotFoundError = "Bootcamp not found"
	ErrMsgInvalidLevelError     = "That level does not exist in this bootcamp"

	// Kata messages
	ErrMsgKataNotFoundError        = "Kata not found"
	ErrMsgSubmissionNotFoundError  = "Submission not found"
	ErrMsgDuplicateSubmissionError = "You already submitted a solution for this kata in this language"
	ErrMsgUnsupportedLanguageError = "Unsupported language"
)

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// Success messages for API responses
const (
	MsgXPAwarded             = "XP awarded"
	MsgAchievementUnlocked   = "Achievement unlocked"
	MsgRewardCollected       = "Reward collected"
	MsgRecentCleared         = "Notification cleared"
	MsgLedgerReloaded        = "Progress reloaded"
	MsgBootcampUpdated       = "Bootcamp updated"
	MsgBootcampLevelComplete = "Level completed"
	MsgBootcampUnlocked      = "Bootcamp unlocked"
	MsgSubmissionReceived    = "Solution submitted successfully"
)
