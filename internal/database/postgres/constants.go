package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToEnsureUser = "failed to ensure user"
)

// Error Messages - KV Operations
const (
	ErrMsgFailedToGetEntry = "failed to get entry"
	ErrMsgFailedToSetEntry = "failed to set entry"
)

// Error Messages - Kata Operations
const (
	ErrMsgFailedToQueryKatas     = "failed to query katas"
	ErrMsgFailedToScanKata       = "failed to scan kata"
	ErrMsgFailedToGetKata        = "failed to get kata"
	ErrMsgFailedToQueryTestCases = "failed to query test cases"
	ErrMsgFailedToUpsertKata     = "failed to upsert kata"
	ErrMsgFailedToClearTestCases = "failed to clear test cases"
	ErrMsgFailedToInsertTestCase = "failed to insert test case"
	ErrMsgRowIteration           = "row iteration error"
)

// Error Messages - Submission Operations
const (
	ErrMsgFailedToInsertSubmission = "failed to insert submission"
	ErrMsgFailedToGetSubmission    = "failed to get submission"
)
