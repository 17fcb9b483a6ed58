package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileName is the active log file inside LOG_DIR; rotated files get a timestamp suffix
	LogFileName = "codinho.log"

	// LogFileMaxSizeMB is the size at which the active log file is rotated
	LogFileMaxSizeMB = 50

	// LogFileMaxBackups is the number of rotated files to keep
	LogFileMaxBackups = 9

	// LogFileMaxAgeDays drops rotated files older than this
	LogFileMaxAgeDays = 30
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCodinho     = "Starting Codinho"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
)

// =============================================================================
// Storage
// =============================================================================

// Log messages for storage initialization
const (
	LogMsgUsingMemoryStorage   = "Using in-memory storage, data is lost on restart"
	LogMsgUsingPostgresStorage = "Using PostgreSQL storage"
	LogMsgSyncingKataCatalog   = "Syncing kata catalog from JSON config..."
	LogMsgKataCatalogSynced    = "Kata catalog synced successfully"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedSyncKatas      = "failed to sync kata catalog"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Auth
// =============================================================================

const (
	LogMsgAuthInitialized   = "Authentication initialized"
	LogMsgNoopAuthActive    = "AUTH_MODE=noop: bearer tokens are trusted as user IDs"
	ErrMsgFailedCreateVerif = "failed to create token verifier"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second

	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgVerifierCloseFailed   = "Token verifier close failed"
	LogMsgDatabaseClosed        = "Database pool closed"
	LogMsgServiceShutdownFailed = " service shutdown failed"

	// Service names for shutdown logging
	ServiceNameGamification = "gamification"
)
