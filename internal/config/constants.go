package config

import "time"

// ConfigPathKataCatalog is the starter catalog bundled with the service
const ConfigPathKataCatalog = "configs/katas/starter.json"

const DefaultServiceName = "codinho"

// Production environment names
const (
	EnvironmentProd       = "prod"
	EnvironmentProduction = "production"
)

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Auth modes
const (
	AuthModeHS256 = "hs256"
	AuthModeJWKS  = "jwks"
	AuthModeNoop  = "noop"
)

// Defaults
const (
	DefaultDBMaxConns          = 20
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
	DefaultLedgerCacheSize     = 1024
	DefaultLedgerCacheTTL      = 30 * time.Minute
	DefaultMaxRequestBodyBytes = 1 << 20
)
