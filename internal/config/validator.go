package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"JWT_SECRET",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range requiredFor(os.Getenv("STORAGE_BACKEND"), os.Getenv("AUTH_MODE")) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// requiredFor narrows RequiredEnvVars to the selected backends.
// The memory store needs no database and only hs256 needs a shared secret.
func requiredFor(storage, authMode string) []string {
	storage = strings.ToLower(storage)
	authMode = strings.ToLower(authMode)

	var out []string
	for _, envVar := range RequiredEnvVars {
		if strings.HasPrefix(envVar, "DB_") && storage == StorageBackendMemory {
			continue
		}
		if envVar == "JWT_SECRET" && authMode != "" && authMode != AuthModeHS256 {
			continue
		}
		out = append(out, envVar)
	}
	if authMode == AuthModeJWKS {
		out = append(out, "JWKS_URL")
	}
	return out
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("JWT_SECRET") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if strings.ToLower(os.Getenv("AUTH_MODE")) == AuthModeNoop && isProduction(os.Getenv("ENVIRONMENT")) {
		warnings = append(warnings, "AUTH_MODE=noop trusts any bearer token - never use it in production")
	}

	return warnings, nil
}
