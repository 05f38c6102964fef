// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// boardsync daemon. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the remote backend endpoint settings used by the
	// row-oriented HTTP adapter.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local persistence backends: the
	// embedded SQLite database and the durable queue file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds tuning knobs for the synchronization services: debounce
	// window, retry policy, batch sizes, and tombstone cleanup age.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogToFile directs daemon logs to a file next to the executable
	// instead of stdout, for installs where stdout is not visible.
	// Env: LOG_TO_FILE
	LogToFile bool `env:"LOG_TO_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds connection settings for the multi-tenant remote backend.
type Remote struct {
	// BaseURL is the base address of the remote row API
	// (e.g. "https://api.example.com").
	// Env: REMOTE_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// APIKey authenticates the device against the remote backend. An empty
	// key means the backend is not configured; all remote operations then
	// short-circuit with a failed result.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// UserID is the backend identity whose boards this device syncs.
	// Membership fetches are scoped to this user.
	// Env: REMOTE_USER_ID
	UserID string `env:"USER_ID"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`

	// QueueFilePath is the path of the durable sync-queue file. When the
	// file cannot be written (e.g. sandboxed environments) the queue falls
	// back to in-memory storage and logs the downgrade once.
	// Env: STORAGE_QUEUE_FILE
	QueueFilePath string `env:"QUEUE_FILE"`
}

// DB holds connection settings for the embedded SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "boardsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds tuning parameters for the core synchronization services.
type Sync struct {
	// DebounceWindow is how long an enqueued change waits for follow-up
	// writes to the same record before it is persisted to the queue.
	// Env: SYNC_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// MaxRetryAttempts bounds how many times a failing outbound change is
	// retried before it is abandoned and recorded in the audit log.
	// Env: SYNC_MAX_RETRY_ATTEMPTS
	MaxRetryAttempts int `env:"MAX_RETRY_ATTEMPTS"`

	// RetryBackoffBase is the first retry delay; each subsequent retry
	// doubles it (1s, 2s, 4s with the default).
	// Env: SYNC_RETRY_BACKOFF_BASE
	RetryBackoffBase time.Duration `env:"RETRY_BACKOFF_BASE"`

	// ChildBatchSize bounds how many parent remote ids are packed into a
	// single child-fetch request during bootstrap.
	// Env: SYNC_CHILD_BATCH_SIZE
	ChildBatchSize int `env:"CHILD_BATCH_SIZE"`

	// CleanupAge is how old a tombstone must be before the cleanup worker
	// permanently deletes it (e.g. "720h" for 30 days).
	// Env: SYNC_CLEANUP_AGE
	CleanupAge time.Duration `env:"CLEANUP_AGE"`
}

// Workers contains background worker settings.
type Workers struct {
	// SyncInterval defines how often the background sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// CleanupInterval defines how often the tombstone cleanup job runs.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and the optional JSON file, in that order of
// precedence (earlier sources win on conflict thanks to mergo's
// first-non-zero semantics).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
