// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"REMOTE_ADDRESS":         "https://api.example.com",
		"REMOTE_API_KEY":         "device_key",
		"REMOTE_USER_ID":         "u1",
		"REMOTE_REQUEST_TIMEOUT": "15s",

		"LOG_TO_FILE": "true",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "boardsync.db",
		"STORAGE_QUEUE_FILE":      "/var/lib/boardsync/queue.json",

		"SYNC_DEBOUNCE_WINDOW":    "500ms",
		"SYNC_MAX_RETRY_ATTEMPTS": "3",
		"SYNC_RETRY_BACKOFF_BASE": "1s",
		"SYNC_CHILD_BATCH_SIZE":   "50",
		"SYNC_CLEANUP_AGE":        "720h",

		"WORKERS_SYNC_INTERVAL":    "5m",
		"WORKERS_CLEANUP_INTERVAL": "12h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "device_key", cfg.Remote.APIKey)
	assert.Equal(t, "u1", cfg.Remote.UserID)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.True(t, cfg.LogToFile)

	assert.Equal(t, "boardsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/boardsync/queue.json", cfg.Storage.QueueFilePath)

	assert.Equal(t, 500*time.Millisecond, cfg.Sync.DebounceWindow)
	assert.Equal(t, 3, cfg.Sync.MaxRetryAttempts)
	assert.Equal(t, time.Second, cfg.Sync.RetryBackoffBase)
	assert.Equal(t, 50, cfg.Sync.ChildBatchSize)
	assert.Equal(t, 720*time.Hour, cfg.Sync.CleanupAge)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 12*time.Hour, cfg.Workers.CleanupInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"REMOTE_ADDRESS":          "https://api.example.com",
		"SYNC_MAX_RETRY_ATTEMPTS": "5",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Remote partially filled
	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Empty(t, cfg.Remote.APIKey)
	assert.Zero(t, cfg.Remote.RequestTimeout)

	// Sync partially filled
	assert.Equal(t, 5, cfg.Sync.MaxRetryAttempts)
	assert.Zero(t, cfg.Sync.DebounceWindow)

	// Others untouched
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// All nested fields are non-pointer values, so "empty" state is
	// represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, Remote{}, cfg.Remote)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Sync{}, cfg.Sync)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SYNC_DEBOUNCE_WINDOW": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"REMOTE_ADDRESS",
		"REMOTE_API_KEY",
		"REMOTE_USER_ID",
		"REMOTE_REQUEST_TIMEOUT",

		"LOG_TO_FILE",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_QUEUE_FILE",

		"SYNC_DEBOUNCE_WINDOW",
		"SYNC_MAX_RETRY_ATTEMPTS",
		"SYNC_RETRY_BACKOFF_BASE",
		"SYNC_CHILD_BATCH_SIZE",
		"SYNC_CLEANUP_AGE",

		"WORKERS_SYNC_INTERVAL",
		"WORKERS_CLEANUP_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
