// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Kept permissive deliberately: an empty remote address is a legal state
// (backend not configured, sync short-circuits), so only the daemon view
// enforces hard requirements.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *DaemonConfig) validate() error {
	// An address without the user to sync for is a misconfiguration, not an
	// unconfigured backend.
	if cfg.Remote.BaseURL != "" && cfg.Remote.UserID == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.MaxRetryAttempts < 0 || cfg.Sync.ChildBatchSize < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
