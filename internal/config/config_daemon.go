package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetDaemonConfig when the merged configuration leaves a
// knob unset.
const (
	DefaultDebounceWindow   = 500 * time.Millisecond
	DefaultMaxRetryAttempts = 3
	DefaultRetryBackoffBase = time.Second
	DefaultChildBatchSize   = 50
	DefaultCleanupAge       = 30 * 24 * time.Hour
	DefaultSyncInterval     = 5 * time.Minute
	DefaultCleanupInterval  = 12 * time.Hour
	DefaultRequestTimeout   = 15 * time.Second
)

// DaemonConfig is the validated, defaults-applied view of the configuration
// consumed by the daemon wiring. It is assembled from [StructuredConfig].
type DaemonConfig struct {
	// Remote contains remote backend endpoint settings.
	Remote Remote
	// Storage contains local persistence settings.
	Storage Storage
	// Sync contains synchronization tuning parameters.
	Sync Sync
	// Workers contains background job settings.
	Workers Workers
	// LogToFile selects the file-backed logger over stdout.
	LogToFile bool
}

// GetDaemonConfig builds and validates the daemon configuration from the
// merged structured configuration, filling unset knobs with defaults.
func GetDaemonConfig() (*DaemonConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	daemonCfg := &DaemonConfig{
		Remote:    cfg.Remote,
		Storage:   cfg.Storage,
		Sync:      cfg.Sync,
		Workers:   cfg.Workers,
		LogToFile: cfg.LogToFile,
	}
	daemonCfg.applyDefaults()

	return daemonCfg, daemonCfg.validate()
}

func (cfg *DaemonConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.DebounceWindow <= 0 {
		cfg.Sync.DebounceWindow = DefaultDebounceWindow
	}
	if cfg.Sync.MaxRetryAttempts <= 0 {
		cfg.Sync.MaxRetryAttempts = DefaultMaxRetryAttempts
	}
	if cfg.Sync.RetryBackoffBase <= 0 {
		cfg.Sync.RetryBackoffBase = DefaultRetryBackoffBase
	}
	if cfg.Sync.ChildBatchSize <= 0 {
		cfg.Sync.ChildBatchSize = DefaultChildBatchSize
	}
	if cfg.Sync.CleanupAge <= 0 {
		cfg.Sync.CleanupAge = DefaultCleanupAge
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.CleanupInterval <= 0 {
		cfg.Workers.CleanupInterval = DefaultCleanupInterval
	}
}
