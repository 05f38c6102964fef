package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote backend base URL
//	-api-key remote backend API key
//	-user-id backend user whose boards this device syncs
//	-d local database path
//	-queue-file durable queue file path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-debounce-window queue debounce window (e.g., "500ms")
//	-max-retry-attempts outbound change retry bound
//	-retry-backoff-base first retry delay (doubles per attempt)
//	-child-batch-size bootstrap child fetch batch size
//	-cleanup-age tombstone age before permanent deletion (e.g., "720h")
//	-sync-interval background sync period
//	-cleanup-interval background cleanup period
//	-log-to-file write logs to a file next to the executable
func ParseFlags() *StructuredConfig {
	var remoteAddress string
	var apiKey string
	var userID string
	var databaseDSN string
	var queueFilePath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var debounceWindow time.Duration
	var maxRetryAttempts int
	var retryBackoffBase time.Duration
	var childBatchSize int
	var cleanupAge time.Duration
	var syncInterval time.Duration
	var cleanupInterval time.Duration
	var logToFile bool

	flag.StringVar(&remoteAddress, "a", "", "Remote backend base URL")
	flag.StringVar(&apiKey, "api-key", "", "Remote backend API key")
	flag.StringVar(&userID, "user-id", "", "Backend user whose boards this device syncs")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&queueFilePath, "queue-file", "", "Durable queue file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Queue debounce window (e.g., 500ms)")
	flag.IntVar(&maxRetryAttempts, "max-retry-attempts", 0, "Outbound change retry bound")
	flag.DurationVar(&retryBackoffBase, "retry-backoff-base", 0, "First retry delay (doubles per attempt)")
	flag.IntVar(&childBatchSize, "child-batch-size", 0, "Bootstrap child fetch batch size")
	flag.DurationVar(&cleanupAge, "cleanup-age", 0, "Tombstone age before permanent deletion (e.g., 720h)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Background cleanup period")
	flag.BoolVar(&logToFile, "log-to-file", false, "Write logs to a file next to the executable")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteAddress,
			APIKey:         apiKey,
			UserID:         userID,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			QueueFilePath: queueFilePath,
		},
		Sync: Sync{
			DebounceWindow:   debounceWindow,
			MaxRetryAttempts: maxRetryAttempts,
			RetryBackoffBase: retryBackoffBase,
			ChildBatchSize:   childBatchSize,
			CleanupAge:       cleanupAge,
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			CleanupInterval: cleanupInterval,
		},
		LogToFile:    logToFile,
		JSONFilePath: jsonConfigPath,
	}
}
