package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Remote struct {
		BaseURL        string   `json:"address"`
		APIKey         string   `json:"api_key"`
		UserID         string   `json:"user_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		QueueFilePath string `json:"queue_file"`
	} `json:"storage,omitempty"`

	Sync struct {
		DebounceWindow   Duration `json:"debounce_window"`
		MaxRetryAttempts int      `json:"max_retry_attempts"`
		RetryBackoffBase Duration `json:"retry_backoff_base"`
		ChildBatchSize   int      `json:"child_batch_size"`
		CleanupAge       Duration `json:"cleanup_age"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"workers,omitempty"`

	LogToFile bool `json:"log_to_file"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			APIKey:         jsonCfg.Remote.APIKey,
			UserID:         jsonCfg.Remote.UserID,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			QueueFilePath: jsonCfg.Storage.QueueFilePath,
		},
		Sync: Sync{
			DebounceWindow:   time.Duration(jsonCfg.Sync.DebounceWindow),
			MaxRetryAttempts: jsonCfg.Sync.MaxRetryAttempts,
			RetryBackoffBase: time.Duration(jsonCfg.Sync.RetryBackoffBase),
			ChildBatchSize:   jsonCfg.Sync.ChildBatchSize,
			CleanupAge:       time.Duration(jsonCfg.Sync.CleanupAge),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
		},
		LogToFile:    jsonCfg.LogToFile,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
