package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// InquestYAMLConfig represents the complete inquest.yaml file structure.
type InquestYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	LLM       *LLMConfig       `yaml:"llm"`
	Queue     *QueueConfig     `yaml:"queue"`
	Engine    *EngineConfig    `yaml:"engine"`
	Storage   *StorageConfig   `yaml:"storage"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load inquest.yaml from configDir (missing file = all defaults)
//  2. Expand environment variables
//  3. Merge user-provided values over built-in defaults
//  4. Validate the result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"server_port", cfg.Server.Port,
		"llm_enabled", cfg.LLM.Enabled(),
		"queue_workers", cfg.Queue.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(configDir string) (*Config, error) {
	var fileCfg InquestYAMLConfig
	if err := loadYAML(configDir, "inquest.yaml", &fileCfg); err != nil {
		return nil, NewLoadError("inquest.yaml", err)
	}

	// Start with defaults, then merge user config on top to preserve
	// unset defaults (non-zero values override).
	server := DefaultServerConfig()
	llm := DefaultLLMConfig()
	queue := DefaultQueueConfig()
	storage := DefaultStorageConfig()
	retention := DefaultRetentionConfig()

	if fileCfg.Server != nil {
		if err := mergo.Merge(server, fileCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	if fileCfg.LLM != nil {
		if err := mergo.Merge(llm, fileCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	if fileCfg.Queue != nil {
		if err := mergo.Merge(queue, fileCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if fileCfg.Storage != nil {
		if err := mergo.Merge(storage, fileCfg.Storage, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge storage config: %w", err)
		}
	}
	if fileCfg.Retention != nil {
		if err := mergo.Merge(retention, fileCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir: configDir,
		Server:    server,
		LLM:       llm,
		Queue:     queue,
		Engine:    fileCfg.Engine,
		Storage:   storage,
		Retention: retention,
	}, nil
}

// loadYAML reads and parses one YAML file. A missing file is not an
// error: the caller falls back to built-in defaults.
func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Configuration file not found, using defaults", "path", path)
			return nil
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, allowing the YAML parser to handle the content (or fail
	// with a clearer error message).
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
