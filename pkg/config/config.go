// Package config loads and validates the inquest.yaml configuration
// file, layering user-provided values over built-in defaults.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// HTTP server settings
	Server *ServerConfig

	// LLM sidecar connection and retry policy
	LLM *LLMConfig

	// Report queue and worker pool configuration
	Queue *QueueConfig

	// Investigation engine threshold overrides
	Engine *EngineConfig

	// Evidence file storage
	Storage *StorageConfig

	// Data retention and cleanup
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
