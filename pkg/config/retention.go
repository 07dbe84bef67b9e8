package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// CaseRetentionDays is how many days to keep terminal cases before
	// soft-deleting them (setting deleted_at).
	CaseRetentionDays int `yaml:"case_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CaseRetentionDays: 365,
		CleanupInterval:   12 * time.Hour,
	}
}
