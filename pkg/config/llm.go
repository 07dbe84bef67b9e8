package config

import "time"

// LLMConfig holds the model sidecar connection settings. The sidecar is
// optional: with no address configured the engine runs every turn in
// degraded mode and reports fall back to plain templates.
type LLMConfig struct {
	// Addr is the gRPC address of the model sidecar (host:port).
	// Empty disables the LLM entirely.
	Addr string `yaml:"addr"`

	// Model is the model identifier passed on every request.
	Model string `yaml:"model"`

	// MaxAttempts is the total number of tries per unary call,
	// including the first.
	MaxAttempts int `yaml:"max_attempts"`

	// PerCallTimeout bounds each individual attempt.
	PerCallTimeout time.Duration `yaml:"per_call_timeout"`

	// BaseBackoff doubles per attempt up to MaxBackoff.
	BaseBackoff time.Duration `yaml:"base_backoff"`
	MaxBackoff  time.Duration `yaml:"max_backoff"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:          "default",
		MaxAttempts:    3,
		PerCallTimeout: 30 * time.Second,
		BaseBackoff:    time.Second,
		MaxBackoff:     10 * time.Second,
	}
}

// Enabled reports whether a sidecar address is configured.
func (c *LLMConfig) Enabled() bool {
	return c.Addr != ""
}
