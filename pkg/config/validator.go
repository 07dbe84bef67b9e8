package config

import "fmt"

// validate performs sanity checks on the resolved configuration.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return NewValidationError("server", "port", fmt.Sprintf("must be 1-65535, got %d", cfg.Server.Port))
	}

	q := cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", "must be at least 1")
	}
	if q.MaxConcurrentJobs < q.WorkerCount {
		return NewValidationError("queue", "max_concurrent_jobs",
			fmt.Sprintf("must be >= worker_count (%d)", q.WorkerCount))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", "must be positive")
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", "must be positive")
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Sprintf("must exceed heartbeat_interval (%v)", q.HeartbeatInterval))
	}

	if cfg.LLM.Enabled() && cfg.LLM.MaxAttempts < 1 {
		return NewValidationError("llm", "max_attempts", "must be at least 1")
	}

	if cfg.Storage.MaxUploadBytes <= 0 {
		return NewValidationError("storage", "max_upload_bytes", "must be positive")
	}

	if cfg.Retention.CaseRetentionDays < 1 {
		return NewValidationError("retention", "case_retention_days", "must be at least 1")
	}

	if cfg.Engine != nil {
		s := cfg.Engine.Settings()
		if s.SupportingEvidenceStep <= 0 || s.SupportingEvidenceStep > 1 {
			return NewValidationError("engine", "supporting_evidence_step", "must be in (0, 1]")
		}
		if s.RefutingEvidenceStep <= 0 || s.RefutingEvidenceStep > 1 {
			return NewValidationError("engine", "refuting_evidence_step", "must be in (0, 1]")
		}
		if s.MemoryHotCapacity < 1 || s.MemoryWarmCapacity < 1 || s.MemoryColdCapacity < 1 {
			return NewValidationError("engine", "memory capacities", "must be at least 1")
		}
	}

	return nil
}
