package config

// StorageConfig holds evidence file storage settings.
type StorageConfig struct {
	// EvidenceDir is the local directory for uploaded evidence files.
	EvidenceDir string `yaml:"evidence_dir"`

	// MaxUploadBytes caps the size of a single evidence upload.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		EvidenceDir:    "data/evidence",
		MaxUploadBytes: 10 << 20, // 10 MiB
	}
}
