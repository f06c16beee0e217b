package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Limits.FreeEntries < 0 {
		return fmt.Errorf("limits.free_entries must be >= 0 (got %d)", c.Limits.FreeEntries)
	}
	if c.Limits.FreeEvidence < 0 {
		return fmt.Errorf("limits.free_evidence must be >= 0 (got %d)", c.Limits.FreeEvidence)
	}

	if c.Extraction.Model == "" {
		return fmt.Errorf("extraction.model must not be empty")
	}
	if c.Extraction.MaxTokens <= 0 {
		return fmt.Errorf("extraction.max_tokens must be > 0 (got %d)", c.Extraction.MaxTokens)
	}

	if c.Media.MaxImageBytes <= 0 {
		return fmt.Errorf("media.max_image_bytes must be > 0 (got %d)", c.Media.MaxImageBytes)
	}
	if c.Media.MaxAudioBytes <= 0 {
		return fmt.Errorf("media.max_audio_bytes must be > 0 (got %d)", c.Media.MaxAudioBytes)
	}

	if c.Queue.CaptureTopic == "" {
		return fmt.Errorf("queue.capture_topic must not be empty")
	}

	return nil
}
