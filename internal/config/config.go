package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Limits        LimitsConfig        `yaml:"limits"`
	Extraction    ExtractionConfig    `yaml:"extraction"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Storage       StorageConfig       `yaml:"storage"`
	Queue         QueueConfig         `yaml:"queue"`
	Media         MediaConfig         `yaml:"media"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"33554432"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token validation settings. Token issuance is delegated to
// the external auth provider; this service only validates.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"casetrail"`
}

// LimitsConfig holds the free-tier usage caps enforced by the usage gate.
// Paid and alpha tiers are unlimited.
type LimitsConfig struct {
	FreeEntries  int `yaml:"free_entries"  env:"LIMITS_FREE_ENTRIES"  env-default:"30"`
	FreeEvidence int `yaml:"free_evidence" env:"LIMITS_FREE_EVIDENCE" env-default:"50"`
}

// ExtractionConfig holds the extraction model settings.
type ExtractionConfig struct {
	APIKey    string        `yaml:"api_key"    env:"EXTRACTION_API_KEY"    env-required:"true"`
	Model     string        `yaml:"model"      env:"EXTRACTION_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"EXTRACTION_MAX_TOKENS" env-default:"4096"`
	Timeout   time.Duration `yaml:"timeout"    env:"EXTRACTION_TIMEOUT"    env-default:"90s"`
}

// TranscriptionConfig holds the speech-to-text collaborator settings.
type TranscriptionConfig struct {
	APIKey  string        `yaml:"api_key"  env:"TRANSCRIPTION_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"TRANSCRIPTION_BASE_URL" env-default:"https://api.deepgram.com/v1/listen"`
	Timeout time.Duration `yaml:"timeout"  env:"TRANSCRIPTION_TIMEOUT"  env-default:"60s"`
}

// StorageConfig holds the evidence file store settings.
type StorageConfig struct {
	Root         string        `yaml:"root"           env:"STORAGE_ROOT"           env-default:"./data/evidence"`
	SignedURLTTL time.Duration `yaml:"signed_url_ttl" env:"STORAGE_SIGNED_URL_TTL" env-default:"15m"`
}

// QueueConfig holds async job queue settings.
type QueueConfig struct {
	CaptureTopic  string `yaml:"capture_topic"  env:"QUEUE_CAPTURE_TOPIC"  env-default:"capture.submitted"`
	BufferSize    int64  `yaml:"buffer_size"    env:"QUEUE_BUFFER_SIZE"    env-default:"64"`
	WorkerPersist bool   `yaml:"worker_persist" env:"QUEUE_WORKER_PERSIST" env-default:"false"`
}

// MediaConfig holds capture media validation settings.
type MediaConfig struct {
	MaxImageBytes int64 `yaml:"max_image_bytes" env:"MEDIA_MAX_IMAGE_BYTES" env-default:"10485760"`
	MaxAudioBytes int64 `yaml:"max_audio_bytes" env:"MEDIA_MAX_AUDIO_BYTES" env-default:"26214400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
