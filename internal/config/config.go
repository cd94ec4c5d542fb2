package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultFile            = "config.yaml"
	DefaultListenAddr      = ":8080"
	DefaultLogLevel        = "info"
	DefaultThreshold       = 0.75
	DefaultCacheSize       = 1024
	DefaultReadTimeout     = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxSampleBytes  = 10 << 20

	DefaultMongoDatabase   = "voiceauth"
	DefaultMongoCollection = "voice_templates"
	DefaultMongoTimeout    = 10 * time.Second

	DefaultTranscriptionModel   = "whisper-1"
	DefaultTranscriptionTimeout = 10 * time.Second
	DefaultTokenTTL             = 15 * time.Minute
	DefaultTokenIssuer          = "go-voice-auth"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendMongo  = "mongo"
)

// ServerConfig stores HTTP listener settings.
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// MaxSampleBytes bounds the decoded audio payload of a single request.
	MaxSampleBytes int `yaml:"max_sample_bytes"`
}

// VerificationConfig stores scoring policy.
type VerificationConfig struct {
	Threshold float64 `yaml:"threshold"`
	// CacheSize is the template read cache capacity. Negative disables the
	// cache, which is required when several replicas share one store.
	CacheSize int `yaml:"cache_size"`
}

// BadgerConfig stores embedded store settings.
type BadgerConfig struct {
	Dir      string `yaml:"dir"`
	InMemory bool   `yaml:"in_memory"`
}

// MongoConfig stores MongoDB store settings.
type MongoConfig struct {
	URI        string        `yaml:"uri"`
	Database   string        `yaml:"database"`
	Collection string        `yaml:"collection"`
	Timeout    time.Duration `yaml:"timeout"`
}

// StoreConfig selects and configures the template store.
type StoreConfig struct {
	Backend string       `yaml:"backend"`
	Badger  BadgerConfig `yaml:"badger"`
	Mongo   MongoConfig  `yaml:"mongo"`
}

// TranscriptionConfig stores OpenAI speech-to-text settings. Transcription
// is disabled when APIKey is empty.
type TranscriptionConfig struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	// Timeout bounds a single transcription request.
	Timeout time.Duration `yaml:"timeout"`
}

// AuthConfig stores login token settings. Tokens are not issued when
// JWTSecret is empty.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// Config stores the application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Verification  VerificationConfig  `yaml:"verification"`
	Store         StoreConfig         `yaml:"store"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Auth          AuthConfig          `yaml:"auth"`
	LogLevel      string              `yaml:"log_level"`
}

// Validate applies defaults and rejects out-of-range values.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.MaxSampleBytes <= 0 {
		c.Server.MaxSampleBytes = DefaultMaxSampleBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if c.Verification.Threshold == 0 {
		c.Verification.Threshold = DefaultThreshold
	}
	if c.Verification.Threshold < 0 || c.Verification.Threshold > 1 {
		return fmt.Errorf("config: verification.threshold must be within (0, 1], got %v", c.Verification.Threshold)
	}
	if c.Verification.CacheSize == 0 {
		c.Verification.CacheSize = DefaultCacheSize
	}

	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case "":
		c.Store.Backend = BackendMemory
	case BackendMemory:
	case BackendBadger:
		if !c.Store.Badger.InMemory && c.Store.Badger.Dir == "" {
			return fmt.Errorf("config: store.badger.dir is required unless in_memory is set")
		}
	case BackendMongo:
		if c.Store.Mongo.URI == "" {
			return fmt.Errorf("config: store.mongo.uri is required for the mongo backend")
		}
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Mongo.Database == "" {
		c.Store.Mongo.Database = DefaultMongoDatabase
	}
	if c.Store.Mongo.Collection == "" {
		c.Store.Mongo.Collection = DefaultMongoCollection
	}
	if c.Store.Mongo.Timeout <= 0 {
		c.Store.Mongo.Timeout = DefaultMongoTimeout
	}

	if c.Transcription.Model == "" {
		c.Transcription.Model = DefaultTranscriptionModel
	}
	if c.Transcription.Timeout <= 0 {
		c.Transcription.Timeout = DefaultTranscriptionTimeout
	}

	if c.Auth.Issuer == "" {
		c.Auth.Issuer = DefaultTokenIssuer
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = DefaultTokenTTL
	}

	return nil
}
