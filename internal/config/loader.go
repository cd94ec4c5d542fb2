package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Loader.
const (
	EnvConfigPath         = "VOICEAUTH_CONFIG"
	EnvListenAddr         = "VOICEAUTH_LISTEN_ADDR"
	EnvLogLevel           = "VOICEAUTH_LOG_LEVEL"
	EnvThreshold          = "VOICEAUTH_THRESHOLD"
	EnvStoreBackend       = "VOICEAUTH_STORE_BACKEND"
	EnvBadgerDir          = "VOICEAUTH_BADGER_DIR"
	EnvMongoURI           = "VOICEAUTH_MONGO_URI"
	EnvMongoDatabase      = "VOICEAUTH_MONGO_DATABASE"
	EnvJWTSecret          = "VOICEAUTH_JWT_SECRET"
	EnvOpenAIAPIKey       = "VOICEAUTH_OPENAI_API_KEY"
	EnvTranscriptionModel = "VOICEAUTH_TRANSCRIPTION_MODEL"
)

// Loader reads a YAML file and applies environment overrides. Tests can
// override Lookup and ReadFile to inject deterministic inputs.
type Loader struct {
	Lookup   func(string) (string, bool)
	ReadFile func(string) ([]byte, error)
}

// LoadConfig loads the configuration from the given file path.
func LoadConfig(filePath string) (*Config, error) {
	return Loader{}.Load(filePath)
}

// ResolvePath returns the config path from VOICEAUTH_CONFIG, or DefaultFile.
func ResolvePath(lookup func(string) (string, bool)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvConfigPath); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return DefaultFile
}

// Load parses filePath, applies VOICEAUTH_* overrides and validates the
// result. A missing DefaultFile is not an error so the service can be
// configured from the environment alone; any other missing path is.
func (l Loader) Load(filePath string) (*Config, error) {
	if l.Lookup == nil {
		l.Lookup = os.LookupEnv
	}
	if l.ReadFile == nil {
		l.ReadFile = os.ReadFile
	}

	var cfg Config
	if filePath != "" {
		data, err := l.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", filePath, err)
			}
		case errors.Is(err, fs.ErrNotExist) && filePath == DefaultFile:
		default:
			return nil, fmt.Errorf("config: read %s: %w", filePath, err)
		}
	}

	overrideString(l.Lookup, EnvListenAddr, &cfg.Server.ListenAddr)
	overrideString(l.Lookup, EnvLogLevel, &cfg.LogLevel)
	overrideString(l.Lookup, EnvStoreBackend, &cfg.Store.Backend)
	overrideString(l.Lookup, EnvBadgerDir, &cfg.Store.Badger.Dir)
	overrideString(l.Lookup, EnvMongoURI, &cfg.Store.Mongo.URI)
	overrideString(l.Lookup, EnvMongoDatabase, &cfg.Store.Mongo.Database)
	overrideString(l.Lookup, EnvJWTSecret, &cfg.Auth.JWTSecret)
	overrideString(l.Lookup, EnvOpenAIAPIKey, &cfg.Transcription.APIKey)
	overrideString(l.Lookup, EnvTranscriptionModel, &cfg.Transcription.Model)
	if err := overrideFloat(l.Lookup, EnvThreshold, &cfg.Verification.Threshold); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func overrideString(lookup func(string) (string, bool), key string, target *string) {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		*target = strings.TrimSpace(value)
	}
}

func overrideFloat(lookup func(string) (string, bool), key string, target *float64) error {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*target = f
	return nil
}
