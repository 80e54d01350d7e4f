package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the YAML file checked when CONFIG_PATH is not set.
const DefaultConfigFile = "claimtriage.yaml"

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"

	ProviderMock      = "mock"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Server Server `yaml:"server"`
	Store  Store  `yaml:"store"`
	AI     AI     `yaml:"ai"`
	Cache  Cache  `yaml:"cache"`
	Region Region `yaml:"region"`
	Debug  bool   `yaml:"debug"`
}

type Server struct {
	Port           int   `yaml:"port"`
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

type Store struct {
	Backend       string `yaml:"backend"`
	SQLitePath    string `yaml:"sqlite_path"`
	DynamoDBTable string `yaml:"dynamodb_table"`
}

// AI selects the collaborators used by the assessment pipeline.
// With provider "mock" no external call is made.
type AI struct {
	Provider        string        `yaml:"provider"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key"`
	AnthropicModel  string        `yaml:"anthropic_model"`
	MaxTokens       int64         `yaml:"max_tokens"`
	Timeout         time.Duration `yaml:"timeout"`
}

type Cache struct {
	MaxSizeMB int64         `yaml:"max_size_mb"`
	TTL       time.Duration `yaml:"ttl"`
}

type Region struct {
	Name           string  `yaml:"name"`
	LaborRate      float64 `yaml:"labor_rate"`
	CostMultiplier float64 `yaml:"cost_multiplier"`
}

func Defaults() Config {
	return Config{
		Server: Server{Port: 8080, MaxUploadBytes: 10 << 20},
		Store: Store{
			Backend:       StoreMemory,
			SQLitePath:    "claims.db",
			DynamoDBTable: "claims",
		},
		AI: AI{
			Provider:       ProviderMock,
			AnthropicModel: "claude-sonnet-4-5-20250929",
			MaxTokens:      1024,
			Timeout:        90 * time.Second,
		},
		Cache:  Cache{MaxSizeMB: 32, TTL: 24 * time.Hour},
		Region: Region{Name: "national", LaborRate: 95, CostMultiplier: 1},
	}
}

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// The YAML file is optional.
func Load() (Config, error) {
	path := DefaultConfigFile
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (Config, error) {
	cfg := Defaults()
	if err := loadYAML(&cfg, path); err != nil {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	loadEnv(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config validate: %w", err)
	}
	return cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	setInt(&cfg.Server.Port, "PORT")
	setInt64(&cfg.Server.MaxUploadBytes, "MAX_UPLOAD_BYTES")
	setString(&cfg.Store.Backend, "STORE_BACKEND")
	setString(&cfg.Store.SQLitePath, "SQLITE_PATH")
	setString(&cfg.Store.DynamoDBTable, "CLAIMS_TABLE")
	setString(&cfg.AI.Provider, "AI_PROVIDER")
	setString(&cfg.AI.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setString(&cfg.AI.AnthropicModel, "ANTHROPIC_MODEL")
	setInt64(&cfg.AI.MaxTokens, "ANTHROPIC_MAX_TOKENS")
	setDuration(&cfg.AI.Timeout, "AI_TIMEOUT")
	setInt64(&cfg.Cache.MaxSizeMB, "CACHE_MAX_SIZE_MB")
	setDuration(&cfg.Cache.TTL, "CACHE_TTL")
	setString(&cfg.Region.Name, "REGION_NAME")
	setFloat64(&cfg.Region.LaborRate, "REGION_LABOR_RATE")
	setFloat64(&cfg.Region.CostMultiplier, "REGION_COST_MULTIPLIER")
	setBool(&cfg.Debug, "DEBUG")

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
}

func validate(cfg Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	switch cfg.Store.Backend {
	case StoreMemory, StoreDynamoDB, StoreSQLite:
	default:
		return fmt.Errorf("unknown store.backend %q", cfg.Store.Backend)
	}
	switch cfg.AI.Provider {
	case ProviderMock:
	case ProviderAnthropic:
		if cfg.AI.AnthropicAPIKey == "" {
			return errors.New("ai.anthropic_api_key is required for the anthropic provider")
		}
	default:
		return fmt.Errorf("unknown ai.provider %q", cfg.AI.Provider)
	}
	if cfg.Cache.MaxSizeMB < 1 {
		return errors.New("cache.max_size_mb must be >= 1")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setBool(dst *bool, key string) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	}
}
