package model

import "time"

// Config is the complete crimezones configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Cache        CacheConfig        `yaml:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	Extraction   ExtractionConfig   `yaml:"extraction"`
	Output       OutputConfig       `yaml:"output"`
	LLM          LLMConfig          `yaml:"llm"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// HTTPConfig controls bulletin downloads
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	MaxRetries    int           `yaml:"max_retries"`
	InsecureTLS   bool          `yaml:"insecure_tls"`
	RespectRobots bool          `yaml:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty"`
	NoProxy       string        `yaml:"no_proxy,omitempty"`
}

// CacheConfig controls the downloaded-bulletin cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// RateLimitingConfig is applied per domain
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// ConcurrencyConfig controls the batch worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// ExtractionConfig holds the tunable heuristics of the extraction core.
// The defaults are empirically tuned and should not be changed lightly.
type ExtractionConfig struct {
	GazetteerFile     string  `yaml:"gazetteer_file,omitempty"` // Empty = built-in Manaus table
	MinStrategyYield  int     `yaml:"min_strategy_yield"`
	ContainmentMinLen int     `yaml:"containment_min_len"`
	FuzzyMinLen       int     `yaml:"fuzzy_min_len"`
	FuzzyThreshold    float64 `yaml:"fuzzy_threshold"`
}

// OutputConfig controls artifact emission
type OutputConfig struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format,omitempty"` // ts, json, yaml; empty = from extension
	Year    int    `yaml:"year,omitempty"`   // 0 = current year
	DryRun  bool   `yaml:"-"`
	Merge   bool   `yaml:"-"`
	Debug   bool   `yaml:"-"`
	Verbose bool   `yaml:"verbose"`
}

// LLMConfig configures the optional narrative summary
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty"` // "openai" or empty (disabled)
	Model     string `yaml:"model,omitempty"`
	APIKey    string `yaml:"-"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	Strict    bool   `yaml:"strict"`
	MaxTokens int    `yaml:"max_tokens"`
}

// LoggingConfig controls slog output
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "crimezones/0.1 (+https://github.com/ppiankov/crimezones)",
			MaxBodyBytes:  50_000_000,
			MaxRetries:    3,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Extraction: ExtractionConfig{
			MinStrategyYield:  3,
			ContainmentMinLen: 5,
			FuzzyMinLen:       4,
			FuzzyThreshold:    0.85,
		},
		Output: OutputConfig{
			Path: "crimeZones.ts",
		},
		LLM: LLMConfig{
			Timeout:   30,
			Strict:    true,
			MaxTokens: 800,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func defaultCacheDir() string {
	return ".crimezones-cache"
}
