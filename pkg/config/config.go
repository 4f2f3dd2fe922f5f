package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:companion.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for reply generation"`

	Proactive ProactiveConfig `yaml:"proactive" json:"proactive" jsonschema:"description=Proactive messaging configuration"`

	Limits LimitsConfig `yaml:"limits" json:"limits" jsonschema:"description=Inbound message limits"`

	Cleanup CleanupConfig `yaml:"cleanup" json:"cleanup" jsonschema:"description=Data retention configuration"`

	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot configuration"`

	Starters StartersConfig `yaml:"starters" json:"starters" jsonschema:"description=Conversation starter feeds configuration"`
}

// LLMConfig holds LLM configuration for reply generation
type LLMConfig struct {
	Endpoint         string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty for api.openai.com)"`
	APIKey           string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model            string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature      float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.8,description=Temperature for response generation"`
	MaxTokens        int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	TopP             float64       `yaml:"top_p" json:"top_p" jsonschema:"default=0.9,description=Nucleus sampling cutoff"`
	FrequencyPenalty float64       `yaml:"frequency_penalty" json:"frequency_penalty" jsonschema:"default=0.2,description=Penalty for repeated tokens"`
	PresencePenalty  float64       `yaml:"presence_penalty" json:"presence_penalty" jsonschema:"default=0.2,description=Penalty for repeated topics"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ProactiveConfig holds the proactive scheduler settings. The gate policy
// itself (cooldowns, daily caps) is fixed, only the outer loop is tunable.
type ProactiveConfig struct {
	Disabled           bool          `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Global kill switch for proactive messages"`
	DisabledArchetypes []string      `yaml:"disabled_archetypes" json:"disabled_archetypes" jsonschema:"description=Archetypes excluded from proactive messages"`
	Interval           time.Duration `yaml:"interval" json:"interval" jsonschema:"default=15m,description=How often the proactive worker scans users"`
	BatchSize          int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=100,minimum=1,description=Maximum users evaluated per scan"`
	ActiveWindow       time.Duration `yaml:"active_window" json:"active_window" jsonschema:"default=168h,description=Only users active within this window are considered"`
	QuietStart         int           `yaml:"quiet_start" json:"quiet_start" jsonschema:"default=22,minimum=0,maximum=23,description=Local hour when quiet hours begin"`
	QuietEnd           int           `yaml:"quiet_end" json:"quiet_end" jsonschema:"default=6,minimum=0,maximum=23,description=Local hour when quiet hours end"`
}

// LimitsConfig holds per-user inbound message limits for the API
type LimitsConfig struct {
	MessageRatePerMin int           `yaml:"message_rate_per_min" json:"message_rate_per_min" jsonschema:"default=20,minimum=1,description=Messages accepted per user per minute"`
	MaxMessageLength  int           `yaml:"max_message_length" json:"max_message_length" jsonschema:"default=4000,minimum=1,description=Maximum inbound message length in bytes"`
	DedupWindow       time.Duration `yaml:"dedup_window" json:"dedup_window" jsonschema:"default=5s,description=Window for suppressing identical repeated messages"`
}

// CleanupConfig holds data retention settings
type CleanupConfig struct {
	Interval    time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=How often old records are purged"`
	TurnDays    int           `yaml:"turn_days" json:"turn_days" jsonschema:"default=90,description=Conversation turn retention in days"`
	AttemptDays int           `yaml:"attempt_days" json:"attempt_days" jsonschema:"default=30,description=Proactive attempt log retention in days"`
}

// TelegramConfig holds telegram bot settings, empty token disables the bot
type TelegramConfig struct {
	Token       string        `yaml:"token" json:"token" jsonschema:"description=Bot API token (can use environment variable)"`
	APIURL      string        `yaml:"api_url" json:"api_url" jsonschema:"description=Bot API base URL (empty for api.telegram.org)"`
	PollTimeout time.Duration `yaml:"poll_timeout" json:"poll_timeout" jsonschema:"default=50s,description=Long poll timeout for getUpdates"`
}

// StartersConfig holds conversation starter feed settings
type StartersConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable news-based conversation starters"`
	Feeds           []string      `yaml:"feeds" json:"feeds" jsonschema:"description=RSS feed URLs to draw starter topics from"`
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=1h,description=How often feeds are re-fetched"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per feed"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Companion/1.0,description=User agent for feed requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:companion.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.8
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 300
	}
	if cfg.LLM.TopP == 0 {
		cfg.LLM.TopP = 0.9
	}
	if cfg.LLM.FrequencyPenalty == 0 {
		cfg.LLM.FrequencyPenalty = 0.2
	}
	if cfg.LLM.PresencePenalty == 0 {
		cfg.LLM.PresencePenalty = 0.2
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// set defaults for proactive
	if cfg.Proactive.Interval == 0 {
		cfg.Proactive.Interval = 15 * time.Minute
	}
	if cfg.Proactive.BatchSize == 0 {
		cfg.Proactive.BatchSize = 100
	}
	if cfg.Proactive.ActiveWindow == 0 {
		cfg.Proactive.ActiveWindow = 7 * 24 * time.Hour
	}
	if cfg.Proactive.QuietStart == 0 {
		cfg.Proactive.QuietStart = 22
	}
	if cfg.Proactive.QuietEnd == 0 {
		cfg.Proactive.QuietEnd = 6
	}

	// set defaults for limits
	if cfg.Limits.MessageRatePerMin == 0 {
		cfg.Limits.MessageRatePerMin = 20
	}
	if cfg.Limits.MaxMessageLength == 0 {
		cfg.Limits.MaxMessageLength = 4000
	}
	if cfg.Limits.DedupWindow == 0 {
		cfg.Limits.DedupWindow = 5 * time.Second
	}

	// set defaults for cleanup
	if cfg.Cleanup.Interval == 0 {
		cfg.Cleanup.Interval = time.Hour
	}
	if cfg.Cleanup.TurnDays == 0 {
		cfg.Cleanup.TurnDays = 90
	}
	if cfg.Cleanup.AttemptDays == 0 {
		cfg.Cleanup.AttemptDays = 30
	}

	// set defaults for telegram
	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 50 * time.Second
	}

	// set defaults for starters
	if cfg.Starters.RefreshInterval == 0 {
		cfg.Starters.RefreshInterval = time.Hour
	}
	if cfg.Starters.Timeout == 0 {
		cfg.Starters.Timeout = 30 * time.Second
	}
	if cfg.Starters.UserAgent == "" {
		cfg.Starters.UserAgent = "Companion/1.0"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.TopP < 0 || cfg.LLM.TopP > 1 {
		return fmt.Errorf("llm.top_p must be between 0 and 1")
	}

	// validate proactive config
	if cfg.Proactive.BatchSize < 1 {
		return fmt.Errorf("proactive.batch_size must be at least 1")
	}
	if cfg.Proactive.QuietStart < 0 || cfg.Proactive.QuietStart > 23 {
		return fmt.Errorf("proactive.quiet_start must be between 0 and 23")
	}
	if cfg.Proactive.QuietEnd < 0 || cfg.Proactive.QuietEnd > 23 {
		return fmt.Errorf("proactive.quiet_end must be between 0 and 23")
	}

	// validate limits config
	if cfg.Limits.MessageRatePerMin < 1 {
		return fmt.Errorf("limits.message_rate_per_min must be at least 1")
	}
	if cfg.Limits.MaxMessageLength < 1 {
		return fmt.Errorf("limits.max_message_length must be at least 1")
	}

	// validate cleanup config
	if cfg.Cleanup.TurnDays < 1 {
		return fmt.Errorf("cleanup.turn_days must be at least 1")
	}
	if cfg.Cleanup.AttemptDays < 1 {
		return fmt.Errorf("cleanup.attempt_days must be at least 1")
	}

	// validate starters config
	if cfg.Starters.Enabled && len(cfg.Starters.Feeds) == 0 {
		return fmt.Errorf("starters.feeds is required when starters are enabled")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}
