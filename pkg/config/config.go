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
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:chatradar.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram streaming scanner configuration"`

	Discord DiscordConfig `yaml:"discord" json:"discord" jsonschema:"description=Discord polling scanner configuration"`

	Embeddings EmbeddingsConfig `yaml:"embeddings" json:"embeddings" jsonschema:"description=Embedding provider for semantic matching"`

	Matcher MatcherConfig `yaml:"matcher" json:"matcher" jsonschema:"description=Keyword matching defaults"`

	Notifications NotificationsConfig `yaml:"notifications" json:"notifications" jsonschema:"description=Notification dispatch configuration"`

	Broadcast struct {
		Window time.Duration `yaml:"window" json:"window" jsonschema:"default=80ms,description=Coalescing window for realtime pushes"`
	} `yaml:"broadcast" json:"broadcast" jsonschema:"description=Realtime broadcaster configuration"`

	Filter struct {
		RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=1m,description=Chat filter rebuild interval"`
	} `yaml:"filter" json:"filter" jsonschema:"description=Chat filter reconciliation configuration"`

	Directory struct {
		Path string `yaml:"path" json:"path" jsonschema:"default=directory.yml,description=Tenant and chat directory file"`
	} `yaml:"directory" json:"directory" jsonschema:"description=Tenant and chat directory"`
}

// TelegramConfig holds credentials for the streaming scanner
type TelegramConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the Telegram streaming scanner"`
	BotToken string        `yaml:"bot_token" json:"bot_token" jsonschema:"description=Bot token (can use environment variable)"`
	PollTime time.Duration `yaml:"poll_time" json:"poll_time" jsonschema:"default=10s,description=Long poll timeout for the update stream"`
}

// DiscordConfig holds credentials and tuning for the polling scanner
type DiscordConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the Discord polling scanner"`
	BotToken     string        `yaml:"bot_token" json:"bot_token" jsonschema:"description=Bot token (can use environment variable)"`
	PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=60s,description=Poll interval, clamped to 15s..10m"`
	Cooldown     time.Duration `yaml:"cooldown" json:"cooldown" jsonschema:"default=30s,description=Cooldown after a rate limit response"`
	RPS          float64       `yaml:"rps" json:"rps" jsonschema:"default=1,description=Maximum API requests per second"`
}

// EmbeddingsConfig holds the embedding provider settings, empty endpoint
// disables semantic matching and keywords degrade to exact matching
type EmbeddingsConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model    string        `yaml:"model" json:"model" jsonschema:"default=text-embedding-3-small,description=Embedding model name"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// MatcherConfig holds matching defaults, tenants may override per-tenant
type MatcherConfig struct {
	Threshold       float64 `yaml:"threshold" json:"threshold" jsonschema:"default=0.55,minimum=0,maximum=1,description=Default semantic similarity threshold"`
	MinTopicPercent int     `yaml:"min_topic_percent" json:"min_topic_percent" jsonschema:"default=0,minimum=0,maximum=100,description=Default minimum topic match percent"`
}

// NotificationsConfig holds dispatcher tuning and delivery credentials.
// Empty bot_token disables telegram delivery, empty smtp_host disables email.
type NotificationsConfig struct {
	QueueSize int    `yaml:"queue_size" json:"queue_size" jsonschema:"default=2000,description=Bounded notification queue capacity"`
	Workers   int    `yaml:"workers" json:"workers" jsonschema:"default=4,description=Notification worker count"`
	BotToken  string `yaml:"bot_token" json:"bot_token" jsonschema:"description=Telegram bot token for delivery (can use environment variable)"`

	SMTPHost     string `yaml:"smtp_host" json:"smtp_host" jsonschema:"description=SMTP host for email delivery"`
	SMTPPort     int    `yaml:"smtp_port" json:"smtp_port" jsonschema:"default=587,description=SMTP port"`
	SMTPUser     string `yaml:"smtp_user" json:"smtp_user" jsonschema:"description=SMTP username"`
	SMTPPassword string `yaml:"smtp_password" json:"smtp_password" jsonschema:"description=SMTP password (can use environment variable)"`
	SMTPTLS      bool   `yaml:"smtp_tls" json:"smtp_tls" jsonschema:"default=false,description=Use TLS for the SMTP connection"`
	From         string `yaml:"from" json:"from" jsonschema:"description=From address for email notifications"`
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

	cfg.setDefaults()

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

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:chatradar.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for scanners
	if c.Telegram.PollTime == 0 {
		c.Telegram.PollTime = 10 * time.Second
	}
	if c.Discord.PollInterval == 0 {
		c.Discord.PollInterval = 60 * time.Second
	}
	if c.Discord.Cooldown == 0 {
		c.Discord.Cooldown = 30 * time.Second
	}
	if c.Discord.RPS == 0 {
		c.Discord.RPS = 1
	}

	// set defaults for embeddings and matching
	if c.Embeddings.Model == "" {
		c.Embeddings.Model = "text-embedding-3-small"
	}
	if c.Embeddings.Timeout == 0 {
		c.Embeddings.Timeout = 30 * time.Second
	}
	if c.Matcher.Threshold == 0 {
		c.Matcher.Threshold = 0.55
	}

	// set defaults for notifications and broadcast
	if c.Notifications.QueueSize == 0 {
		c.Notifications.QueueSize = 2000
	}
	if c.Notifications.Workers == 0 {
		c.Notifications.Workers = 4
	}
	if c.Notifications.SMTPPort == 0 {
		c.Notifications.SMTPPort = 587
	}
	if c.Broadcast.Window == 0 {
		c.Broadcast.Window = 80 * time.Millisecond
	}
	if c.Filter.RefreshInterval == 0 {
		c.Filter.RefreshInterval = time.Minute
	}
	if c.Directory.Path == "" {
		c.Directory.Path = "directory.yml"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate scanner credentials, missing credentials for an enabled scanner
	// is a configuration error, not a runtime retry case
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
	}
	if cfg.Discord.Enabled && cfg.Discord.BotToken == "" {
		return fmt.Errorf("discord.bot_token is required when discord is enabled")
	}
	if cfg.Discord.RPS < 0 {
		return fmt.Errorf("discord.rps must be non-negative")
	}

	// validate matcher config
	if cfg.Matcher.Threshold < 0 || cfg.Matcher.Threshold > 1 {
		return fmt.Errorf("matcher.threshold must be between 0 and 1")
	}
	if cfg.Matcher.MinTopicPercent < 0 || cfg.Matcher.MinTopicPercent > 100 {
		return fmt.Errorf("matcher.min_topic_percent must be between 0 and 100")
	}

	// validate notification config
	if cfg.Notifications.QueueSize < 1 {
		return fmt.Errorf("notifications.queue_size must be at least 1")
	}
	if cfg.Notifications.Workers < 1 {
		return fmt.Errorf("notifications.workers must be at least 1")
	}
	if cfg.Notifications.SMTPHost != "" && cfg.Notifications.From == "" {
		return fmt.Errorf("notifications.from is required when smtp_host is set")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetMatcherConfig returns keyword matching defaults
func (c *Config) GetMatcherConfig() MatcherConfig {
	return c.Matcher
}

// GetEmbeddingsConfig returns the embedding provider configuration
func (c *Config) GetEmbeddingsConfig() EmbeddingsConfig {
	return c.Embeddings
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
