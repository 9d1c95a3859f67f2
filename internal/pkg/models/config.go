package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	Cron         CronConfig
	Ledger       LedgerConfig
	Engagement   EngagementConfig
	Notification NotificationConfig
	Raffle       RaffleConfig
	AI           AIConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// CronConfig guards the externally-triggered worker endpoints
type CronConfig struct {
	Secret string
}

// RatePolicy caps how often one earn category may pay out per user.
// A zero cap disables that window.
type RatePolicy struct {
	// Amount is the coin payout for one occurrence of the category.
	Amount     int64
	MaxPerHour int
	MaxPerDay  int
}

// LedgerConfig contains coin economy configuration
type LedgerConfig struct {
	// Policies maps a transaction category to its earn caps. Categories
	// without an entry are not rate limited.
	Policies map[string]RatePolicy
}

// ActionPolicy controls the probability and delay gates for one automated
// action kind.
type ActionPolicy struct {
	Probability float64
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// EngagementConfig contains scheduled-action configuration
type EngagementConfig struct {
	// BotUserID is the identity automated actions run as.
	BotUserID string
	// Policies maps an action kind to its gating policy.
	Policies map[string]ActionPolicy
	// ItemPause is the pause between items in one worker run.
	ItemPause time.Duration
	// BatchLimit is the default claim limit for one worker run.
	BatchLimit int
}

// ProviderConfig contains one outbound notification provider
type ProviderConfig struct {
	URL           string
	APIKey        string
	WebhookSecret string
}

// NotificationConfig contains delivery tracking configuration
type NotificationConfig struct {
	Email ProviderConfig
	Push  ProviderConfig
	// SignatureTolerance bounds how old a signed webhook timestamp may be.
	SignatureTolerance time.Duration
	// DedupTTL is how long processed provider event IDs are remembered.
	DedupTTL time.Duration
}

// RaffleConfig contains prize draw configuration
type RaffleConfig struct {
	// NumWinners is the default winner count per draw, capped at pool size.
	NumWinners int
}

// AIConfig contains the external text generation service configuration
type AIConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
