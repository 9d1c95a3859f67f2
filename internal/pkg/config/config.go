package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Cron trigger config
	configs.Cron.Secret = GetEnv("CRON_SECRET", "")

	// Ledger earn policies, keyed by transaction category
	configs.Ledger.Policies = map[string]models.RatePolicy{
		models.CategoryLikePost: {
			Amount:     GetEnvAsInt64("LEDGER_LIKE_POST_AMOUNT", 1),
			MaxPerHour: GetEnvAsInt("LEDGER_LIKE_POST_MAX_PER_HOUR", 20),
			MaxPerDay:  GetEnvAsInt("LEDGER_LIKE_POST_MAX_PER_DAY", 100),
		},
		models.CategoryCreatePost: {
			Amount:     GetEnvAsInt64("LEDGER_CREATE_POST_AMOUNT", 10),
			MaxPerHour: GetEnvAsInt("LEDGER_CREATE_POST_MAX_PER_HOUR", 3),
			MaxPerDay:  GetEnvAsInt("LEDGER_CREATE_POST_MAX_PER_DAY", 10),
		},
		models.CategoryCreateComment: {
			Amount:     GetEnvAsInt64("LEDGER_CREATE_COMMENT_AMOUNT", 2),
			MaxPerHour: GetEnvAsInt("LEDGER_CREATE_COMMENT_MAX_PER_HOUR", 10),
			MaxPerDay:  GetEnvAsInt("LEDGER_CREATE_COMMENT_MAX_PER_DAY", 50),
		},
		models.CategoryDailyCheckin: {
			Amount:     GetEnvAsInt64("LEDGER_DAILY_CHECKIN_AMOUNT", 5),
			MaxPerHour: GetEnvAsInt("LEDGER_DAILY_CHECKIN_MAX_PER_HOUR", 1),
			MaxPerDay:  GetEnvAsInt("LEDGER_DAILY_CHECKIN_MAX_PER_DAY", 1),
		},
	}

	// Engagement bot config
	configs.Engagement.BotUserID = GetEnv("ENGAGEMENT_BOT_USER_ID", "")
	configs.Engagement.ItemPause = GetEnvAsDuration("ENGAGEMENT_ITEM_PAUSE", 500*time.Millisecond)
	configs.Engagement.BatchLimit = GetEnvAsInt("ENGAGEMENT_BATCH_LIMIT", 20)
	configs.Engagement.Policies = map[string]models.ActionPolicy{
		models.ActionKindLike: {
			Probability: GetEnvAsFloat("ENGAGEMENT_LIKE_PROBABILITY", 0.67),
			MinDelay:    GetEnvAsDuration("ENGAGEMENT_LIKE_MIN_DELAY", 5*time.Minute),
			MaxDelay:    GetEnvAsDuration("ENGAGEMENT_LIKE_MAX_DELAY", 1*time.Hour),
		},
		models.ActionKindReply: {
			Probability: GetEnvAsFloat("ENGAGEMENT_REPLY_PROBABILITY", 0.67),
			MinDelay:    GetEnvAsDuration("ENGAGEMENT_REPLY_MIN_DELAY", 3*time.Minute),
			MaxDelay:    GetEnvAsDuration("ENGAGEMENT_REPLY_MAX_DELAY", 2*time.Hour),
		},
		models.ActionKindComment: {
			Probability: GetEnvAsFloat("ENGAGEMENT_COMMENT_PROBABILITY", 0.5),
			MinDelay:    GetEnvAsDuration("ENGAGEMENT_COMMENT_MIN_DELAY", 5*time.Minute),
			MaxDelay:    GetEnvAsDuration("ENGAGEMENT_COMMENT_MAX_DELAY", 90*time.Minute),
		},
	}

	// Notification provider config
	configs.Notification.Email.URL = GetEnv("EMAIL_PROVIDER_URL", "")
	configs.Notification.Email.APIKey = GetEnv("EMAIL_PROVIDER_API_KEY", "")
	configs.Notification.Email.WebhookSecret = GetEnv("EMAIL_WEBHOOK_SECRET", "")
	configs.Notification.Push.URL = GetEnv("PUSH_PROVIDER_URL", "")
	configs.Notification.Push.APIKey = GetEnv("PUSH_PROVIDER_API_KEY", "")
	configs.Notification.Push.WebhookSecret = GetEnv("PUSH_WEBHOOK_SECRET", "")
	configs.Notification.SignatureTolerance = GetEnvAsDuration("WEBHOOK_SIGNATURE_TOLERANCE", 5*time.Minute)
	configs.Notification.DedupTTL = GetEnvAsDuration("WEBHOOK_DEDUP_TTL", 24*time.Hour)

	// Raffle config
	configs.Raffle.NumWinners = GetEnvAsInt("RAFFLE_NUM_WINNERS", 1)

	// AI text generation config
	configs.AI.URL = GetEnv("AI_SERVICE_URL", "")
	configs.AI.APIKey = GetEnv("AI_SERVICE_API_KEY", "")
	configs.AI.Timeout = GetEnvAsDuration("AI_SERVICE_TIMEOUT", 10*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/fanloop.log")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)
	configs.Logger.Type = GetEnv("LOG_TYPE", "file")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
