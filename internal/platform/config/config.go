package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret     = "a-very-secret-key-should-be-longer-and-random"
	defaultRefreshSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	DBMaxConns    int32
	LogLevel      slog.Level

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	CORSAllowedOrigins []string
	RateLimit          string // ulule limiter format, e.g. "100-M"

	PosthogAPIKey   string
	PosthogEndpoint string

	AMQPURL      string // Empty disables event publishing
	AMQPExchange string

	LedgerTimezone           string
	CategoryStrictParentType bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "15m")
	viper.SetDefault("JWT_ISSUER", "finance-tracker")
	viper.SetDefault("REFRESH_TOKEN_SECRET", defaultRefreshSecret)
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "finance.events")
	viper.SetDefault("LEDGER_TIMEZONE", "")
	viper.SetDefault("CATEGORY_STRICT_PARENT_TYPE", false)

	// Environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              viper.GetString("PGSQL_URL"),
		Port:                     viper.GetString("PORT"),
		IsProduction:             viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            viper.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:               viper.GetInt32("DB_MAX_CONNS"),
		LogLevel:                 parseLogLevel(viper.GetString("LOG_LEVEL")),
		JWTSecret:                viper.GetString("JWT_SECRET"),
		JWTIssuer:                viper.GetString("JWT_ISSUER"),
		RefreshTokenSecret:       viper.GetString("REFRESH_TOKEN_SECRET"),
		GoogleClientID:           viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:       viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:        viper.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:          viper.GetString("FRONTEND_BASE_URL"),
		CORSAllowedOrigins:       splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:                viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:            viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:          viper.GetString("POSTHOG_ENDPOINT"),
		AMQPURL:                  viper.GetString("AMQP_URL"),
		AMQPExchange:             viper.GetString("AMQP_EXCHANGE"),
		LedgerTimezone:           viper.GetString("LEDGER_TIMEZONE"),
		CategoryStrictParentType: viper.GetBool("CATEGORY_STRICT_PARENT_TYPE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.RefreshTokenSecret == "" || cfg.RefreshTokenSecret == defaultRefreshSecret {
		cfg.RefreshTokenSecret = defaultRefreshSecret
		log.Println("Warning: REFRESH_TOKEN_SECRET is not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "finance-tracker"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 15*time.Minute)
	cfg.RefreshTokenExpiryDuration = durationOrDefault("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)

	// Log warnings for missing critical OAuth ENV variables
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET or GOOGLE_REDIRECT_URL not set. Google OAuth will not function.")
	}
	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Domain events will not be published.")
	}

	return cfg, nil
}

// Location returns the zone used to bucket dates into months.
// An empty or unknown LEDGER_TIMEZONE falls back to the process zone.
func (c *Config) Location() *time.Location {
	if c.LedgerTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.LedgerTimezone)
	if err != nil {
		log.Printf("Warning: invalid LEDGER_TIMEZONE ('%s'). Falling back to %s.\n", c.LedgerTimezone, time.Local.String())
		return time.Local
	}
	return loc
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
