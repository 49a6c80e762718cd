package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Currency handling
	BaseCurrency string // reference currency, rate is 1 by definition

	// Payment gateway (hosted page, reached only by URL redirection)
	PaymentGatewayBaseURL string

	// CORS
	CORSAllowedOrigins []string

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Analytics
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "vitrin-backend")
	viper.SetDefault("BASE_CURRENCY", "TRY")
	viper.SetDefault("PAYMENT_GATEWAY_BASE_URL", "https://pos.gateway.example")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Invalid JWT_EXPIRY_DURATION, falling back to 1h: %v", err)
		jwtExpiry = time.Hour
	}

	cfg := &Config{
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		JWTSecret:             viper.GetString("JWT_SECRET"),
		JWTExpiryDuration:     jwtExpiry,
		JWTIssuer:             viper.GetString("JWT_ISSUER"),
		BaseCurrency:          strings.ToUpper(viper.GetString("BASE_CURRENCY")),
		PaymentGatewayBaseURL: strings.TrimRight(viper.GetString("PAYMENT_GATEWAY_BASE_URL"), "/"),
		CORSAllowedOrigins:    strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ","),
		GoogleClientID:        viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:    viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:     viper.GetString("GOOGLE_REDIRECT_URL"),
		PosthogAPIKey:         viper.GetString("POSTHOG_API_KEY"),
	}

	return cfg, nil
}
