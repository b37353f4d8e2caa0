package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. It is built once in main and passed
// down explicitly; nothing reads it through package state.
type Config struct {
	AppAddr string `mapstructure:"APP_ADDR"`
	GinMode string `mapstructure:"GIN_MODE"`
	Env     string `mapstructure:"ENV"`

	DBDSN string `mapstructure:"DB_DSN"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	SMTPHost  string `mapstructure:"SMTP_HOST"`
	SMTPPort  int    `mapstructure:"SMTP_PORT"`
	SMTPUser  string `mapstructure:"SMTP_USER"`
	SMTPPass  string `mapstructure:"SMTP_PASS"`
	EmailFrom string `mapstructure:"EMAIL_FROM"`

	// AdminEmail receives the operator notification for every new booking.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	APIRateMax           int `mapstructure:"API_RATE_MAX"`
	APIRateWindowMin     int `mapstructure:"API_RATE_WINDOW_MIN"`
	BookingRateMax       int `mapstructure:"BOOKING_RATE_MAX"`
	BookingRateWindowMin int `mapstructure:"BOOKING_RATE_WINDOW_MIN"`
}

// LoadConfig reads settings from the environment and an optional
// config.yaml, falling back to defaults for everything.
func LoadConfig() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ADDR", ":8080")
	viper.SetDefault("GIN_MODE", "")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DB_DSN", "root:@tcp(127.0.0.1:3306)/vtc_bookings?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s")
	viper.SetDefault("JWT_SECRET", "vtc_secret_key")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("API_RATE_MAX", 100)
	viper.SetDefault("API_RATE_WINDOW_MIN", 15)
	viper.SetDefault("BOOKING_RATE_MAX", 5)
	viper.SetDefault("BOOKING_RATE_WINDOW_MIN", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("no config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
