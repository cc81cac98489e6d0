package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the API process needs, read from the
// environment (optionally via a .env file loaded by the caller).
type Config struct {
	AppEnv string
	Port   string
	DSN    string

	JWTSecret    string
	JWTAccessTTL time.Duration

	Timezone          string
	PhotographerEmail string
	PhotographerName  string

	CORSOrigins []string

	Zoom   ZoomConfig
	Google GoogleConfig
	SMTP   SMTPConfig
}

type ZoomConfig struct {
	AccountID    string
	ClientID     string
	ClientSecret string
}

type GoogleConfig struct {
	ClientEmail string
	PrivateKey  string
	CalendarID  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_URL", "photosite.db")
	v.SetDefault("JWT_SECRET", "change-me-jwt-secret")
	v.SetDefault("JWT_ACCESS_TTL", "24h")
	v.SetDefault("TIMEZONE", "America/New_York")
	v.SetDefault("PHOTOGRAPHER_NAME", "The Studio")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("GOOGLE_CALENDAR_ID", "primary")

	ttl, err := time.ParseDuration(v.GetString("JWT_ACCESS_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL %q: %w", v.GetString("JWT_ACCESS_TTL"), err)
	}

	cfg := &Config{
		AppEnv:            strings.ToLower(v.GetString("APP_ENV")),
		Port:              v.GetString("PORT"),
		DSN:               v.GetString("DATABASE_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTAccessTTL:      ttl,
		Timezone:          v.GetString("TIMEZONE"),
		PhotographerEmail: v.GetString("PHOTOGRAPHER_EMAIL"),
		PhotographerName:  v.GetString("PHOTOGRAPHER_NAME"),
		CORSOrigins:       splitCSV(v.GetString("CORS_ORIGINS")),
		Zoom: ZoomConfig{
			AccountID:    v.GetString("ZOOM_ACCOUNT_ID"),
			ClientID:     v.GetString("ZOOM_CLIENT_ID"),
			ClientSecret: v.GetString("ZOOM_CLIENT_SECRET"),
		},
		Google: GoogleConfig{
			ClientEmail: v.GetString("GOOGLE_CLIENT_EMAIL"),
			PrivateKey:  v.GetString("GOOGLE_PRIVATE_KEY"),
			CalendarID:  v.GetString("GOOGLE_CALENDAR_ID"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.isProdLike() {
		if c.JWTSecret == "" || c.JWTSecret == "change-me-jwt-secret" {
			return fmt.Errorf("in production JWT_SECRET must be set and not default")
		}
		if c.PhotographerEmail == "" {
			return fmt.Errorf("in production PHOTOGRAPHER_EMAIL must be set")
		}
	}
	if c.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	return nil
}

func (c *Config) isProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// Location resolves the configured timezone, falling back to UTC on a
// bad name rather than refusing to start.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
