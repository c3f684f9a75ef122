// config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all environment configuration, loaded once at startup
// and injected into controllers and services.
type Config struct {
	MongoURI  string
	DBName    string
	Port      string
	JWTSecret string

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load builds the configuration from environment variables. Call after
// godotenv has loaded the .env file.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        os.Getenv("DB_NAME"),
		Port:          os.Getenv("PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGODB_URI")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI or MONGODB_URI environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if cfg.DBName == "" {
		cfg.DBName = "petopia"
	}
	if cfg.Port == "" {
		cfg.Port = "9000"
	}

	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.New("invalid SMTP_PORT: " + portStr)
		}
		cfg.SMTPPort = port
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, errors.New("invalid REDIS_DB: " + dbStr)
		}
		cfg.RedisDB = db
	}

	return cfg, nil
}

// MailConfigured reports whether SMTP settings are complete enough to
// send email.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.SMTPUser != "" && c.SMTPPass != "" && c.FromEmail != ""
}
