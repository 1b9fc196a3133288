package config

import (
	"fmt"

	"github.com/darkr4m/actually-star-k9/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/oauth2/google"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	GoogleAPI GoogleAPIConfig
	S3        S3Config
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURI      string
	TokenURI     string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	PublicBaseURL   string
}

// Load reads configuration from environment variables. A .env file is picked
// up when present so local development matches deployed environments.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("GOOGLE_AUTH_URI", google.Endpoint.AuthURL)
	v.SetDefault("GOOGLE_TOKEN_URI", google.Endpoint.TokenURL)

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		GoogleAPI: GoogleAPIConfig{
			ClientID:     v.GetString("GOOGLE_OAUTH2_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_OAUTH2_CLIENT_SECRET"),
			RedirectURI:  v.GetString("GOOGLE_OAUTH2_REDIRECT_URI"),
			AuthURI:      v.GetString("GOOGLE_AUTH_URI"),
			TokenURI:     v.GetString("GOOGLE_TOKEN_URI"),
		},
		S3: S3Config{
			Region:          v.GetString("S3_REGION"),
			Bucket:          v.GetString("S3_BUCKET"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
		},
	}

	if cfg.Database.User == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("DB_USER and DB_NAME are required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" {
		logger.Warn("Config:Load:GoogleNotConfigured",
			"detail", "GOOGLE_OAUTH2_CLIENT_ID or GOOGLE_OAUTH2_CLIENT_SECRET not set, calendar linking disabled")
	}

	return cfg, nil
}

// IsGoogleConfigured reports whether the Google OAuth app identity is present.
func (c *Config) IsGoogleConfigured() bool {
	return c.GoogleAPI.ClientID != "" && c.GoogleAPI.ClientSecret != "" && c.GoogleAPI.RedirectURI != ""
}
