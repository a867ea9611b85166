package config

import (
	"strings"
	"time"

	"github.com/jinzhu/configor"
)

type Config struct {
	App AppConfig
	DB  DBConfig
	JWT JWTConfig
	AI  AIConfig
}

type AppConfig struct {
	Port           int    `default:"8000" env:"PORT"`
	OriginsString  string `default:"http://localhost:5173,http://localhost:3000" env:"ALLOWED_ORIGINS"`
	AllowedOrigins []string
}

type DBConfig struct {
	Path string `default:"ecoloop.db" env:"DATABASE_PATH"`
}

type JWTConfig struct {
	Secret        string `default:"change-me-in-production" env:"JWT_SECRET"`
	ExpireMinutes int    `default:"30" env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
}

type AIConfig struct {
	APIKey string `env:"GOOGLE_API_KEY"`
	Model  string `default:"gemini-1.5-flash" env:"GEMINI_MODEL"`
}

// C is the process-wide configuration, loaded once in Load before any
// request handling begins.
var C Config

func Load() {
	configor.Load(&C, "config/config.json")
	C.App.AllowedOrigins = strings.Split(C.App.OriginsString, ",")
}

func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}
