package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Form   FormConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds the secret used to verify operator tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FormConfig holds stamp form settings.
type FormConfig struct {
	TimeZone string `mapstructure:"time_zone"`
}

// Location resolves the configured time zone, falling back to UTC.
func (f FormConfig) Location() *time.Location {
	loc, err := time.LoadLocation(f.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configs/.env when present, then environment variables with the
// SELLOS_ prefix.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()
	v.SetEnvPrefix("SELLOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "sellos")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "sellos")

	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173")

	v.SetDefault("form.time_zone", "America/Argentina/Buenos_Aires")

	envBindings := map[string]string{
		"server.port":          "SELLOS_SERVER_PORT",
		"server.read_timeout":  "SELLOS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "SELLOS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "SELLOS_SERVER_ENVIRONMENT",
		"db.host":              "SELLOS_DB_HOST",
		"db.port":              "SELLOS_DB_PORT",
		"db.user":              "SELLOS_DB_USER",
		"db.password":          "SELLOS_DB_PASSWORD",
		"db.name":              "SELLOS_DB_NAME",
		"db.sslmode":           "SELLOS_DB_SSLMODE",
		"db.max_open":          "SELLOS_DB_MAX_OPEN",
		"db.max_idle":          "SELLOS_DB_MAX_IDLE",
		"jwt.secret":           "SELLOS_JWT_SECRET",
		"jwt.issuer":           "SELLOS_JWT_ISSUER",
		"log.level":            "SELLOS_LOG_LEVEL",
		"log.format":           "SELLOS_LOG_FORMAT",
		"log.output":           "SELLOS_LOG_OUTPUT",
		"cors.allowed_origins": "SELLOS_CORS_ALLOWED_ORIGINS",
		"form.time_zone":       "SELLOS_FORM_TIME_ZONE",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.CORS.AllowedOrigins = splitTrim(strings.Join(cfg.CORS.AllowedOrigins, ","))

	if cfg.Server.Environment == "production" && cfg.JWT.Secret == "change-me-in-production" {
		return nil, fmt.Errorf("SELLOS_JWT_SECRET must be set in production")
	}

	return &cfg, nil
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
