package config

import (
	"fmt"

	"github.com/Netflix/go-env"
)

// Config holds all runtime settings, loaded from environment variables.
// JWT_SECRET_KEY has no default on purpose: starting without one fails.
type Config struct {
	Port               string `env:"PORT,default=8080"`
	JWTSecret          string `env:"JWT_SECRET_KEY,required=true"`
	JWTExpirationHours int64  `env:"JWT_EXPIRATION_HOURS,default=1"`
	CORSOrigin         string `env:"CORS_ORIGIN,default=*"`

	DBHost     string `env:"DB_HOST,required=true"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,required=true"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,required=true"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
