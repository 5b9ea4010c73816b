package app

import (
	"github.com/metrorail/docudesk/app/database"
	"github.com/metrorail/docudesk/internal/ai"
	"github.com/metrorail/docudesk/internal/conf"
	"github.com/metrorail/docudesk/internal/storage"
)

type Config struct {
	DB      database.Config
	Storage storage.Config
	AI      ai.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	// SymmetricKey signs session tokens; must be exactly 32 bytes.
	SymmetricKey string `env:"TOKEN_SYMMETRIC_KEY"`

	CacheBackend string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr    string `env:"REDIS_ADDR" env-default:"localhost:6379"`
}

// LoadConfig loads the application configuration from environment variables
// or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := conf.NewLoader().Load(c)
	return c, err
}
