package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `env:"APP_ENV" env-default:"development"`
	Port string `env:"PORT" env-default:"8080"`

	Database struct {
		Driver string `env:"DB_DRIVER" env-default:"sqlite"`
		DSN    string `env:"DB_DSN" env-default:"realestate.db"`
	}

	JWT struct {
		Key            string `env:"JWT_KEY" env-required:"true"`
		Issuer         string `env:"JWT_ISSUER" env-default:"real-estate-api"`
		Audience       string `env:"JWT_AUDIENCE" env-default:"real-estate-client"`
		ExpiresMinutes int    `env:"JWT_EXPIRES_MINUTES" env-default:"60"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASS"`
	}

	Seed struct {
		FilePath           string `env:"SEED_FILE" env-default:"seed/properties-seed.json"`
		FallbackImage      string `env:"SEED_FALLBACK_IMAGE" env-default:"/images/placeholder-property.webp"`
		ValidateImages     bool   `env:"SEED_VALIDATE_IMAGES" env-default:"true"`
		MaxParallelChecks  int    `env:"SEED_MAX_PARALLEL_CHECKS" env-default:"8"`
		HeadTimeoutSeconds int    `env:"SEED_HEAD_TIMEOUT_SECONDS" env-default:"2"`
		WebRoot            string `env:"WEB_ROOT" env-default:"static"`
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// MustLoad reads configuration from the environment, after loading a .env
// file when one is present.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	return &cfg
}
