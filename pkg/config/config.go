package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	PostgresDSN      string `env:"POSTGRES_DSN,required,notEmpty"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`

	// Base64-encoded PEM of the auth service's RS256 public key.
	JWTPublicKey string `env:"JWT_PUBLIC_KEY,required,notEmpty"`

	UsersService UsersServiceConfig
	Redis        RedisConfig
	Kafka        Kafka
}

type UsersServiceConfig struct {
	URL           string        `env:"USERS_SERVICE_URL"`
	Timeout       time.Duration `env:"USERS_SERVICE_TIMEOUT" envDefault:"2s"`
	RetryAttempts int           `env:"USERS_SERVICE_RETRY_ATTEMPTS" envDefault:"3"`
}

type RedisConfig struct {
	Addr               string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password           string        `env:"REDIS_PASSWORD"`
	DB                 int           `env:"REDIS_DB" envDefault:"0"`
	CounselleeCacheTTL time.Duration `env:"COUNSELLEE_CACHE_TTL" envDefault:"10m"`
	// How long a changed counsellee list refuses refills.
	CounselleeRefillHold time.Duration `env:"COUNSELLEE_REFILL_HOLD" envDefault:"30s"`
}

type Kafka struct {
	Brokers          []string `env:"KAFKA_BROKERS"`
	ConsumerID       string   `env:"KAFKA_CONSUMER_ID" envDefault:"access"`
	UserCreatedTopic string   `env:"KAFKA_USER_CREATED_TOPIC" envDefault:"users.created"`
	RoleChangedTopic string   `env:"KAFKA_ROLE_CHANGED_TOPIC" envDefault:"users.role_changed"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
