package config

import (
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat         string        `envconfig:"LOG_FORMAT" default:"json"`
	AnalyticsTimezone string        `envconfig:"ANALYTICS_TIMEZONE" default:"Local"`
	DirectoryURL      string        `envconfig:"DIRECTORY_SERVICE_URL" default:"http://localhost:8081"`
	DishServiceURL    string        `envconfig:"DISH_SERVICE_URL" default:"http://localhost:8082"`
	ClientTimeout     time.Duration `envconfig:"CLIENT_TIMEOUT" default:"2s"`

	MySQL    MySQL    `envconfig:"MYSQL"`
	Redis    Redis    `envconfig:"REDIS"`
	RabbitMQ RabbitMQ `envconfig:"RABBITMQ"`

	DirectoryCacheTTL time.Duration `envconfig:"DIRECTORY_CACHE_TTL" default:"1m"`
}

// Nested keys are always prefixed (MYSQL_MAX_OPEN_CONNS, REDIS_PORT). Bare names
// such as PORT or USER are never read into them.
type MySQL struct {
	User            string        `split_words:"true" default:"root"`
	Password        string        `split_words:"true"`
	Host            string        `split_words:"true" default:"localhost"`
	Port            string        `split_words:"true" default:"3306"`
	Database        string        `split_words:"true" default:"orders"`
	MaxOpenConns    int           `split_words:"true" default:"100"`
	MaxIdleConns    int           `split_words:"true" default:"20"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"5m"`
}

// Redis with an empty Host disables the directory cache.
type Redis struct {
	Host string `split_words:"true"`
	Port string `split_words:"true" default:"6379"`
}

func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// RabbitMQ with an empty URL disables event publishing.
type RabbitMQ struct {
	URL      string `split_words:"true"`
	Exchange string `split_words:"true" default:"order.exchange"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process env config")
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) Location() (*time.Location, error) {
	if c.AnalyticsTimezone == "" || c.AnalyticsTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.AnalyticsTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.AnalyticsTimezone)
	}
	return loc, nil
}
