package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultURLTemplate = "https://{endpoint}.{region}.gs2io.com"
	DefaultEndpoint    = "timer"

	TransportResty = "resty"
	TransportFiber = "fiber"
)

type Config struct {
	Region       string `env:"TIMER_REGION" validate:"required"`
	ClientID     string `env:"TIMER_CLIENT_ID" validate:"required"`
	ClientSecret string `env:"TIMER_CLIENT_SECRET" validate:"required,base64"`
	URLTemplate  string `env:"TIMER_URL_TEMPLATE" validate:"required"`
	Endpoint     string `env:"TIMER_ENDPOINT" validate:"required"`
	Transport    string `env:"TIMER_TRANSPORT" validate:"required,oneof=resty fiber"`

	Size                  int           `env:"TIMER_POOL_SIZE" validate:"min=0,max=256"`
	RequestTimeout        time.Duration `env:"TIMER_REQUEST_TIMEOUT" validate:"min=0"`
	DialTimeout           time.Duration `env:"TIMER_DIAL_TIMEOUT" validate:"min=0"`
	TlsTimeout            time.Duration `env:"TIMER_TLS_TIMEOUT" validate:"min=0"`
	IdleConnTimeout       time.Duration `env:"TIMER_IDLE_CONN_TIMEOUT" validate:"min=0"`
	MaxConnsPerHost       int           `env:"TIMER_MAX_CONNS_PER_HOST" validate:"min=0"`
	InsecureSkipVerify    bool          `env:"TIMER_INSECURE_SKIP_VERIFY"`
	ResponseHeaderTimeout time.Duration `env:"TIMER_RESPONSE_HEADER_TIMEOUT" validate:"min=0"`
}

func DefaultConfig() Config {
	return Config{
		URLTemplate:           DefaultURLTemplate,
		Endpoint:              DefaultEndpoint,
		Transport:             TransportResty,
		Size:                  4,
		RequestTimeout:        10 * time.Second,
		DialTimeout:           5 * time.Second,
		TlsTimeout:            2 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxConnsPerHost:       2,
		InsecureSkipVerify:    false,
		ResponseHeaderTimeout: 0,
	}
}

// FromEnv starts from DefaultConfig and overrides every field whose TIMER_*
// variable is set. The result is not validated.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Load is FromEnv followed by Validate.
func Load() (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
