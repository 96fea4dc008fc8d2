package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config drives the front ends talking to the classification service.
type Config struct {
	ClassifierURL  string        `env:"CLASSIFIER_URL,default=http://localhost:5000" validate:"required,url"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s" validate:"gt=0"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// StubConfig drives the local stand-in service.
type StubConfig struct {
	Host     string `env:"HOST,default=localhost" validate:"required"`
	Port     int    `env:"PORT,default=5000" validate:"gt=0,lte=65535"`
	LogLevel string `env:"LOG_LEVEL,default=INFO" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

func (c StubConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if err := load(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadStubConfig reads StubConfig from the environment and validates it.
func LoadStubConfig() (StubConfig, error) {
	var config StubConfig
	if err := load(&config); err != nil {
		return StubConfig{}, err
	}
	return config, nil
}

func load(config any) error {
	if _, err := env.UnmarshalFromEnviron(config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
