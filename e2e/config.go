package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CLASSIFIER_URL targets a running service; an in-process stub is used when empty
	ClassifierURL string `envconfig:"CLASSIFIER_URL"`
	// E2E_DEBUG_JSON dumps every response body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
