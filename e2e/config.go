package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_CORPUS_DIR points the scenarios at a real corpus, a generated one is used when empty
	CorpusDir string `envconfig:"E2E_CORPUS_DIR"`
	// E2E_N_FEATURES is deliberately small so that columns collide
	NFeatures int `envconfig:"E2E_N_FEATURES" default:"64"`
	// E2E_DEBUG_JSON allows dumping fit runs and feature names as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
