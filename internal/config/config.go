package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the schema tooling configuration
// See .env.example for more documentation
type Config struct {
	// Checkout (or http(s) base URL) of the upstream BendV3 repository.
	// Relative paths resolve from the working directory, which is the
	// repository root under go generate, so the default is a sibling checkout.
	BendV3Path string `env:"BENDV3_PATH" envDefault:"../bendv3"`
	// Schema module relative to BendV3Path
	SchemaSubpath string `env:"BENDV3_SCHEMA_SUBPATH" envDefault:"src/api-v3/schemas/book.yaml"`
	// Entity name to module export, e.g. "Book=BookSchema,WorkDTO=WorkDTOSchema".
	// Same syntax as the --export flag.
	Exports map[string]string `env:"BENDV3_EXPORTS" envDefault:"Book=BookSchema" envKeyValSeparator:"="`

	Output      string        `env:"SCHEMAGEN_OUTPUT" envDefault:"test/fixtures/bendv3_schemas.json"`
	LoadTimeout time.Duration `env:"SCHEMAGEN_LOAD_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"SCHEMAGEN_LOG_LEVEL" envDefault:"info"`
}

// NewConfig creates a new configuration from the environment
func NewConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(cfg.Exports) == 0 {
		return nil, errors.New("invalid configuration: BENDV3_EXPORTS is empty")
	}
	return &cfg, nil
}

// LoadEnvFiles loads .env.local and .env from dir. Variables already set in
// the environment win, then .env.local, then .env. Missing files are ignored.
func LoadEnvFiles(dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env.local"))
	_ = godotenv.Load(filepath.Join(dir, ".env"))
}
