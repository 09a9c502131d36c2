package main

import (
	"fmt"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

// envConfig holds settings read from the environment. Flags take precedence.
type envConfig struct {
	ConfigPath string `env:"INVENTORIZE_CONFIG"`
	Inventory  string `env:"INVENTORIZE_INVENTORY"`
	Repository string `env:"INVENTORIZE_REPOSITORY"`
	Verbose    int    `env:"INVENTORIZE_VERBOSE,default=0"`
	Format     string `env:"INVENTORIZE_FORMAT"`
	Debug      string `env:"INVENTORIZE_DEBUG"`
}

// loadEnv optionally seeds the environment from envFile, then reads envConfig.
// Variables already set in the environment win over the file.
func loadEnv(envFile string) (*envConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	var cfg envConfig
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return &cfg, nil
}
