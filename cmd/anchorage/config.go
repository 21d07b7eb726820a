package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
)

// Config holds CLI configuration loaded from environment variables.
type Config struct {
	Network  string
	LogLevel string
}

// loadConfig reads configuration from environment variables and validates
// it, failing fast on an unknown network name.
func loadConfig() (*Config, error) {
	cfg := &Config{
		Network:  getEnvOrDefault("ANCHORAGE_NETWORK", "regtest"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
	if _, err := networkParams(cfg.Network); err != nil {
		return nil, err
	}
	return cfg, nil
}

// networkParams maps a network name to its Bitcoin chain parameters.
func networkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q (want mainnet, testnet, signet, or regtest)", name)
	}
}

// getEnvOrDefault returns the environment variable value or a default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
