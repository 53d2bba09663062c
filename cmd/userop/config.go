package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultEntrypointAddressHex is the v0.6 entry point deployment.
	DefaultEntrypointAddressHex = "0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789"
	DefaultChainID              = 1
	Production                  = "production"
	Development                 = "development"
)

type yamlConfig struct {
	EntrypointAddress string `yaml:"entrypoint_address"`
	ChainID           string `yaml:"chain_id"`
	Environment       string `yaml:"environment"`
}

// Config is the resolved deployment a user operation is hashed against.
type Config struct {
	EntrypointAddress common.Address
	ChainID           *big.Int
	Environment       string
}

func defaultConfig() *Config {
	return &Config{
		EntrypointAddress: common.HexToAddress(DefaultEntrypointAddressHex),
		ChainID:           big.NewInt(DefaultChainID),
		Environment:       Development,
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.apply(raw.EntrypointAddress, raw.ChainID, raw.Environment); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// apply overrides the non-empty settings.
func (c *Config) apply(entrypoint, chainID, environment string) error {
	if entrypoint != "" {
		if !common.IsHexAddress(entrypoint) {
			return fmt.Errorf("invalid entrypoint address %q", entrypoint)
		}
		c.EntrypointAddress = common.HexToAddress(entrypoint)
	}

	if chainID != "" {
		// base 0 accepts both decimal and 0x-prefixed hex
		id, ok := new(big.Int).SetString(chainID, 0)
		if !ok || id.Sign() < 0 {
			return fmt.Errorf("invalid chain id %q", chainID)
		}
		c.ChainID = id
	}

	if environment != "" {
		c.Environment = environment
	}
	return nil
}

// newLogger builds a JSON logger for production and a console logger otherwise.
func newLogger(environment string) (*zap.Logger, error) {
	if environment == Production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
