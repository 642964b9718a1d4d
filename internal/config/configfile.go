package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
)

// ConfigFileName is the wallet config file looked up in the data dir
const ConfigFileName = "swapguard.toml"

// loadEnvFiles loads .env then .env.local from dir so ${VAR} references in
// swapguard.toml can be expanded. Variables already set win.
func loadEnvFiles(dir string) {
	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFileConfig loads and parses swapguard.toml if it exists.
// Returns (nil, "", nil) when there is no config file.
func loadFileConfig(dataDir string) (*config.FileConfig, string, error) {
	path := filepath.Join(dataDir, ConfigFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, "", nil
	}

	var cfg config.FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, "", fmt.Errorf("unknown keys in %s: %s", ConfigFileName, strings.Join(keys, ", "))
	}

	expandEnv(&cfg)
	return &cfg, path, nil
}

// expandEnv expands environment variables in all string fields that may
// carry secrets or endpoints
func expandEnv(cfg *config.FileConfig) {
	for name, network := range cfg.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		network.PrivateRPCURL = os.ExpandEnv(network.PrivateRPCURL)
		network.ExplorerURL = os.ExpandEnv(network.ExplorerURL)
		cfg.Networks[name] = network
	}
	for name, account := range cfg.Accounts {
		account.PrivateKey = os.ExpandEnv(account.PrivateKey)
		account.Address = os.ExpandEnv(account.Address)
		cfg.Accounts[name] = account
	}
	cfg.Analytics.File = os.ExpandEnv(cfg.Analytics.File)
}

// toNetworks converts [networks.<name>] entries
func toNetworks(entries map[string]config.NetworkConfig) map[string]*domain.Network {
	networks := make(map[string]*domain.Network, len(entries))
	for name, n := range entries {
		networks[name] = &domain.Network{
			ChainID:       n.ChainID,
			Name:          name,
			RPCURL:        n.RPCURL,
			PrivateRPCURL: n.PrivateRPCURL,
			ExplorerURL:   n.ExplorerURL,
			NativeSymbol:  n.NativeSymbol,
		}
	}
	return networks
}
