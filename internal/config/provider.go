package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/swapguard/internal/adapters/network"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/config"
)

// DefaultDataDir is ~/.swapguard, or ./.swapguard when there is no home dir
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".swapguard"
	}
	return filepath.Join(home, ".swapguard")
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}

	loadEnvFiles(dataDir)

	fileCfg, configFile, err := loadFileConfig(dataDir)
	if err != nil {
		return nil, err
	}
	if fileCfg == nil {
		fileCfg = &config.FileConfig{}
	}

	cfg := &config.RuntimeConfig{
		DataDir:        dataDir,
		ConfigFile:     configFile,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		Networks:       toNetworks(fileCfg.Networks),
		Accounts:       fileCfg.Accounts,
		Analytics:      fileCfg.Analytics,
	}
	if cfg.Accounts == nil {
		cfg.Accounts = map[string]config.AccountConfig{}
	}

	// Flags and env win over the file
	platform := firstNonEmpty(v.GetString("platform"), fileCfg.Platform, string(domain.PlatformNative))
	switch domain.Platform(strings.ToLower(platform)) {
	case domain.PlatformNative, domain.PlatformWeb:
		cfg.Platform = domain.Platform(strings.ToLower(platform))
	default:
		return nil, fmt.Errorf("invalid platform %q: expected native or web", platform)
	}
	cfg.Locale = firstNonEmpty(v.GetString("locale"), fileCfg.Locale, "en")

	// Resolve network if specified
	if networkName := v.GetString("network"); networkName != "" {
		resolved, err := network.NewResolver(cfg).ResolveNetwork(context.Background(), networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = resolved
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(dataDir string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("SWAPGUARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("data_dir", dataDir)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// flags use dashes, keys use underscores
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			panic(err)
		}
	})

	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
