package config

import (
	"time"

	"github.com/trebuchet-org/swapguard/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	DataDir    string
	ConfigFile string // "" when no swapguard.toml was found

	// Context settings
	Network  *domain.Network // nil if not specified
	Platform domain.Platform
	Locale   string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Resolved configurations
	Networks  map[string]*domain.Network
	Accounts  map[string]AccountConfig
	Analytics AnalyticsConfig
}

// AccountConfig is an [accounts.<name>] entry
type AccountConfig struct {
	Type       string `toml:"type"`
	Address    string `toml:"address,omitempty"`
	PrivateKey string `toml:"private_key,omitempty"`
}

// AnalyticsConfig is the [analytics] section
type AnalyticsConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file,omitempty"`
}

// NetworkConfig is a [networks.<name>] entry
type NetworkConfig struct {
	ChainID       uint64 `toml:"chain_id"`
	RPCURL        string `toml:"rpc_url"`
	PrivateRPCURL string `toml:"private_rpc_url,omitempty"`
	ExplorerURL   string `toml:"explorer_url,omitempty"`
	NativeSymbol  string `toml:"native_symbol,omitempty"`
}

// FileConfig is the on-disk swapguard.toml layout
type FileConfig struct {
	Platform  string                   `toml:"platform,omitempty"`
	Locale    string                   `toml:"locale,omitempty"`
	Networks  map[string]NetworkConfig `toml:"networks"`
	Accounts  map[string]AccountConfig `toml:"accounts"`
	Analytics AnalyticsConfig          `toml:"analytics"`
}
