package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/options"
)

const (
	defaultNetwork = "ethereum"
	configFile     = "config.json"
)

// DefaultSmartAccountNetworks are the networks the embedded wallet can
// deploy smart accounts on when nothing else is configured.
var DefaultSmartAccountNetworks = []string{
	"eip155:1",     // Ethereum
	"eip155:8453",  // Base
	"eip155:137",   // Polygon
	"eip155:42161", // Arbitrum
	"eip155:10",    // Optimism
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.w3account.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3account")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	// Unmarshal merges into non-nil maps, so a saved empty map would get
	// the default connector back. Defaults apply only when the key is absent.
	cfg.ActiveConnectors = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.ActiveConnectors == nil {
		cfg.ActiveConnectors = defaultConnectors()
	}
	if cfg.DefaultAccountTypes == nil {
		cfg.DefaultAccountTypes = make(options.AccountTypes)
	}
	if cfg.Addresses == nil {
		cfg.Addresses = make(map[chain.Namespace]string)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// SetAccountType restricts (or explicitly allows) account types on a namespace.
func (c *Config) SetAccountType(namespace, value string) error {
	ns, err := chain.ParseNamespace(namespace)
	if err != nil {
		return err
	}
	t, err := accounttype.Parse(value)
	if err != nil {
		return err
	}
	c.DefaultAccountTypes[ns] = t
	return nil
}

// UnsetAccountType removes the namespace entry, making it permissive again.
func (c *Config) UnsetAccountType(namespace string) error {
	ns, err := chain.ParseNamespace(namespace)
	if err != nil {
		return err
	}
	if _, ok := c.DefaultAccountTypes[ns]; !ok {
		return fmt.Errorf("no account type configured for %s", ns)
	}
	delete(c.DefaultAccountTypes, ns)
	return nil
}

// AddSmartAccountNetwork marks a CAIP-2 network id as smart-account capable.
func (c *Config) AddSmartAccountNetwork(id string) error {
	if slices.Contains(c.SmartAccountNetworks, id) {
		return fmt.Errorf("network %s already enabled", id)
	}
	c.SmartAccountNetworks = append(c.SmartAccountNetworks, id)
	return nil
}

// RemoveSmartAccountNetwork removes a CAIP-2 network id from the list.
func (c *Config) RemoveSmartAccountNetwork(id string) error {
	idx := slices.Index(c.SmartAccountNetworks, id)
	if idx == -1 {
		return fmt.Errorf("network %s not enabled", id)
	}
	c.SmartAccountNetworks = slices.Delete(c.SmartAccountNetworks, idx, idx+1)
	return nil
}

// Options returns the option set the session starts with.
func (c *Config) Options() options.Options {
	return options.Options{
		ProjectID:           c.ProjectID,
		DefaultAccountTypes: c.DefaultAccountTypes,
	}
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		ActiveNetwork:        defaultNetwork,
		ActiveConnectors:     defaultConnectors(),
		DefaultAccountTypes:  make(options.AccountTypes),
		SmartAccountNetworks: slices.Clone(DefaultSmartAccountNetworks),
		Addresses:            make(map[chain.Namespace]string),
		configDir:            dir,
	}
}

func defaultConnectors() map[chain.Namespace]string {
	return map[chain.Namespace]string{
		chain.NamespaceEVM: connector.AuthConnectorID,
	}
}
