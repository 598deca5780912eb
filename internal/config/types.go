package config

import (
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/options"
)

// Config holds all w3account configuration.
type Config struct {
	ProjectID            string                     `json:"project_id"`
	ActiveNetwork        string                     `json:"active_network"` // slug or CAIP-2 id
	ActiveConnectors     map[chain.Namespace]string `json:"active_connectors"`
	DefaultAccountTypes  options.AccountTypes       `json:"default_account_types"`
	SmartAccountNetworks []string                   `json:"smart_account_networks"` // CAIP-2 ids
	Addresses            map[chain.Namespace]string `json:"addresses"`

	// internal: config dir path used for Save()
	configDir string
}
