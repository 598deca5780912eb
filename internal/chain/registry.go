package chain

import (
	"errors"
	"fmt"
	"strings"
)

// Errors.
var (
	ErrNetworkNotFound  = errors.New("network not found")
	ErrUnknownNamespace = errors.New("unknown namespace")
)

// Namespace is a CAIP-2 chain namespace.
type Namespace string

const (
	NamespaceEVM     Namespace = "eip155"
	NamespaceSolana  Namespace = "solana"
	NamespaceBitcoin Namespace = "bip122"
	NamespaceSUI     Namespace = "sui"
)

// Namespaces lists every namespace the registry knows, in display order.
func Namespaces() []Namespace {
	return []Namespace{NamespaceEVM, NamespaceSolana, NamespaceBitcoin, NamespaceSUI}
}

// ParseNamespace validates a namespace string.
func ParseNamespace(s string) (Namespace, error) {
	ns := Namespace(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Namespaces() {
		if ns == known {
			return ns, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNamespace, s)
}

// Currency describes a network's native currency.
type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Network holds the metadata for a single network.
type Network struct {
	Name           string    `json:"name"`
	DisplayName    string    `json:"display_name"`
	Namespace      Namespace `json:"namespace"`
	Reference      string    `json:"reference"` // CAIP-2 reference, the chain id for eip155
	NativeCurrency Currency  `json:"native_currency"`
	RPCURL         string    `json:"rpc_url"`
	ExplorerURL    string    `json:"explorer_url"`
	Testnet        bool      `json:"testnet,omitempty"`
}

// CAIPID returns the CAIP-2 network id, e.g. "eip155:1".
func (n *Network) CAIPID() string {
	return string(n.Namespace) + ":" + n.Reference
}

// Registry is the network registry.
type Registry struct {
	networks []Network
	byName   map[string]*Network
	byCAIP   map[string]*Network
}

// NewRegistry returns the registry of all built-in networks.
func NewRegistry() *Registry {
	return newRegistry(allNetworks())
}

func newRegistry(networks []Network) *Registry {
	r := &Registry{
		networks: networks,
		byName:   make(map[string]*Network, len(networks)),
		byCAIP:   make(map[string]*Network, len(networks)),
	}
	for i := range r.networks {
		n := &r.networks[i]
		r.byName[n.Name] = n
		r.byCAIP[n.CAIPID()] = n
	}
	return r
}

// All returns every network in the registry.
func (r *Registry) All() []Network {
	return r.networks
}

// ByNamespace returns the networks of one namespace.
func (r *Registry) ByNamespace(ns Namespace) []Network {
	var out []Network
	for _, n := range r.networks {
		if n.Namespace == ns {
			out = append(out, n)
		}
	}
	return out
}

// GetByName finds a network by its slug name (e.g. "base", "solana").
func (r *Registry) GetByName(name string) (*Network, error) {
	n, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return n, nil
}

// GetByCAIPID finds a network by its CAIP-2 id.
func (r *Registry) GetByCAIPID(id string) (*Network, error) {
	n, ok := r.byCAIP[id]
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return n, nil
}

// Lookup accepts either a slug or a CAIP-2 id.
func (r *Registry) Lookup(nameOrID string) (*Network, error) {
	if strings.Contains(nameOrID, ":") {
		return r.GetByCAIPID(nameOrID)
	}
	return r.GetByName(nameOrID)
}

// --- network data ---

func allNetworks() []Network {
	eth := Currency{Name: "Ether", Symbol: "ETH", Decimals: 18}
	return []Network{
		{
			Name: "ethereum", DisplayName: "Ethereum", Namespace: NamespaceEVM, Reference: "1",
			NativeCurrency: eth,
			RPCURL:         "https://ethereum-rpc.publicnode.com",
			ExplorerURL:    "https://etherscan.io",
		},
		{
			Name: "base", DisplayName: "Base", Namespace: NamespaceEVM, Reference: "8453",
			NativeCurrency: eth,
			RPCURL:         "https://mainnet.base.org",
			ExplorerURL:    "https://basescan.org",
		},
		{
			Name: "polygon", DisplayName: "Polygon", Namespace: NamespaceEVM, Reference: "137",
			NativeCurrency: Currency{Name: "POL", Symbol: "POL", Decimals: 18},
			RPCURL:         "https://polygon-bor-rpc.publicnode.com",
			ExplorerURL:    "https://polygonscan.com",
		},
		{
			Name: "arbitrum", DisplayName: "Arbitrum", Namespace: NamespaceEVM, Reference: "42161",
			NativeCurrency: eth,
			RPCURL:         "https://arb1.arbitrum.io/rpc",
			ExplorerURL:    "https://arbiscan.io",
		},
		{
			Name: "optimism", DisplayName: "Optimism", Namespace: NamespaceEVM, Reference: "10",
			NativeCurrency: eth,
			RPCURL:         "https://mainnet.optimism.io",
			ExplorerURL:    "https://optimistic.etherscan.io",
		},
		{
			Name: "bnb", DisplayName: "BNB Chain", Namespace: NamespaceEVM, Reference: "56",
			NativeCurrency: Currency{Name: "BNB", Symbol: "BNB", Decimals: 18},
			RPCURL:         "https://bsc-dataseed.binance.org",
			ExplorerURL:    "https://bscscan.com",
		},
		{
			Name: "avalanche", DisplayName: "Avalanche", Namespace: NamespaceEVM, Reference: "43114",
			NativeCurrency: Currency{Name: "Avalanche", Symbol: "AVAX", Decimals: 18},
			RPCURL:         "https://api.avax.network/ext/bc/C/rpc",
			ExplorerURL:    "https://snowtrace.io",
		},
		{
			Name: "sepolia", DisplayName: "Sepolia", Namespace: NamespaceEVM, Reference: "11155111",
			NativeCurrency: eth,
			RPCURL:         "https://rpc.sepolia.org",
			ExplorerURL:    "https://sepolia.etherscan.io",
			Testnet:        true,
		},
		{
			Name: "solana", DisplayName: "Solana", Namespace: NamespaceSolana, Reference: "5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp",
			NativeCurrency: Currency{Name: "Solana", Symbol: "SOL", Decimals: 9},
			RPCURL:         "https://api.mainnet-beta.solana.com",
			ExplorerURL:    "https://solscan.io",
		},
		{
			Name: "solana-devnet", DisplayName: "Solana Devnet", Namespace: NamespaceSolana, Reference: "EtWTRABZaYq6iMfeYKouRu166VU2xqa1",
			NativeCurrency: Currency{Name: "Solana", Symbol: "SOL", Decimals: 9},
			RPCURL:         "https://api.devnet.solana.com",
			ExplorerURL:    "https://solscan.io/?cluster=devnet",
			Testnet:        true,
		},
		{
			Name: "bitcoin", DisplayName: "Bitcoin", Namespace: NamespaceBitcoin, Reference: "000000000019d6689c085ae165831e93",
			NativeCurrency: Currency{Name: "Bitcoin", Symbol: "BTC", Decimals: 8},
			RPCURL:         "https://mempool.space/api",
			ExplorerURL:    "https://mempool.space",
		},
		{
			Name: "sui", DisplayName: "Sui", Namespace: NamespaceSUI, Reference: "mainnet",
			NativeCurrency: Currency{Name: "Sui", Symbol: "SUI", Decimals: 9},
			RPCURL:         "https://fullnode.mainnet.sui.io:443",
			ExplorerURL:    "https://suiscan.xyz/mainnet",
		},
	}
}
