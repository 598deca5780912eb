package connector

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/state"
	"github.com/ethereum/go-ethereum/event"
)

// Errors.
var (
	ErrConnectorNotFound    = errors.New("connector not found")
	ErrConnectorExists      = errors.New("connector already registered")
	ErrUnsupportedNamespace = errors.New("connector does not support namespace")
)

// Kind is the connector category.
type Kind string

const (
	KindAuth          Kind = "AUTH"
	KindInjected      Kind = "INJECTED"
	KindWalletConnect Kind = "WALLET_CONNECT"
	KindAnnounced     Kind = "ANNOUNCED"
	KindExternal      Kind = "EXTERNAL"
)

// Well-known connector ids.
const (
	AuthConnectorID = "ID_AUTH"
	WalletConnectID = "walletConnect"
	InjectedID      = "injected"
)

// Connector is a wallet connector that can serve one or more namespaces.
type Connector struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Kind       Kind              `json:"kind"`
	Namespaces []chain.Namespace `json:"namespaces"`
}

// Supports reports whether c can connect on ns.
func (c *Connector) Supports(ns chain.Namespace) bool {
	return slices.Contains(c.Namespaces, ns)
}

// Identity is what readers learn about the active connector.
type Identity struct {
	ID   string
	Kind Kind
}

// IsEmbeddedWallet reports whether the identity belongs to the auth
// (embedded wallet) connector. The id decides, not the kind.
func (i *Identity) IsEmbeddedWallet() bool {
	return i != nil && i.ID == AuthConnectorID
}

// DefaultConnectors returns the connectors registered out of the box.
func DefaultConnectors() []Connector {
	return []Connector{
		{
			ID: AuthConnectorID, Name: "Email & Socials", Kind: KindAuth,
			Namespaces: []chain.Namespace{chain.NamespaceEVM, chain.NamespaceSolana},
		},
		{
			ID: WalletConnectID, Name: "WalletConnect", Kind: KindWalletConnect,
			Namespaces: chain.Namespaces(),
		},
		{
			ID: InjectedID, Name: "Browser Wallet", Kind: KindInjected,
			Namespaces: []chain.Namespace{chain.NamespaceEVM},
		},
	}
}

type snapshot struct {
	connectors []Connector
	active     map[chain.Namespace]string
}

// Registry tracks registered connectors and the active one per namespace.
type Registry struct {
	store *state.Store[snapshot]
}

// Option configures a Registry.
type Option func(*snapshot)

// WithConnectors replaces the default connector set.
func WithConnectors(cs ...Connector) Option {
	return func(s *snapshot) {
		s.connectors = slices.Clone(cs)
	}
}

// WithActive preselects active connectors per namespace.
func WithActive(active map[chain.Namespace]string) Option {
	return func(s *snapshot) {
		s.active = maps.Clone(active)
	}
}

// NewRegistry creates a connector registry.
func NewRegistry(opts ...Option) *Registry {
	snap := snapshot{connectors: DefaultConnectors()}
	for _, opt := range opts {
		opt(&snap)
	}
	if snap.active == nil {
		snap.active = make(map[chain.Namespace]string)
	}
	return &Registry{store: state.New(snap)}
}

// Register adds a connector.
func (r *Registry) Register(c Connector) error {
	if _, err := r.Connector(c.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrConnectorExists, c.ID)
	}
	r.store.Update(func(cur snapshot) snapshot {
		next := cur
		next.connectors = append(slices.Clone(cur.connectors), c)
		return next
	})
	return nil
}

// Remove unregisters a connector and deactivates it wherever it was active.
func (r *Registry) Remove(id string) error {
	if _, err := r.Connector(id); err != nil {
		return err
	}
	r.store.Update(func(cur snapshot) snapshot {
		next := snapshot{active: make(map[chain.Namespace]string, len(cur.active))}
		for _, c := range cur.connectors {
			if c.ID != id {
				next.connectors = append(next.connectors, c)
			}
		}
		for ns, a := range cur.active {
			if a != id {
				next.active[ns] = a
			}
		}
		return next
	})
	return nil
}

// Connector returns a registered connector by id.
func (r *Registry) Connector(id string) (*Connector, error) {
	for _, c := range r.store.Get().connectors {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrConnectorNotFound, id)
}

// List returns every registered connector.
func (r *Registry) List() []Connector {
	return slices.Clone(r.store.Get().connectors)
}

// ForNamespace returns the connectors that support ns.
func (r *Registry) ForNamespace(ns chain.Namespace) []Connector {
	var out []Connector
	for _, c := range r.store.Get().connectors {
		if c.Supports(ns) {
			out = append(out, c)
		}
	}
	return out
}

// Use makes id the active connector for ns.
func (r *Registry) Use(ns chain.Namespace, id string) error {
	c, err := r.Connector(id)
	if err != nil {
		return err
	}
	if !c.Supports(ns) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedNamespace, id, ns)
	}
	r.store.Update(func(cur snapshot) snapshot {
		next := cur
		next.active = maps.Clone(cur.active)
		next.active[ns] = id
		return next
	})
	return nil
}

// Disconnect clears the active connector for ns.
func (r *Registry) Disconnect(ns chain.Namespace) {
	r.store.Update(func(cur snapshot) snapshot {
		next := cur
		next.active = maps.Clone(cur.active)
		delete(next.active, ns)
		return next
	})
}

// Active returns a copy of the active connector map.
func (r *Registry) Active() map[chain.Namespace]string {
	return maps.Clone(r.store.Get().active)
}

// ConnectorID returns the active connector id for ns, or "".
func (r *Registry) ConnectorID(ns chain.Namespace) string {
	return r.store.Get().active[ns]
}

// AuthConnector returns the auth connector if it is registered for ns.
func (r *Registry) AuthConnector(ns chain.Namespace) *Connector {
	c, err := r.Connector(AuthConnectorID)
	if err != nil || !c.Supports(ns) {
		return nil
	}
	return c
}

// ConnectorIdentity returns the identity of the active connector for ns, or
// nil when no connector registered for ns is active.
func (r *Registry) ConnectorIdentity(ns chain.Namespace) *Identity {
	id := r.ConnectorID(ns)
	if id == "" {
		return nil
	}
	c, err := r.Connector(id)
	if err != nil || !c.Supports(ns) {
		return nil
	}
	return &Identity{ID: c.ID, Kind: c.Kind}
}

// SubscribeChanges registers ch for connector change notifications.
func (r *Registry) SubscribeChanges(ch chan<- struct{}) event.Subscription {
	return r.store.Subscribe(ch)
}
