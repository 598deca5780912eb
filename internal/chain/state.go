package chain

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Mohsinsiddi/w3account/internal/state"
	"github.com/ethereum/go-ethereum/event"
)

// Snapshot is an immutable view of the chain state.
type Snapshot struct {
	ActiveNamespace Namespace
	// Active network per namespace; switching namespace keeps the others.
	Networks map[Namespace]*Network
	// CAIP-2 ids of networks where the embedded wallet can deploy smart accounts.
	SmartAccountNetworks []string
}

// State owns the active namespace and network.
type State struct {
	reg   *Registry
	store *state.Store[Snapshot]
}

// NewState creates a chain state with no active network.
func NewState(reg *Registry, smartAccountNetworks []string) *State {
	return &State{
		reg: reg,
		store: state.New(Snapshot{
			Networks:             map[Namespace]*Network{},
			SmartAccountNetworks: slices.Clone(smartAccountNetworks),
		}),
	}
}

// Registry returns the network registry backing this state.
func (s *State) Registry() *Registry {
	return s.reg
}

// Snapshot returns the current chain state.
func (s *State) Snapshot() Snapshot {
	return s.store.Get()
}

// SetActiveNetwork activates a network (slug or CAIP-2 id) and its namespace.
func (s *State) SetActiveNetwork(nameOrID string) error {
	n, err := s.reg.Lookup(nameOrID)
	if err != nil {
		return fmt.Errorf("%w: %s", err, nameOrID)
	}
	s.store.Update(func(cur Snapshot) Snapshot {
		next := cur
		next.Networks = maps.Clone(cur.Networks)
		next.Networks[n.Namespace] = n
		next.ActiveNamespace = n.Namespace
		return next
	})
	return nil
}

// SetSmartAccountNetworks replaces the list of smart-account capable networks.
func (s *State) SetSmartAccountNetworks(ids []string) {
	s.store.Update(func(cur Snapshot) Snapshot {
		next := cur
		next.SmartAccountNetworks = slices.Clone(ids)
		return next
	})
}

// ActiveNamespaceAndNetwork returns the active namespace and its network.
// Both are zero when nothing is active.
func (s *State) ActiveNamespaceAndNetwork() (Namespace, *Network) {
	snap := s.store.Get()
	return snap.ActiveNamespace, snap.Networks[snap.ActiveNamespace]
}

// CheckIfSmartAccountEnabled reports whether the active network of ns is in
// the smart-account network list. Only eip155 networks qualify.
func (s *State) CheckIfSmartAccountEnabled(ns Namespace) bool {
	if ns != NamespaceEVM {
		return false
	}
	snap := s.store.Get()
	n := snap.Networks[ns]
	if n == nil {
		return false
	}
	return slices.Contains(snap.SmartAccountNetworks, n.CAIPID())
}

// CheckIfNamesSupported reports whether account names can be registered on ns.
func (s *State) CheckIfNamesSupported(ns Namespace) bool {
	return ns == NamespaceEVM
}

// SubscribeChanges registers ch for chain state change notifications.
func (s *State) SubscribeChanges(ch chan<- struct{}) event.Subscription {
	return s.store.Subscribe(ch)
}
