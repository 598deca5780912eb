package account

import (
	"errors"
	"fmt"
	"maps"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/state"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

// ErrInvalidAddress is returned for malformed addresses.
var ErrInvalidAddress = errors.New("invalid address")

type prefKey struct {
	connectorID string
	ns          chain.Namespace
}

type snapshot struct {
	addresses map[chain.Namespace]string
	preferred map[prefKey]accounttype.Type
	profile   map[chain.Namespace]string
}

// State holds the connected account per namespace and the account type in
// effect for each connector.
type State struct {
	store *state.Store[snapshot]
}

// NewState creates an empty account state.
func NewState() *State {
	return &State{store: state.New(snapshot{
		addresses: map[chain.Namespace]string{},
		preferred: map[prefKey]accounttype.Type{},
		profile:   map[chain.Namespace]string{},
	})}
}

// SetAddress records the connected address for ns. eip155 addresses are
// validated and stored in checksum form.
func (s *State) SetAddress(ns chain.Namespace, addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if ns == chain.NamespaceEVM {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
		}
		addr = common.HexToAddress(addr).Hex()
	}
	s.store.Update(func(cur snapshot) snapshot {
		next := cur
		next.addresses = maps.Clone(cur.addresses)
		next.addresses[ns] = addr
		return next
	})
	return nil
}

// Address returns the connected address for ns, or "".
func (s *State) Address(ns chain.Namespace) string {
	return s.store.Get().addresses[ns]
}

// SetProfileName records a registered account name for ns.
func (s *State) SetProfileName(ns chain.Namespace, name string) {
	s.store.Update(func(cur snapshot) snapshot {
		next := cur
		next.profile = maps.Clone(cur.profile)
		if name == "" {
			delete(next.profile, ns)
		} else {
			next.profile[ns] = name
		}
		return next
	})
}

// ProfileName returns the account name for ns, or "".
func (s *State) ProfileName(ns chain.Namespace) string {
	return s.store.Get().profile[ns]
}

// SetPreferredAccountType records the account type in effect for a
// connector on ns.
func (s *State) SetPreferredAccountType(connectorID string, ns chain.Namespace, t accounttype.Type) {
	s.store.Update(func(cur snapshot) snapshot {
		next := cur
		next.preferred = maps.Clone(cur.preferred)
		next.preferred[prefKey{connectorID, ns}] = t
		return next
	})
}

// PreferredAccountType returns the account type in effect for a connector
// on ns, or "" if none was recorded.
func (s *State) PreferredAccountType(connectorID string, ns chain.Namespace) accounttype.Type {
	return s.store.Get().preferred[prefKey{connectorID, ns}]
}

// SubscribeChanges registers ch for account change notifications.
func (s *State) SubscribeChanges(ch chan<- struct{}) event.Subscription {
	return s.store.Subscribe(ch)
}
