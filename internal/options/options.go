package options

import (
	"maps"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/state"
	"github.com/ethereum/go-ethereum/event"
)

// AccountTypes maps a namespace to the account type new embedded-wallet
// accounts default to. A missing entry means no restriction.
type AccountTypes map[chain.Namespace]accounttype.Type

// Options is the user-configurable option set.
type Options struct {
	ProjectID           string
	DefaultAccountTypes AccountTypes
}

// State holds the options for the running session.
type State struct {
	store *state.Store[Options]
}

// NewState creates options state. The account type map is copied.
func NewState(opts Options) *State {
	opts.DefaultAccountTypes = cloneTypes(opts.DefaultAccountTypes)
	return &State{store: state.New(opts)}
}

// Options returns the current options. The returned map is a copy.
func (s *State) Options() Options {
	o := s.store.Get()
	o.DefaultAccountTypes = cloneTypes(o.DefaultAccountTypes)
	return o
}

// Set replaces the options wholesale.
func (s *State) Set(opts Options) {
	opts.DefaultAccountTypes = cloneTypes(opts.DefaultAccountTypes)
	s.store.Set(opts)
}

// AccountTypeConfiguration returns the per-namespace default account types.
// Never nil.
func (s *State) AccountTypeConfiguration() AccountTypes {
	return cloneTypes(s.store.Get().DefaultAccountTypes)
}

// SubscribeChanges registers ch for option change notifications.
func (s *State) SubscribeChanges(ch chan<- struct{}) event.Subscription {
	return s.store.Subscribe(ch)
}

func cloneTypes(m AccountTypes) AccountTypes {
	if m == nil {
		return AccountTypes{}
	}
	return maps.Clone(m)
}
