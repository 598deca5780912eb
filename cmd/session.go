package cmd

import (
	"errors"

	"github.com/Mohsinsiddi/w3account/internal/account"
	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/config"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/options"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	"go.uber.org/zap"
)

// session wires the state providers for one command run.
type session struct {
	chains     *chain.State
	connectors *connector.Registry
	options    *options.State
	accounts   *account.State
	auth       *connector.SessionStore
	resolver   *toggle.Resolver
	log        *zap.Logger
}

func newSession(c *config.Config, auth *connector.SessionStore, log *zap.Logger) (*session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &session{
		chains:     chain.NewState(chain.NewRegistry(), c.SmartAccountNetworks),
		connectors: connector.NewRegistry(connector.WithActive(c.ActiveConnectors)),
		options:    options.NewState(c.Options()),
		accounts:   account.NewState(),
		auth:       auth,
		log:        log,
	}
	if err := s.chains.SetActiveNetwork(c.ActiveNetwork); err != nil {
		return nil, err
	}
	for ns, addr := range c.Addresses {
		if err := s.accounts.SetAddress(ns, addr); err != nil {
			log.Warn("ignoring configured address", zap.String("namespace", string(ns)), zap.Error(err))
		}
	}
	for ns, id := range c.ActiveConnectors {
		s.accounts.SetPreferredAccountType(id, ns, s.initialAccountType(ns))
	}
	s.resolver = toggle.NewResolver(s.chains, s.connectors, s.options, log)
	return s, nil
}

// initialAccountType is the account type a fresh connection starts with:
// the configured default, else a smart account where the network has them.
func (s *session) initialAccountType(ns chain.Namespace) accounttype.Type {
	if t := s.options.AccountTypeConfiguration()[ns]; t.Valid() {
		return t
	}
	if s.chains.CheckIfSmartAccountEnabled(ns) {
		return accounttype.SmartAccount
	}
	return accounttype.EOA
}

// switchAccountType flips the account type in effect on the active namespace.
func (s *session) switchAccountType() {
	ns, _ := s.chains.ActiveNamespaceAndNetwork()
	id := s.connectors.ConnectorID(ns)
	if id == "" {
		return
	}
	cur := s.accounts.PreferredAccountType(id, ns)
	s.accounts.SetPreferredAccountType(id, ns, cur.Other())
}

func (s *session) settingsView(d toggle.Decision) ui.SettingsView {
	ns, network := s.chains.ActiveNamespaceAndNetwork()
	v := ui.SettingsView{
		Address:        s.accounts.Address(ns),
		ProfileName:    s.accounts.ProfileName(ns),
		Namespace:      string(ns),
		NamesSupported: s.chains.CheckIfNamesSupported(ns),
		Decision:       d,
	}
	if network != nil {
		v.NetworkName = network.DisplayName
	}
	if ident := s.connectors.ConnectorIdentity(ns); ident != nil {
		if c, err := s.connectors.Connector(ident.ID); err == nil {
			v.ConnectorName = c.Name
		}
		v.EmbeddedWallet = ident.IsEmbeddedWallet()
		v.Preferred = s.accounts.PreferredAccountType(ident.ID, ns)
	}
	if v.EmbeddedWallet && s.auth != nil {
		email, err := s.auth.Email()
		if err == nil {
			v.Email = email
		} else if !errors.Is(err, connector.ErrNoSession) {
			s.log.Warn("reading auth session", zap.Error(err))
		}
	}
	return v
}
