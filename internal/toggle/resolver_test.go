package toggle_test

import (
	"testing"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/options"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type providers struct {
	chains     *chain.State
	connectors *connector.Registry
	options    *options.State
}

// newProviders returns live providers with Ethereum active, the auth
// connector in use and smart accounts enabled on Ethereum.
func newProviders(t *testing.T, types options.AccountTypes) providers {
	t.Helper()
	chains := chain.NewState(chain.NewRegistry(), []string{"eip155:1"})
	require.NoError(t, chains.SetActiveNetwork("ethereum"))

	conns := connector.NewRegistry()
	require.NoError(t, conns.Use(chain.NamespaceEVM, connector.AuthConnectorID))
	require.NoError(t, conns.Use(chain.NamespaceSolana, connector.AuthConnectorID))

	return providers{
		chains:     chains,
		connectors: conns,
		options:    options.NewState(options.Options{ProjectID: "test-project-id", DefaultAccountTypes: types}),
	}
}

func (p providers) resolver() *toggle.Resolver {
	return toggle.NewResolver(p.chains, p.connectors, p.options, zap.NewNop())
}

func TestResolverShowsForSmartAccountConfig(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	assert.Equal(t, toggle.Decision{Show: true, Reason: toggle.ReasonShown}, p.resolver().Resolve())
}

func TestResolverHidesForEOAConfig(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.EOA})
	assert.Equal(t, toggle.ReasonEOAOnly, p.resolver().Resolve().Reason)
}

func TestResolverShowsForEmptyConfig(t *testing.T) {
	p := newProviders(t, options.AccountTypes{})
	assert.True(t, p.resolver().Resolve().Show)
}

func TestResolverHidesWithoutAuthConnector(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	require.NoError(t, p.connectors.Remove(connector.AuthConnectorID))
	assert.Equal(t, toggle.ReasonNoConnector, p.resolver().Resolve().Reason)
}

func TestResolverHidesForOtherConnector(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	require.NoError(t, p.connectors.Use(chain.NamespaceEVM, connector.WalletConnectID))
	assert.Equal(t, toggle.ReasonNotEmbeddedWallet, p.resolver().Resolve().Reason)
}

func TestResolverHidesWhenSmartAccountsDisabled(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	require.NoError(t, p.chains.SetActiveNetwork("polygon"))
	assert.Equal(t, toggle.ReasonSmartAccountDisabled, p.resolver().Resolve().Reason)
}

func TestResolverSolanaConfiguredEOA(t *testing.T) {
	p := newProviders(t, options.AccountTypes{
		chain.NamespaceEVM:    accounttype.SmartAccount,
		chain.NamespaceSolana: accounttype.EOA,
	})
	require.NoError(t, p.chains.SetActiveNetwork("solana"))
	assert.False(t, p.resolver().Resolve().Show)
}

func TestResolverNothingActive(t *testing.T) {
	p := newProviders(t, nil)
	p.chains = chain.NewState(chain.NewRegistry(), nil)

	in, err := p.resolver().Inputs()
	require.NoError(t, err)
	assert.Nil(t, in.Connector, "providers are not consulted without a namespace")
	assert.Equal(t, toggle.ReasonNoNamespace, p.resolver().Resolve().Reason)
}

type faultyConnectors struct{}

func (faultyConnectors) ConnectorIdentity(chain.Namespace) *connector.Identity {
	panic("connector registry unreachable")
}

func TestResolverFailsClosedOnProviderFault(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	r := toggle.NewResolver(p.chains, faultyConnectors{}, p.options, nil)

	_, err := r.Inputs()
	assert.Error(t, err)

	assert.NotPanics(t, func() {
		assert.Equal(t, toggle.Decision{Show: false, Reason: toggle.ReasonProviderFault}, r.Resolve())
	})
}
