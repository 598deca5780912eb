package toggle_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Mohsinsiddi/w3account/internal/account"
	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/options"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatcher(t *testing.T, p providers, accounts *account.State) *toggle.Watcher {
	t.Helper()
	w := toggle.NewWatcher(p.resolver(), p.chains, p.connectors, p.options, accounts)
	t.Cleanup(w.Close)
	return w
}

func waitFor(t *testing.T, ch <-chan toggle.Decision) toggle.Decision {
	t.Helper()
	select {
	case d := <-ch:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("no re-evaluation")
		return toggle.Decision{}
	}
}

func TestWatcherInitialDecision(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	w := newWatcher(t, p, account.NewState())

	assert.True(t, w.Current().Show)
	assert.Equal(t, uint64(1), w.Evaluations())
	assert.Equal(t, 4, w.Subscriptions())
}

func TestWatcherReevaluatesOnEachProvider(t *testing.T) {
	p := newProviders(t, options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount})
	accounts := account.NewState()
	w := newWatcher(t, p, accounts)

	got := make(chan toggle.Decision, 8)
	w.OnChange(func(d toggle.Decision) { got <- d })

	require.NoError(t, p.connectors.Use(chain.NamespaceEVM, connector.InjectedID))
	assert.Equal(t, toggle.ReasonNotEmbeddedWallet, waitFor(t, got).Reason)

	require.NoError(t, p.connectors.Use(chain.NamespaceEVM, connector.AuthConnectorID))
	assert.True(t, waitFor(t, got).Show)

	require.NoError(t, p.chains.SetActiveNetwork("polygon"))
	assert.Equal(t, toggle.ReasonSmartAccountDisabled, waitFor(t, got).Reason)

	p.chains.SetSmartAccountNetworks([]string{"eip155:137"})
	assert.True(t, waitFor(t, got).Show)

	p.options.Set(options.Options{DefaultAccountTypes: options.AccountTypes{chain.NamespaceEVM: accounttype.EOA}})
	assert.Equal(t, toggle.ReasonEOAOnly, waitFor(t, got).Reason)

	accounts.SetPreferredAccountType(connector.AuthConnectorID, chain.NamespaceEVM, accounttype.EOA)
	assert.Equal(t, toggle.ReasonEOAOnly, waitFor(t, got).Reason)

	assert.Equal(t, toggle.ReasonEOAOnly, w.Current().Reason)
	assert.Equal(t, uint64(7), w.Evaluations())
}

func TestWatcherRemoveListener(t *testing.T) {
	p := newProviders(t, nil)
	w := newWatcher(t, p, account.NewState())

	removed := make(chan toggle.Decision, 4)
	kept := make(chan toggle.Decision, 4)
	remove := w.OnChange(func(d toggle.Decision) { removed <- d })
	w.OnChange(func(d toggle.Decision) { kept <- d })
	remove()

	require.NoError(t, p.chains.SetActiveNetwork("base"))
	waitFor(t, kept)
	assert.Len(t, removed, 0)
}

func TestWatcherCloseUnsubscribes(t *testing.T) {
	p := newProviders(t, nil)
	w := toggle.NewWatcher(p.resolver(), p.chains, p.connectors, p.options)
	require.Equal(t, 3, w.Subscriptions())

	w.Close()
	assert.Equal(t, 0, w.Subscriptions())

	// Providers must not block on a closed watcher.
	done := make(chan struct{})
	go func() {
		_ = p.chains.SetActiveNetwork("base")
		p.connectors.Disconnect(chain.NamespaceEVM)
		p.options.Set(options.Options{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("provider blocked after Close")
	}
	assert.Equal(t, uint64(1), w.Evaluations())

	// Idempotent.
	assert.NotPanics(t, w.Close)
}

// racingOptions changes the configuration right after the first read, before
// that read's result is used.
type racingOptions struct {
	*options.State
	once sync.Once
}

func (r *racingOptions) AccountTypeConfiguration() options.AccountTypes {
	cur := r.State.AccountTypeConfiguration()
	r.once.Do(func() {
		go r.State.Set(options.Options{DefaultAccountTypes: options.AccountTypes{chain.NamespaceEVM: accounttype.EOA}})
		for r.State.AccountTypeConfiguration()[chain.NamespaceEVM] != accounttype.EOA {
			time.Sleep(time.Millisecond)
		}
	})
	return cur
}

func TestWatcherCatchesChangeDuringFirstResolve(t *testing.T) {
	p := newProviders(t, nil)
	opts := &racingOptions{State: p.options}
	r := toggle.NewResolver(p.chains, p.connectors, opts, nil)
	w := toggle.NewWatcher(r, p.chains, p.connectors, p.options)
	t.Cleanup(w.Close)

	assert.Eventually(t, func() bool {
		return w.Current().Reason == toggle.ReasonEOAOnly
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, r.Resolve(), w.Current())
}

func TestWatcherCloseHandedOffFromListener(t *testing.T) {
	p := newProviders(t, nil)
	w := newWatcher(t, p, account.NewState())

	closed := make(chan struct{})
	w.OnChange(func(toggle.Decision) {
		go func() {
			w.Close()
			close(closed)
		}()
	})

	require.NoError(t, p.chains.SetActiveNetwork("base"))
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.Equal(t, 0, w.Subscriptions())
}
