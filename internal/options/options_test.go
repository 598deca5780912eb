package options_test

import (
	"testing"
	"time"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/options"
	"github.com/stretchr/testify/assert"
)

func TestAccountTypeConfigurationNeverNil(t *testing.T) {
	s := options.NewState(options.Options{ProjectID: "test-project-id"})
	cfg := s.AccountTypeConfiguration()
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestAccountTypeConfigurationIsACopy(t *testing.T) {
	src := options.AccountTypes{chain.NamespaceEVM: accounttype.SmartAccount}
	s := options.NewState(options.Options{DefaultAccountTypes: src})

	src[chain.NamespaceEVM] = accounttype.EOA
	got := s.AccountTypeConfiguration()
	assert.Equal(t, accounttype.SmartAccount, got[chain.NamespaceEVM])

	got[chain.NamespaceSolana] = accounttype.EOA
	_, ok := s.AccountTypeConfiguration()[chain.NamespaceSolana]
	assert.False(t, ok)
}

func TestSetNotifies(t *testing.T) {
	s := options.NewState(options.Options{})
	ch := make(chan struct{}, 1)
	sub := s.SubscribeChanges(ch)
	defer sub.Unsubscribe()

	s.Set(options.Options{ProjectID: "p", DefaultAccountTypes: options.AccountTypes{chain.NamespaceEVM: accounttype.EOA}})

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected change notification")
	}
	assert.Equal(t, "p", s.Options().ProjectID)
	assert.Equal(t, accounttype.EOA, s.AccountTypeConfiguration()[chain.NamespaceEVM])
}
