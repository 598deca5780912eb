package cmd

import (
	"testing"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	return rootCmd.Execute()
}

func TestConfigSetAccountTypeCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "config", "set-account-type", "solana", "eoa"))

	c, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, accounttype.EOA, c.DefaultAccountTypes[chain.NamespaceSolana])

	require.NoError(t, run(t, dir, "config", "unset-account-type", "solana"))
	c, err = config.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, c.DefaultAccountTypes)
}

func TestConfigSetAccountTypeRejectsUnknown(t *testing.T) {
	assert.Error(t, run(t, t.TempDir(), "config", "set-account-type", "eip155", "multisig"))
}

func TestNetworkUseCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "network", "use", "eip155:8453"))

	c, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "base", c.ActiveNetwork)

	assert.Error(t, run(t, dir, "network", "use", "atlantis"))
}

func TestConnectorUseCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "connector", "use", "walletConnect", "--namespace", "solana"))

	c, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "walletConnect", c.ActiveConnectors[chain.NamespaceSolana])

	assert.Error(t, run(t, dir, "connector", "use", "injected", "--namespace", "solana"))
}

func TestConfigSetAddressChecksums(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "config", "set-address", "eip155", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))

	c, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", c.Addresses[chain.NamespaceEVM])
}
