package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmkit/chain-resolver/pkg/chainid"
	"github.com/evmkit/chain-resolver/pkg/chains"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"server": {"port": "9090", "read_timeout": "10s", "write_timeout": "10s"},
		"cache": {"ttl": "1m", "cleanup_interval": "2m"},
		"aliases": {"path": "chains.yaml"},
		"jobs": {"max_concurrent": 2, "predefined": []}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "1m", cfg.Cache.TTL)
	assert.Equal(t, "chains.yaml", cfg.Aliases.Path)
	assert.Equal(t, 2, cfg.Jobs.MaxConcurrent)
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "5m", cfg.Cache.TTL)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadAliases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chains.yaml")
	content := `aliases:
  - name: eth
    chain: mainnet
  - name: matic
    chain: 137
  - name: private-net
    chain: 424242
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	aliases, err := LoadAliases(path)
	require.NoError(t, err)
	assert.Len(t, aliases, 3)
	assert.Equal(t, chainid.FromChain(chains.Mainnet), aliases["eth"])
	assert.Equal(t, chainid.FromChain(chains.Polygon), aliases["matic"])
	assert.Equal(t, chainid.FromUint64(424242), aliases["private-net"])
}

func TestLoadAliasesEmptyPath(t *testing.T) {
	aliases, err := LoadAliases("")
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

func TestLoadAliasesUnnamedEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chains.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases:\n  - chain: 1\n"), 0o644))

	_, err := LoadAliases(path)
	assert.Error(t, err)
}
