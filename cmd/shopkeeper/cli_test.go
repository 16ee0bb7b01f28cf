package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkeeper/internal/catalog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCheck(t *testing.T) {
	path := writeConfig(t, `
default_shop: ghost
shops:
  a:
    trades:
      - item: emerlad:1
        trade: diamond:1
`)

	out, err := run(t, "check", "-c", path)
	require.NoError(t, err)

	assert.Contains(t, out, "warning [a] shops.a.trades[0].item: [unknown_kind]")
	assert.Contains(t, out, "did you mean emerald")
	assert.Contains(t, out, `default shop "ghost" does not exist`)

	_, err = run(t, "check", "--strict", "-c", path)
	require.ErrorIs(t, err, errCheckFailed)
}

func TestCheckMissingFile(t *testing.T) {
	_, err := run(t, "check", "-c", filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestListAndShowDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	out, err := run(t, "list", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "example *")
	assert.Contains(t, out, "Example Shop")

	out, err = run(t, "show", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "example (Example Shop)")
	assert.Contains(t, out, "1. cobblestone:64 -> diamond:1  [uses 999999, price x0.05, xp 0]")
	assert.Contains(t, out, "emerald:10 + book:1 -> enchanted_book:1 {mending:1}")
}

func TestShowUnknownShop(t *testing.T) {
	path := writeConfig(t, "shops:\n  a: {}\n")

	_, err := run(t, "show", "nope", "-c", path)
	require.ErrorIs(t, err, catalog.ErrShopNotFound)

	_, err = run(t, "show", "-c", path)
	require.ErrorIs(t, err, catalog.ErrShopNotFound)

	out, err := run(t, "show", "A", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no trades")
}

func TestCreateAndDelete(t *testing.T) {
	path := writeConfig(t, "shops:\n  a: {}\n")

	out, err := run(t, "create", "Bazaar", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, `created shop "bazaar"`)

	_, err = run(t, "create", "bazaar", "-c", path)
	require.ErrorIs(t, err, catalog.ErrShopExists)

	out, err = run(t, "show", "bazaar", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cobblestone:64 -> diamond:1")

	_, err = run(t, "delete", "a", "-c", path)
	require.NoError(t, err)

	out, err = run(t, "list", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bazaar")
	assert.NotContains(t, out, "\na ")
}

func TestRegistryOverlay(t *testing.T) {
	dir := t.TempDir()

	reg := filepath.Join(dir, "registry.yml")
	require.NoError(t, os.WriteFile(reg, []byte("kinds:\n  - max_stack: 8\n    ids: [ruby]\n"), 0o644))

	path := writeConfig(t, "shops:\n  gems:\n    trades:\n      - item: ruby:20\n        trade: diamond:1\n")

	out, err := run(t, "show", "gems", "-c", path, "--registry", reg)
	require.NoError(t, err)
	assert.Contains(t, out, "ruby:8 -> diamond:1")

	_, err = run(t, "show", "gems", "-c", path, "--registry", filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}

func TestCheckFailsOnMergeCycle(t *testing.T) {
	path := writeConfig(t, "shops:\n  a: &x\n    <<: *x\n")

	out, err := run(t, "check", "-c", path)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "[merge_cycle]")
}

func TestSettingsFromEnvironment(t *testing.T) {
	path := writeConfig(t, "shops:\n  envshop: {}\n")
	t.Setenv("SHOPKEEPER_CONFIG", path)

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "envshop")

	other := writeConfig(t, "shops:\n  flagshop: {}\n")

	out, err = run(t, "list", "-c", other)
	require.NoError(t, err)
	assert.Contains(t, out, "flagshop")
	assert.NotContains(t, out, "envshop")
}
