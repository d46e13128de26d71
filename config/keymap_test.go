package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hako/internal/keymap"
)

func writeKeymap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validKeymap = `
jump_input = "X"
jump_delay_ms = 80
crouch_walk_option_select = true

[keys]
30 = "A"
48 = "B"
17 = "AYPos"
31 = "AYNeg"
`

func TestLoadKeymapParsesAndValidates(t *testing.T) {
	path := writeKeymap(t, validKeymap)

	lk, err := LoadKeymap(path)
	require.NoError(t, err)
	require.Equal(t, keymap.InputX, lk.JumpInput)
	require.True(t, lk.CrouchWalk)
	require.Equal(t, int64(80_000_000), lk.JumpDelay.Nanoseconds())

	in, ok := lk.Map.Lookup(30)
	require.True(t, ok)
	require.Equal(t, keymap.InputA, in)
}

func TestLoadKeymapFingerprintIsDeterministic(t *testing.T) {
	path := writeKeymap(t, validKeymap)

	first, err := LoadKeymap(path)
	require.NoError(t, err)
	second, err := LoadKeymap(path)
	require.NoError(t, err)
	require.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestLoadKeymapRejectsUnknownInputName(t *testing.T) {
	path := writeKeymap(t, `
[keys]
30 = "NotARealInput"
`)
	_, err := LoadKeymap(path)
	require.Error(t, err)
}

func TestLoadKeymapRejectsDuplicateBinding(t *testing.T) {
	path := writeKeymap(t, `
[keys]
30 = "A"
31 = "A"
`)
	_, err := LoadKeymap(path)
	require.Error(t, err)
}

func TestLoadKeymapRejectsUnknownJumpInput(t *testing.T) {
	path := writeKeymap(t, `
jump_input = "NotReal"

[keys]
30 = "A"
`)
	_, err := LoadKeymap(path)
	require.Error(t, err)
}

func TestLoadKeymapMissingFile(t *testing.T) {
	_, err := LoadKeymap(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadKeymapAllowsStartAliasing(t *testing.T) {
	path := writeKeymap(t, `
[keys]
28 = "Start"
96 = "Start"
`)
	_, err := LoadKeymap(path)
	require.NoError(t, err)
}
