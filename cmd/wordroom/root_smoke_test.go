package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIWithoutTerminalReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := runTUI(t.Context(), nil)
	assert.Error(t, err)
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"wordroom", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"key", "define", "export", "import", "random", "open", "about"})

	assert.NotEmpty(t, root.Version)

	for _, flag := range []string{"data", "backend"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootPersistentDataFlagReachesSubcommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := t.TempDir() + "/vocabulary.json"
	require.NoError(t, os.WriteFile(path, []byte(`{"apple": "red"}`), 0o600))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--data", path, "random"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "apple\n", out.String())
}
