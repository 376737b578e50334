package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "provider.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, `
chain_tag: "0x27"
default_account: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
contracts:
  - name: Energy
    import: energy.json
  - name: Other
    provider: custom
    import: /abs/other.json
`)

	conf, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "0x27", conf.ChainTag)
	require.Len(t, conf.Contracts, 2)
	assert.Equal(t, DefaultProvider, conf.Contracts[0].Provider)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "energy.json"), conf.Contracts[0].Import)
	assert.Equal(t, "custom", conf.Contracts[1].Provider)
	assert.Equal(t, "/abs/other.json", conf.Contracts[1].Import)
	assert.Equal(t, "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", conf.InstanceOptions().DefaultAccount)
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing chain tag", "default_account: \"0x01\"\n"},
		{"missing account", "chain_tag: \"0x27\"\n"},
		{"unknown field", "chain_tag: \"0x27\"\ndefault_account: \"0x01\"\nnetwork: main\n"},
		{"unnamed contract", "chain_tag: \"0x27\"\ndefault_account: \"0x01\"\ncontracts:\n  - import: a.json\n"},
		{"duplicate contract", "chain_tag: \"0x27\"\ndefault_account: \"0x01\"\ncontracts:\n  - name: A\n    import: a.json\n  - name: A\n    import: b.json\n"},
		{"missing import", "chain_tag: \"0x27\"\ndefault_account: \"0x01\"\ncontracts:\n  - name: A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
