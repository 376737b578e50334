package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapplink-baas/connex-provider/topic"
)

func TestParseCriteria(t *testing.T) {
	b, err := parseCriteria(strings.Fields("topic 0 0xc and 1 0xb or 2 0xa"))
	require.NoError(t, err)
	assert.Equal(t, []topic.Criteria{
		{"topic0": "0xc", "topic1": "0xb"},
		{"topic2": "0xa"},
	}, b.Get())
}

func TestParseCriteriaErrors(t *testing.T) {
	for _, args := range []string{"", "topic 0", "topic x 0xa", "xor 0 0xa"} {
		_, err := parseCriteria(strings.Fields(args))
		assert.Error(t, err, args)
	}
}

func runApp(t *testing.T, args ...string) string {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run(append([]string{"connex-provider", "--log-level", "error"}, args...)))
	return out.String()
}

func TestCriteriaCommand(t *testing.T) {
	out := runApp(t, "criteria", "topic", "0", "0xc", "and", "1", "0xb", "or", "2", "0xa")
	assert.JSONEq(t, `[{"topic0":"0xc","topic1":"0xb"},{"topic2":"0xa"}]`, out)
}

func TestABICommand(t *testing.T) {
	out := runApp(t, "abi", filepath.Join("..", "..", "contract", "testdata", "energy.json"))
	assert.Contains(t, out, "0xa9059cbb transfer(address,uint256)")
	assert.Contains(t, out, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef Transfer(address,address,uint256)")
}

func TestDescribeCommand(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join("..", "..", "contract", "testdata", "energy.json"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "provider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain_tag: \"0x4a\"\ndefault_account: \"0x01\"\ncontracts:\n  - name: Energy\n    import: "+abs+"\n"), 0o600))

	out := runApp(t, "describe", "--config", path)
	assert.Contains(t, out, "Energy (connex)")
	assert.Contains(t, out, "contract address: 0x0000000000000000000000000000456e65726779")
	assert.Contains(t, out, "chain tag: 0x4a")
	assert.Contains(t, out, "owner: 0x01")
}
