package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/domain/models"
)

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSkipsApp(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "version", args: []string{"version"}, expected: true},
		{name: "address subcommand", args: []string{"address", "validate"}, expected: true},
		{name: "check", args: []string{"check"}, expected: false},
		{name: "tx list", args: []string{"tx", "list"}, expected: false},
		{name: "networks", args: []string{"networks"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := root.Find(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, skipsApp(cmd))
		})
	}

	assert.True(t, skipsApp(&cobra.Command{Use: "help"}))
}

func TestAddressCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "lowercases",
			args: []string{"address", "validate", "0xF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266"},
			want: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266\n",
		},
		{
			name: "checksums",
			args: []string{"address", "validate", "--checksum", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"},
			want: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\n",
		},
		{
			name:    "rejects short input",
			args:    []string{"address", "validate", "0x1234"},
			wantErr: true,
		},
		{
			name: "shortens",
			args: []string{"address", "shorten", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
			want: "0xf39F...2266\n",
		},
		{
			name:    "shorten rejects bad chars",
			args:    []string{"address", "shorten", "--chars", "0", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCheckCommand_Offline(t *testing.T) {
	snapshots, err := filepath.Abs(filepath.Join("..", "adapters", "scenario", "testdata", "snapshots.yaml"))
	require.NoError(t, err)

	out, err := execute(t, "check", snapshots, "--offline", "--json", "--non-interactive", "--data-dir", t.TempDir())
	require.NoError(t, err)

	var checks []struct {
		Name   string `json:"name"`
		Result struct {
			Parsed  domain.ParsedWarnings `json:"parsed"`
			Offline bool                  `json:"offline"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &checks))
	require.Len(t, checks, 3)
	assert.Equal(t, "healthy swap", checks[0].Name)
	assert.Equal(t, "no route", checks[1].Name)
	for _, c := range checks {
		assert.True(t, c.Result.Offline, c.Name)
		assert.NotEmpty(t, c.Result.Parsed.Warnings, c.Name)
	}
}

func TestCheckCommand_Errors(t *testing.T) {
	dataDir := t.TempDir()

	_, err := execute(t, "check", filepath.Join(dataDir, "missing.yaml"), "--offline", "--non-interactive", "--data-dir", dataDir)
	assert.Error(t, err)

	_, err = execute(t, "check", filepath.Join(dataDir, "missing.yaml"), "--gas-fee", "-1", "--non-interactive", "--data-dir", dataDir)
	assert.ErrorContains(t, err, "--gas-fee")
}

func TestTxListCommand_Empty(t *testing.T) {
	out, err := execute(t, "tx", "list", "--non-interactive", "--data-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions found")
}

func TestSendCommand_RequiresNetwork(t *testing.T) {
	_, err := execute(t, "send", "--to", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", "--yes", "--non-interactive", "--data-dir", t.TempDir())
	assert.ErrorContains(t, err, "no network selected")
}

func TestParseWeiFlag(t *testing.T) {
	v, err := parseWeiFlag("gas-fee", "")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseWeiFlag("gas-fee", "21000")
	require.NoError(t, err)
	assert.Equal(t, int64(21000), v.Int64())

	for _, bad := range []string{"-5", "0x10", "1.5"} {
		_, err = parseWeiFlag("gas-fee", bad)
		assert.Error(t, err, bad)
	}
}

func TestParseTransactionFlags(t *testing.T) {
	txType, err := parseTransactionType("swap")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeSwap, txType)

	_, err = parseTransactionType("bridge")
	assert.Error(t, err)

	status, err := parseTransactionStatus(" Pending ")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, status)

	_, err = parseTransactionStatus("dropped")
	assert.Error(t, err)
}

func TestToAnyMap(t *testing.T) {
	assert.Nil(t, toAnyMap(nil))
	assert.Equal(t, map[string]any{"route": "v3"}, toAnyMap(map[string]string{"route": "v3"}))
}
