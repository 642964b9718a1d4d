package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:  out,
		json: json,
	}
}

type networkJSON struct {
	Name       string `json:"name"`
	ChainID    uint64 `json:"chainId"`
	RPCURL     string `json:"rpcUrl"`
	HasPrivate bool   `json:"hasPrivateRpc"`
	Explorer   string `json:"explorerUrl,omitempty"`
	Native     string `json:"nativeSymbol,omitempty"`
	Checked    bool   `json:"checked"`
	Error      string `json:"error,omitempty"`
}

// RenderNetworksList renders the list of networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if r.json {
		out := make([]networkJSON, 0, len(result.Networks))
		for _, n := range result.Networks {
			entry := networkJSON{
				Name:       n.Network.Name,
				ChainID:    n.Network.ChainID,
				RPCURL:     n.Network.RPCURL,
				HasPrivate: n.HasPrivate,
				Explorer:   n.Network.ExplorerURL,
				Native:     n.Network.NativeSymbol,
				Checked:    n.Checked,
			}
			if n.Error != nil {
				entry.Error = n.Error.Error()
			}
			out = append(out, entry)
		}
		return writeJSON(r.out, out)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out, table.Row{"", "Network", "Chain ID", "Native", "Private RPC", "RPC"})
	for _, n := range result.Networks {
		icon := " "
		if n.Checked {
			icon = "✅"
			if n.Error != nil {
				icon = "❌"
			}
		}
		private := ""
		if n.HasPrivate {
			private = color.New(color.FgGreen).Sprint("yes")
		}
		t.AppendRow(table.Row{icon, n.Network.Name, n.Network.ChainID, n.Network.NativeSymbol, private, n.Network.RPCURL})
	}
	t.Render()

	for _, n := range result.Networks {
		if n.Error != nil {
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", n.Network.Name, n.Error)
		}
	}

	return nil
}
