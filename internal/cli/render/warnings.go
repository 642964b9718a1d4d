package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/swapguard/internal/domain"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// NamedCheck is the check result of one snapshot
type NamedCheck struct {
	Name   string                   `json:"name"`
	Result *usecase.CheckSwapResult `json:"result"`
}

// WarningsRenderer renders swap check results
type WarningsRenderer struct {
	out  io.Writer
	json bool
}

// NewWarningsRenderer creates a new warnings renderer
func NewWarningsRenderer(out io.Writer, json bool) *WarningsRenderer {
	return &WarningsRenderer{out: out, json: json}
}

// Render renders every snapshot's result in order
func (r *WarningsRenderer) Render(checks []NamedCheck) error {
	if r.json {
		return writeJSON(r.out, checks)
	}

	for i, check := range checks {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		r.renderCheck(check)
	}
	return nil
}

func (r *WarningsRenderer) renderCheck(check NamedCheck) {
	res := check.Result
	header := color.New(color.FgCyan, color.Bold).Sprint(check.Name)
	fmt.Fprintf(r.out, "%s %s\n", header, color.New(color.Faint).Sprintf("(network %s)", humanize(string(res.Status))))

	parsed := res.Parsed
	if len(parsed.Warnings) == 0 {
		fmt.Fprintf(r.out, "  %s\n", FormatSuccess("No warnings"))
	} else {
		t := newTable(r.out, table.Row{"Kind", "Severity", "Action", "Title"})
		for _, w := range parsed.Warnings {
			c := severityColor(w.Severity)
			t.AppendRow(table.Row{
				humanize(string(w.Kind)),
				c.Sprint(titleCaser.String(w.Severity.String())),
				humanize(string(w.Action)),
				c.Sprint(w.Title),
			})
		}
		t.Render()
	}

	if parsed.BlockingWarning != nil {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.FgRed).Sprintf("❌ Blocked: %s", describe(*parsed.BlockingWarning)))
	}
	if w := parsed.FormScreenWarning; w != nil {
		fmt.Fprintf(r.out, "  Form screen:   %s%s\n", severityColor(w.Warning.Severity).Sprint(describe(w.Warning)), inline(w))
	}
	if w := parsed.ReviewScreenWarning; w != nil {
		fmt.Fprintf(r.out, "  Review screen: %s%s\n", severityColor(w.Warning.Severity).Sprint(describe(w.Warning)), inline(w))
		if w.Warning.Message != "" {
			fmt.Fprintf(r.out, "                 %s\n", w.Warning.Message)
		}
		if w.Warning.Link != "" {
			fmt.Fprintf(r.out, "                 %s\n", color.New(color.FgBlue, color.Underline).Sprint(w.Warning.Link))
		}
	}
	if res.GasFeeHigh {
		fmt.Fprintf(r.out, "  %s\n", FormatWarning("Network cost is high relative to the swap value"))
	}
	if res.NeedsBridging {
		fmt.Fprintf(r.out, "  %s\n", FormatWarning("This swap bridges between networks"))
	}
}

func describe(w domain.Warning) string {
	if w.Title != "" {
		return w.Title
	}
	return humanize(string(w.Kind))
}

func inline(w *domain.WarningWithStyle) string {
	if w.DisplayedInline {
		return color.New(color.Faint).Sprint(" [inline]")
	}
	return ""
}
