package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/claudecraft/create-claudecraft/internal/branding"
	"github.com/claudecraft/create-claudecraft/internal/catalog"
	"github.com/claudecraft/create-claudecraft/internal/progress"
	"github.com/claudecraft/create-claudecraft/internal/scaffold"
)

var numbers = message.NewPrinter(language.English)

// progressPrinter renders engine progress. By default it prints one line
// when a phase starts and one when it finishes; verbose prints every event.
type progressPrinter struct {
	w       io.Writer
	verbose bool
	now     func() time.Time

	phase progress.Phase
	start time.Time
}

func newProgressPrinter(w io.Writer, verbose bool) *progressPrinter {
	return &progressPrinter{w: w, verbose: verbose, now: time.Now}
}

func (p *progressPrinter) Func() progress.Func { return p.handle }

func (p *progressPrinter) handle(e progress.Event) {
	if e.Phase != p.phase {
		p.phase = e.Phase
		p.start = p.now()
		if !p.verbose {
			fmt.Fprintf(p.w, "  > %-13s %s\n", e.Phase, e.Detail)
		}
	}
	if p.verbose {
		fmt.Fprintf(p.w, "  %-13s %3d%%  %s\n", e.Phase, e.Percent, e.Detail)
	}
	if e.Done() {
		fmt.Fprintf(p.w, "  ✓ %-13s %s\n", e.Phase, formatElapsed(p.now().Sub(p.start)))
	}
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	return tw
}

func printCreateSummary(w io.Writer, name string, res *scaffold.Result) {
	fmt.Fprintf(w, "\n  ✓ Ready · %s\n\n", name)

	tw := newTable(w)
	tw.AppendHeader(table.Row{"files", "skills", "commands", "time", "deps", "disk"})
	tw.AppendRow(table.Row{
		numbers.Sprintf("%d", res.FileCount),
		res.SkillCount,
		res.CommandCount,
		formatElapsed(res.Elapsed),
		res.DependencyCount,
		res.DiskUsage,
	})
	tw.Render()

	printWarnings(w, res.Warnings)

	fmt.Fprintln(w, "\n  Next:")
	fmt.Fprintf(w, "    01 $ cd %s\n", name)
	if res.DependencyCount == 0 {
		fmt.Fprintln(w, "    02 $ bun install && bun dev")
	} else {
		fmt.Fprintln(w, "    02 $ bun dev")
	}
	fmt.Fprintf(w, "    03 $ open http://localhost:%d\n\n", branding.DevPort())

	printCommands(w, 4)
}

func printInitSummary(w io.Writer, res *scaffold.Result) {
	fmt.Fprintln(w, "\n  ✓ Skills injected")
	fmt.Fprintln(w)

	tw := newTable(w)
	tw.AppendHeader(table.Row{"added", ""})
	tw.AppendRows([]table.Row{
		{".claude/skills/", fmt.Sprintf("%d skills", res.SkillCount)},
		{".claude/commands/", fmt.Sprintf("%d commands", res.CommandCount)},
		{".claude/hooks/", "hooks"},
		{".claude/", "settings (kept if present)"},
		{scaffold.ClaudeDoc, "project context (if missing)"},
	})
	tw.AppendFooter(table.Row{"files", numbers.Sprintf("%d in %s", res.FileCount, formatElapsed(res.Elapsed))})
	tw.Render()

	printWarnings(w, res.Warnings)

	fmt.Fprintln(w, "\n  Figma:")
	fmt.Fprintln(w, "    $ claude mcp add --transport http figma https://mcp.figma.com/mcp")
	fmt.Fprintln(w)
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "  ! %s\n", warn)
	}
}

// printCommands lists the first n slash commands.
func printCommands(w io.Writer, n int) {
	cmds := catalog.Commands()
	if n > len(cmds) {
		n = len(cmds)
	}
	fmt.Fprintln(w, "  Commands:")
	for _, c := range cmds[:n] {
		fmt.Fprintf(w, "    %-14s %s\n", c.Name, c.Description)
	}
	fmt.Fprintln(w)
}
