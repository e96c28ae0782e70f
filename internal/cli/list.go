package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/claudecraft/create-claudecraft/internal/catalog"
)

var (
	listGroup string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills, bundles and commands",
	Long:  `List the skills, bundles and slash commands a project can be scaffolded with.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), catalog.Group(listGroup), listJSON)
	},
}

func init() {
	listCmd.Flags().StringVar(&listGroup, "group", "", "Only list skills of this group (workflow, design)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output skills in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is a skill for JSON output.
type listEntry struct {
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Bytes       int    `json:"bytes"`
}

func runList(w io.Writer, group catalog.Group, asJSON bool) error {
	var skills []catalog.Skill
	switch group {
	case "":
		skills = catalog.Skills()
	case catalog.GroupWorkflow, catalog.GroupDesign:
		skills = catalog.ByGroup(group)
	default:
		return fmt.Errorf("unknown group %q (want workflow or design)", group)
	}

	if asJSON {
		entries := make([]listEntry, 0, len(skills))
		for _, s := range skills {
			entries = append(entries, listEntry{s.Name, string(s.Group), s.Description, s.Bytes})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"skill", "group", "description", "size"})
	for _, s := range skills {
		tw.AppendRow(table.Row{s.Name, s.Group, s.Description, humanize.Bytes(uint64(s.Bytes))})
	}
	tw.Render()

	if group != "" {
		return nil
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	tw.AppendHeader(table.Row{"bundle", "title", "skills", "commands", "size"})
	for _, b := range catalog.Bundles() {
		tw.AppendRow(table.Row{b.ID, b.Title, len(b.Skills), b.Commands, humanize.Bytes(uint64(catalog.TotalBytes(b.Skills)))})
	}
	tw.AppendRow(table.Row{catalog.BundleCustom, "Let Me Pick", "-", "-", "-"})
	tw.Render()

	fmt.Fprintln(w)
	tw = newTable(w)
	tw.AppendHeader(table.Row{"command", "description"})
	for _, c := range catalog.Commands() {
		tw.AppendRow(table.Row{c.Name, c.Description})
	}
	tw.Render()

	var names []string
	for _, g := range catalog.Groups {
		names = append(names, fmt.Sprintf("%d %s", len(catalog.ByGroup(g)), g))
	}
	fmt.Fprintf(w, "\n%d skills (%s)\n", len(skills), strings.Join(names, ", "))
	return nil
}
