package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claudecraft/create-claudecraft/internal/config"
	"github.com/claudecraft/create-claudecraft/internal/templates"
)

var doctorTemplatesDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorTemplatesDir, "templates-dir", "", "Check this template directory instead of the configured one")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the template store and required tools",
	Long: `Verify that the template store has every catalog skill, that each SKILL.md
has a top-level heading, that the files the scaffold relies on are present,
and that git and the install command are on PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := doctorTemplatesDir
		if dir == "" {
			dir = config.Get(config.KeyTemplatesDir)
		}

		var store *templates.Store
		if dir == "" {
			store = templates.Embedded()
		} else {
			s, err := templates.FromDir(dir)
			if err != nil {
				return err
			}
			store = s
		}

		failures := runDoctor(cmd.OutOrStdout(), store, config.Get(config.KeyInstallCommand))
		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

// runDoctor prints every check and returns the number of failures.
// Missing tools are reported but do not count as failures.
func runDoctor(w io.Writer, store *templates.Store, installCommand string) int {
	failures := 0

	fmt.Fprintf(w, "Template store (%s):\n", store.Origin())
	m, err := store.Manifest()
	switch {
	case errors.Is(err, templates.ErrNoManifest):
		fmt.Fprintf(w, "  [INFO] no %s, version not checked\n", templates.ManifestFile)
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		failures++
	default:
		if err := m.CheckCompatible(buildVersion); err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			failures++
		} else {
			fmt.Fprintf(w, "  [ OK ] %s %s\n", m.Name, m.Version)
		}
	}

	issues := templates.Verify(store)
	if len(issues) == 0 {
		fmt.Fprintln(w, "  [ OK ] all skills, commands and base files present")
	}
	for _, issue := range issues {
		fmt.Fprintf(w, "  [FAIL] %s\n", issue)
		failures++
	}

	fmt.Fprintln(w, "Tools:")
	checkBinary(w, "git")
	if fields := strings.Fields(installCommand); len(fields) > 0 {
		checkBinary(w, fields[0])
	}

	return failures
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}
