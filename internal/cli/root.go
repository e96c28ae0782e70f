package cli

import (
	"fmt"
	"os"

	"github.com/claudecraft/create-claudecraft/internal/branding"
	"github.com/claudecraft/create-claudecraft/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootFlags options
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [project-name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a React project wired for Claude: skills, slash
commands, hooks and settings in .claude/, plus a ready-to-run app in src/.

Run it in an existing project with --init to add only the .claude/ assets.`,
	Example: `  ` + branding.CLIName() + ` my-app
  ` + branding.CLIName() + ` my-app --yes --no-git
  ` + branding.CLIName() + ` --init --yes`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&rootFlags.yes, "yes", "y", false, "Skip prompts, use defaults")
	f.BoolVarP(&rootFlags.initMode, "init", "i", false, "Add skills to the project in the current directory (no scaffold)")
	f.BoolVar(&rootFlags.noGit, "no-git", false, "Skip git initialization")
	f.BoolVar(&rootFlags.noInstall, "no-install", false, "Skip dependency installation")
	f.StringVar(&rootFlags.templatesDir, "templates-dir", "", "Read templates from this directory instead of the built-in set")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print every progress step")
}

func runRoot(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	opts := rootFlags.withConfig()
	opts.verbose = verbose
	if len(args) == 1 {
		opts.name = args[0]
	}

	if opts.initMode {
		return runInit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), workDir, opts)
	}
	return runCreate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), workDir, opts)
}

// Execute runs the root command with build info injected via ldflags.
// Errors are rendered to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	err := rootCmd.Execute()
	if err != nil {
		renderError(os.Stderr, err)
	}
	return err
}
