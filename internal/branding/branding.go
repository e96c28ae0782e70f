// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed. Every user-facing
// product string (command name, home directory, env prefix, the commit
// message used for a fresh repository) is read from here.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	Tagline            string `yaml:"tagline"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GoModule           string `yaml:"go_module"`
	DefaultProjectName string `yaml:"default_project_name"`
	CommitMessage      string `yaml:"commit_message"`
	DevPort            int    `yaml:"dev_port"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "create-claudecraft",
			DisplayName:        "claudecraft",
			Description:        "Designer-first boilerplate for Claude Code",
			Tagline:            "Your taste. Their labor. Finally.",
			HomeDir:            ".claudecraft",
			EnvPrefix:          "CLAUDECRAFT",
			GoModule:           "github.com/claudecraft/create-claudecraft",
			DefaultProjectName: "claudecraft-app",
			CommitMessage:      "init: claudecraft scaffolding",
			DevPort:            6969,
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-claudecraft").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Tagline returns the one-line banner shown above the wizard.
func Tagline() string { load(); return defaults.Tagline }

// HomeDir returns the dot-directory name under $HOME (e.g., ".claudecraft").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CLAUDECRAFT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DefaultProjectName is used when --yes is given without a project name.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// CommitMessage returns the message of the first commit in a new project.
func CommitMessage() string { load(); return defaults.CommitMessage }

// DevPort returns the dev server port configured in the boilerplate.
func DevPort() int { load(); return defaults.DevPort }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("templates_dir") → "CLAUDECRAFT_TEMPLATES_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
