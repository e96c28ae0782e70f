package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	Load()

	if got := Get(KeyInstallCommand); got != DefaultInstallCommand {
		t.Errorf("install_command = %q, want %q", got, DefaultInstallCommand)
	}
	if got := Get(KeyCommitMessage); got != "init: claudecraft scaffolding" {
		t.Errorf("commit_message = %q", got)
	}
	if !GetBool(KeyGit) {
		t.Error("git should default to true")
	}
}

func TestEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLAUDECRAFT_INSTALL_COMMAND", "npm install")

	Load()

	if got := Get(KeyInstallCommand); got != "npm install" {
		t.Errorf("install_command = %q, want %q", got, "npm install")
	}
}

func TestSetWritesFile(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)

	Load()
	if err := Set(KeyTemplatesDir, "/opt/templates"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".claudecraft", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Error("config file should not be empty")
	}
	if got := Get(KeyTemplatesDir); got != "/opt/templates" {
		t.Errorf("templates_dir = %q", got)
	}
}
