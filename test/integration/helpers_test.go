//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOME, so ~/.claudecraft never touches the real one
	TemplatesDir string // an on-disk template store
	WorkDir      string // where new projects are created
}

// setupTestEnv creates isolated temp directories and an identity for git
// commits. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		WorkDir:      t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	return env
}

// setupTemplateStore writes a small but complete store into dir.
func setupTemplateStore(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "store.yaml"), "name: test-store\nversion: 1.0.0\n")
	writeFile(t, filepath.Join(dir, "base", "package.json"), `{
  "name": "template",
  "scripts": {"dev": "vite", "build": "vite build"}
}
`)
	writeFile(t, filepath.Join(dir, "base", "CLAUDE.md"), "# Template\n")
	writeFile(t, filepath.Join(dir, "base", ".gitignore"), "node_modules\n")

	writeFile(t, filepath.Join(dir, "skills", "workflow", "brainstorming", "SKILL.md"), "# Brainstorming\n")
	writeFile(t, filepath.Join(dir, "skills", "workflow", "systematic-debugging", "SKILL.md"), "# Debugging\n")
	writeFile(t, filepath.Join(dir, "skills", "design", "ui-skills", "SKILL.md"), "# UI Skills\n")

	writeFile(t, filepath.Join(dir, "commands", "build.md"), "Run the build.\n")
	writeFile(t, filepath.Join(dir, "hooks", "typecheck-on-stop.sh"), "#!/bin/sh\nexit 0\n")
	writeFile(t, filepath.Join(dir, "settings", "settings.json"), `{"version":1}`)

	writeFile(t, filepath.Join(dir, "homepage", "HomePage.tsx"), "export function HomePage() {}\n")
	writeFile(t, filepath.Join(dir, "app", "App.tsx"), "// app\n")
	writeFile(t, filepath.Join(dir, "components", "ui", "Button.tsx"), "// button\n")
	writeFile(t, filepath.Join(dir, "main.tsx"), "// main\n")
	writeFile(t, filepath.Join(dir, "index.css"), "/* css */\n")
}

// writeInstaller writes a shell script that stands in for the package
// manager and returns an install command that runs it.
func writeInstaller(t *testing.T, exitCode string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	script := filepath.Join(t.TempDir(), "install.sh")
	writeFile(t, script, "#!/bin/sh\nmkdir -p node_modules/dep && touch node_modules/dep/index.js\nexit "+exitCode+"\n")
	return "sh " + script
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
