package scaffold

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/claudecraft/create-claudecraft/internal/templates"
)

// fakeRunner records calls instead of running processes.
type fakeRunner struct {
	installErr error
	vcsErr     error
	diskErr    error

	calls   []string
	message string
}

func (f *fakeRunner) InstallDependencies(_ context.Context, _ string) error {
	f.calls = append(f.calls, "install")
	return f.installErr
}

func (f *fakeRunner) VCSInit(_ context.Context, _ string) error {
	f.calls = append(f.calls, "vcs-init")
	return f.vcsErr
}

func (f *fakeRunner) VCSAddAll(_ context.Context, _ string) error {
	f.calls = append(f.calls, "vcs-add")
	return f.vcsErr
}

func (f *fakeRunner) VCSCommit(_ context.Context, _, message string) error {
	f.calls = append(f.calls, "vcs-commit")
	f.message = message
	return f.vcsErr
}

func (f *fakeRunner) DiskUsage(string) (string, error) {
	if f.diskErr != nil {
		return "", f.diskErr
	}
	return "1.2 MB", nil
}

var errBoom = errors.New("boom")

const testSettings = `{"hooks":{}}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"base/package.json": {Data: []byte(`{"name":"claudecraft-template","version":"0.0.0","scripts":{"dev":"vite","build":"vite build"}}`)},
		"base/CLAUDE.md":    {Data: []byte("# Template\n")},

		"skills/workflow/brainstorming/SKILL.md":        {Data: []byte("# Brainstorming\n")},
		"skills/workflow/systematic-debugging/SKILL.md": {Data: []byte("# Debugging\n")},
		"skills/design/brainstorming/SKILL.md":          {Data: []byte("# Design brainstorming\n")},
		"skills/design/ui-skills/SKILL.md":              {Data: []byte("# UI Skills\n")},

		"commands/build.md":       {Data: []byte("build\n")},
		"hooks/format-on-save.sh": {Data: []byte("#!/bin/sh\n")},
		"settings/settings.json":  {Data: []byte(testSettings)},

		"homepage/HomePage.tsx": {Data: []byte("export function HomePage() {}\n")},
		"app/App.tsx":           {Data: []byte("// routed app\n")},

		"components/ui/Button.tsx": {Data: []byte("button\n")},
		"context/ThemeContext.tsx": {Data: []byte("theme\n")},
		"lib/cn.ts":                {Data: []byte("cn\n")},
		"types/index.ts":           {Data: []byte("types\n")},
		"main.tsx":                 {Data: []byte("main\n")},
		"index.css":                {Data: []byte("css\n")},
		"vite-env.d.ts":            {Data: []byte("env\n")},
	}
}

func testEngine(fsys fstest.MapFS, r *fakeRunner) *Engine {
	e := New(templates.New(fsys, "test"), r, "init: test")
	e.Now = func() time.Time { return time.Unix(0, 0) }
	return e
}

func testChoices(name string) Choices {
	return Choices{
		ProjectName:        name,
		Bundle:             "custom",
		SelectedSkills:     []string{"brainstorming", "ui-skills"},
		IncludeHomepage:    true,
		InitVersionControl: true,
	}
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func entryNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
