package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/claudecraft/create-claudecraft/internal/templates"
)

// Project layout.
const (
	ClaudeDir    = ".claude"
	SrcDir       = "src"
	PagesDir     = "pages"
	AppFile      = "App.tsx"
	NotFoundFile = "NotFoundPage.tsx"
	ClaudeDoc    = "CLAUDE.md"
)

// skippedDirs are not descended into when counting files.
var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// CountFiles counts every non-directory entry below dir, skipping
// node_modules and .git at any depth.
func CountFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("counting files in %s: %w", dir, err)
	}

	count := 0
	for _, entry := range entries {
		if skippedDirs[entry.Name()] {
			continue
		}
		if !entry.IsDir() {
			count++
			continue
		}
		n, err := CountFiles(filepath.Join(dir, entry.Name()))
		if err != nil {
			return 0, err
		}
		count += n
	}
	return count, nil
}

// EnsureClaudeDirs creates .claude/skills and .claude/commands under root.
// Existing directories are left as they are.
func EnsureClaudeDirs(root string) error {
	for _, sub := range []string{"skills", "commands"} {
		dir := filepath.Join(root, ClaudeDir, sub)
		if err := os.MkdirAll(dir, templates.DirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
