package scaffold

import (
	"path"
	"path/filepath"

	"github.com/claudecraft/create-claudecraft/internal/catalog"
	"github.com/claudecraft/create-claudecraft/internal/templates"
)

// copySkills copies each selected skill into root/.claude/skills/<name>.
// Names missing from the catalog or from the store are skipped.
func (e *Engine) copySkills(root string, names []string) error {
	for _, name := range uniqueNames(names) {
		if _, ok := catalog.Lookup(name); !ok {
			continue
		}
		src, ok := e.Store.SkillSource(name)
		if !ok {
			continue
		}
		dst := filepath.Join(root, ClaudeDir, "skills", name)
		if _, err := e.Store.CopyTree(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) copyCommands(root string) error {
	_, err := e.Store.CopyTree(templates.CommandsDir, filepath.Join(root, ClaudeDir, "commands"))
	return err
}

// copyHooks leaves .claude/hooks uncreated when the store has no hooks.
func (e *Engine) copyHooks(root string) error {
	_, err := e.Store.CopyTree(templates.HooksDir, filepath.Join(root, ClaudeDir, "hooks"))
	return err
}

// copySettings copies the files directly inside the store's settings
// directory into root/.claude. With overwrite false, files already present
// are kept.
func (e *Engine) copySettings(root string, overwrite bool) error {
	files, err := e.Store.Files(templates.SettingsDir)
	if err != nil {
		return err
	}
	for _, name := range files {
		src := path.Join(templates.SettingsDir, name)
		dst := filepath.Join(root, ClaudeDir, name)
		if overwrite {
			_, err = e.Store.CopyFile(src, dst)
		} else {
			_, err = e.Store.CopyFileIfAbsent(src, dst)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
