package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/claudecraft/create-claudecraft/internal/manifest"
	"github.com/claudecraft/create-claudecraft/internal/progress"
	"github.com/claudecraft/create-claudecraft/internal/templates"
)

// InitExisting adds the .claude/ assets to the project in projectDir.
//
// Skills, commands and hooks overwrite same-named files. Settings files and
// the root CLAUDE.md are only written when absent. Nothing outside .claude/
// and CLAUDE.md is touched, and no process is run.
func (e *Engine) InitExisting(ctx context.Context, projectDir string, choices InitChoices, onProgress progress.Func) (*Result, error) {
	start := e.now()

	if err := choices.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 10, ClaudeDir+"/")
	if err := EnsureClaudeDirs(projectDir); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 30, "skills")
	if err := e.copySkills(projectDir, choices.SelectedSkills); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 50, "commands")
	if err := e.copyCommands(projectDir); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 70, "hooks")
	if err := e.copyHooks(projectDir); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 85, "settings")
	if err := e.copySettings(projectDir, false); err != nil {
		return nil, err
	}
	if _, err := e.Store.CopyFileIfAbsent(templates.ClaudeDoc, filepath.Join(projectDir, ClaudeDoc)); err != nil {
		return nil, err
	}

	onProgress.Emit(progress.PhaseScaffolding, 100, "done")

	elapsed := e.now().Sub(start)
	files, err := CountFiles(filepath.Join(projectDir, ClaudeDir))
	if err != nil {
		return nil, err
	}

	return &Result{
		FileCount:       files,
		SkillCount:      len(choices.SelectedSkills),
		CommandCount:    InitCommandCount,
		Elapsed:         elapsed,
		DependencyCount: 0,
		DiskUsage:       InitDiskUsage,
	}, nil
}

// HasClaudeDir reports whether projectDir already has a .claude directory.
func HasClaudeDir(projectDir string) (bool, error) {
	info, err := os.Stat(filepath.Join(projectDir, ClaudeDir))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", ClaudeDir, err)
	}
	return info.IsDir(), nil
}

// HasPackageJSON reports whether projectDir looks like a JavaScript project.
func HasPackageJSON(projectDir string) bool {
	info, err := os.Stat(filepath.Join(projectDir, manifest.FileName))
	return err == nil && !info.IsDir()
}
